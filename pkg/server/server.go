/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/everest-apicheck/pkg/options"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/module"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/session"
)

// Options configure the simulator.
type Options struct {
	ListenAddress     string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
	SeedPath          string
	ReadyAfter        time.Duration
}

func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", options.GetStringWithDefault("LISTEN_ADDRESS", "127.0.0.1:1880"), "Address to serve the API on.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", time.Second, "How long to wait for request headers.")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 5*time.Second, "How long to drain connections on shutdown.")
	f.StringVar(&o.SeedPath, "seed", options.GetStringWithDefault("SIMULATOR_SEED", ""), "YAML file describing modules and the charging session.")
	f.DurationVar(&o.ReadyAfter, "ready-after", options.GetDurationWithDefault("SIMULATOR_READY_AFTER", 0), "Report not ready until this long after startup, overrides the seed.")
}

// Server is a simulated EVerest API.
type Server struct {
	options Options
	logger  logr.Logger
	handler *handler.Handler
	router  http.Handler
}

// New builds a simulator from its seed.
func New(logger logr.Logger, o Options, seed *Seed) *Server {
	h := handler.New(module.NewRegistry(seed.Modules), session.New(seed.Session, nil))
	h.SetReady(seed.Ready && o.ReadyAfter == 0)

	return &Server{
		options: o,
		logger:  logger,
		handler: h,
		router:  NewRouter(logger, h),
	}
}

// Handler returns the HTTP handler, for use with httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// State returns the simulated API state.
func (s *Server) State() *handler.Handler {
	return s.handler
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.options.ListenAddress)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.options.ListenAddress, err)
	}

	return s.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.options.ReadHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	if s.options.ReadyAfter > 0 {
		timer := time.AfterFunc(s.options.ReadyAfter, func() {
			s.logger.Info("simulator ready")
			s.handler.SetReady(true)
		})

		defer timer.Stop()
	}

	errs := make(chan error, 1)

	go func() {
		s.logger.Info("serving", "address", listener.Addr().String())

		errs <- server.Serve(listener)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.options.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
