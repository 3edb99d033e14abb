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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/everest-apicheck/pkg/constants"
	"github.com/unikorn-cloud/everest-apicheck/pkg/options"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server"
)

func main() {
	options.LoadEnvFile(".env")

	var (
		serverOptions  server.Options
		loggingOptions options.LoggingOptions
	)

	serverOptions.AddFlags(pflag.CommandLine)
	loggingOptions.AddFlags(pflag.CommandLine)

	pflag.Parse()

	logger, err := loggingOptions.SetupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger = logger.WithName("simulator")
	logger.Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	seed, err := server.LoadSeed(serverOptions.SeedPath)
	if err != nil {
		logger.Error(err, "failed to load seed")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.New(logger, serverOptions, seed).Run(logr.NewContext(ctx, logger)); err != nil {
		logger.Error(err, "server exited")
		stop()
		os.Exit(1)
	}
}
