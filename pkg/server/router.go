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
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler"
)

// pathParameter returns a decoded path parameter. Routing matches on the
// raw path when one is present, so that encoded slashes stay within a
// single segment, and only then is the parameter still escaped.
func pathParameter(r *http.Request, name string) (string, bool) {
	value := chi.URLParam(r, name)

	if r.URL.RawPath == "" {
		return value, true
	}

	value, err := url.PathUnescape(value)
	if err != nil {
		return "", false
	}

	return value, true
}

func badPath(w http.ResponseWriter) {
	http.Error(w, "malformed path parameter", http.StatusBadRequest)
}

// withID binds the "id" path parameter onto a module handler.
func withID(f func(http.ResponseWriter, *http.Request, string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathParameter(r, "id")
		if !ok {
			badPath(w)
			return
		}

		f(w, r, id)
	}
}

// logging injects the logger into the request context and logs each
// completed request.
func logging(logger logr.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			ctx := logr.NewContext(r.Context(), logger.WithValues("traceparent", r.Header.Get("Traceparent")))

			next.ServeHTTP(ww, r.WithContext(ctx))

			logger.V(1).Info("request", "method", r.Method, "path", r.URL.Path, "status", ww.Status(), "duration", time.Since(start))
		})
	}
}

// NewRouter mounts the handler's API onto a chi router.
func NewRouter(logger logr.Logger, h *handler.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(logging(logger))

	router.Get("/api/system/ready", h.GetApiSystemReady)

	router.Route("/api/modules", func(r chi.Router) {
		r.Get("/", h.GetApiModules)
		r.Get("/{id}", withID(h.GetApiModulesId))
		r.Post("/{id}/config", withID(h.PostApiModulesIdConfig))
	})

	router.Route("/everest_api/evse_manager", func(r chi.Router) {
		r.Get("/var/session_info", h.GetEverestApiEvseManagerVarSessionInfo)
		r.Post("/cmd/{command}", func(w http.ResponseWriter, r *http.Request) {
			command, ok := pathParameter(r, "command")
			if !ok {
				badPath(w)
				return
			}

			h.PostEverestApiEvseManagerCmdCommand(w, r, command)
		})
	})

	return router
}
