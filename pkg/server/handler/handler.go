/*
Copyright 2024-2025 the Unikorn Authors.
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

//nolint:revive
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/module"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/session"

	"k8s.io/utils/ptr"
)

// Session commands accepted by the EVSE manager.
const (
	CommandStartCharging  = "start_charging"
	CommandPauseCharging  = "pause_charging"
	CommandResumeCharging = "resume_charging"
	CommandStopCharging   = "stop_charging"
)

type Handler struct {
	// modules are the loaded EVerest modules.
	modules *module.Registry

	// session is the EVSE manager's charging session.
	session *session.Session

	// ready is flipped once startup completes.
	ready atomic.Bool
}

func New(modules *module.Registry, session *session.Session) *Handler {
	return &Handler{
		modules: modules,
		session: session,
	}
}

// SetReady sets the readiness flag.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Modules exposes the registry, for tests and fixtures.
func (h *Handler) Modules() *module.Registry {
	return h.modules
}

// Session exposes the EVSE session, for tests and fixtures.
func (h *Handler) Session() *session.Session {
	return h.session
}

func (h *Handler) setUncacheable(w http.ResponseWriter) {
	w.Header().Add("Cache-Control", "no-cache")
}

func (h *Handler) GetApiSystemReady(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)

	writeJSONResponse(w, r, http.StatusOK, &openapi.ReadinessResponse{
		Ready: ptr.To(h.ready.Load()),
	})
}

func (h *Handler) GetApiModules(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)

	writeJSONResponse(w, r, http.StatusOK, h.modules.List())
}

func (h *Handler) GetApiModulesId(w http.ResponseWriter, r *http.Request, id string) {
	result, err := h.modules.Get(id)
	if err != nil {
		handleError(w, r, err)
		return
	}

	h.setUncacheable(w)

	writeJSONResponse(w, r, http.StatusOK, result)
}

func (h *Handler) PostApiModulesIdConfig(w http.ResponseWriter, r *http.Request, id string) {
	request := &openapi.ConfigUpdateRequest{}

	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.modules.UpdateConfig(id, request); err != nil {
		handleError(w, r, err)
		return
	}

	logr.FromContextOrDiscard(r.Context()).Info("module config updated", "module", id, "logLevel", request.LogLevel)

	writeJSONResponse(w, r, http.StatusOK, &openapi.ConfigUpdateResponse{
		Success: ptr.To(true),
	})
}

func (h *Handler) GetEverestApiEvseManagerVarSessionInfo(w http.ResponseWriter, r *http.Request) {
	h.setUncacheable(w)

	writeJSONResponse(w, r, http.StatusOK, h.session.Info())
}

func (h *Handler) PostEverestApiEvseManagerCmdCommand(w http.ResponseWriter, r *http.Request, command string) {
	var err error

	switch command {
	case CommandStartCharging:
		err = h.session.Start()
	case CommandPauseCharging:
		err = h.session.Pause()
	case CommandResumeCharging:
		err = h.session.Resume()
	case CommandStopCharging:
		err = h.session.Stop()
	default:
		writeError(w, r, http.StatusNotFound, "not_found", "unknown command "+command)
		return
	}

	if err != nil {
		handleError(w, r, err)
		return
	}

	writeJSONResponse(w, r, http.StatusOK, &openapi.ConfigUpdateResponse{
		Success: ptr.To(true),
	})
}

// handleError maps domain errors onto HTTP errors.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, module.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, openapi.ErrInvalidLogLevel):
		writeError(w, r, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, session.ErrInvalidTransition):
		writeError(w, r, http.StatusConflict, "conflict", err.Error())
	default:
		logr.FromContextOrDiscard(r.Context()).Error(err, "unhandled error")
		writeError(w, r, http.StatusInternalServerError, "server_error", "unhandled error")
	}
}
