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

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
)

// writeJSONResponse encodes a response body with the given status.
func writeJSONResponse(w http.ResponseWriter, r *http.Request, code int, response any) {
	body, err := json.Marshal(response)
	if err != nil {
		logr.FromContextOrDiscard(r.Context()).Error(err, "failed to marshal response")

		w.WriteHeader(http.StatusInternalServerError)

		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logr.FromContextOrDiscard(r.Context()).Error(err, "failed to write response")
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code int, kind, description string) {
	writeJSONResponse(w, r, code, &openapi.ErrorResponse{
		Error:       kind,
		Description: description,
	})
}
