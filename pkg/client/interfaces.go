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

//go:generate go tool mockgen -source=interfaces.go -destination=mock/interfaces.go -package=mock

package client

import (
	"context"
	"net/http"

	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
)

// Interface is the EVerest API surface the checks consume.
type Interface interface {
	// SystemReady reads the readiness flag.
	SystemReady(ctx context.Context) (*openapi.ReadinessResponse, error)
	// ListModules lists loaded modules.
	ListModules(ctx context.Context) (*openapi.ModuleListResponse, error)
	// GetModule reads a module and its configuration.
	GetModule(ctx context.Context, moduleID string) (*openapi.ModuleDetail, error)
	// UpdateModuleConfig posts a configuration change to a module.
	UpdateModuleConfig(ctx context.Context, moduleID string, request *openapi.ConfigUpdateRequest) (*openapi.ConfigUpdateResponse, error)
	// SessionInfo reads the live EVSE session telemetry.
	SessionInfo(ctx context.Context) (*openapi.SessionInfo, error)
}

// ResponseValidator checks a raw response against a schema.
// The path is relative to the API base path.
type ResponseValidator interface {
	Validate(ctx context.Context, method, path string, status int, header http.Header, body []byte) error
}
