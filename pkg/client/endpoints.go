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

package client

import (
	"fmt"

	"github.com/oapi-codegen/runtime"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// moduleIDPathParameter renders a module ID as a simple style path parameter.
func moduleIDPathParameter(moduleID string) (string, error) {
	value, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, moduleID)
	if err != nil {
		return "", fmt.Errorf("styling module id %q: %w", moduleID, err)
	}

	return value, nil
}

// System endpoints.
func (e *Endpoints) SystemReady() string {
	return "/api/system/ready"
}

// Module endpoints.
func (e *Endpoints) ListModules() string {
	return "/api/modules"
}

func (e *Endpoints) GetModule(moduleID string) (string, error) {
	id, err := moduleIDPathParameter(moduleID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/api/modules/%s", id), nil
}

func (e *Endpoints) UpdateModuleConfig(moduleID string) (string, error) {
	id, err := moduleIDPathParameter(moduleID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("/api/modules/%s/config", id), nil
}

// EVSE manager endpoints.
func (e *Endpoints) SessionInfo() string {
	return "/everest_api/evse_manager/var/session_info"
}
