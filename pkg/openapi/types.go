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

package openapi

// Wire types for the EVerest Node-RED API. These mirror the schemas in
// everest.yaml. Fields are pointers so a consumer can tell a missing field
// apart from a zero value.

// ModuleStatus is the lifecycle state of a module.
type ModuleStatus string

const (
	ModuleStatusRunning ModuleStatus = "running"
	ModuleStatusStopped ModuleStatus = "stopped"
)

// ReadinessResponse is returned by GET /api/system/ready.
type ReadinessResponse struct {
	Ready *bool `json:"ready,omitempty"`
}

// ModuleSummary is a single entry of the module list.
type ModuleSummary struct {
	Id     *string       `json:"id,omitempty"`
	Status *ModuleStatus `json:"status,omitempty"`
}

// ModuleListResponse is returned by GET /api/modules.
type ModuleListResponse struct {
	Modules *[]ModuleSummary `json:"modules,omitempty"`
}

// ModuleConfig is the free form configuration of a module.
type ModuleConfig map[string]interface{}

// ModuleDetail is returned by GET /api/modules/{id}.
type ModuleDetail struct {
	Id     *string       `json:"id,omitempty"`
	Status *ModuleStatus `json:"status,omitempty"`
	Config *ModuleConfig `json:"config,omitempty"`
}

// ConfigUpdateRequest is the body of POST /api/modules/{id}/config.
type ConfigUpdateRequest struct {
	LogLevel LogLevel `json:"log_level"`
}

// ConfigUpdateResponse is returned by POST /api/modules/{id}/config.
type ConfigUpdateResponse struct {
	Success *bool `json:"success,omitempty"`
}

// SessionInfo is the live EVSE session telemetry.
type SessionInfo struct {
	EnergySessionKWh    *float64 `json:"energy_session_kWh,omitempty"`
	PowerSessionKW      *float64 `json:"power_session_kW,omitempty"`
	BatteryTemperatureC *float64 `json:"battery_temperature_C,omitempty"`
	ChargingTimeS       *int64   `json:"charging_time_s,omitempty"`
}

// ErrorResponse is returned on any non-2xx status.
type ErrorResponse struct {
	Error       string `json:"error"`
	Description string `json:"error_description,omitempty"`
}
