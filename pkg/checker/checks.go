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

package checker

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
)

// Check names.
const (
	SystemReady     = "system-ready"
	ModuleList      = "module-list"
	ModuleDetails   = "module-details"
	ConfigUpdate    = "config-update"
	SessionInfo     = "session-info"
	ConfigRoundTrip = "config-roundtrip"
)

// Func performs a single request and asserts on the response.
type Func func(ctx context.Context, c client.Interface, e *Expectations) error

// Check is a named contract check.
type Check struct {
	Name        string
	Description string
	// Default checks run when no explicit selection is made.
	Default bool
	Run     Func
}

// All returns every known check in execution order.
func All() []Check {
	return []Check{
		{
			Name:        SystemReady,
			Description: "GET /api/system/ready reports ready",
			Default:     true,
			Run:         CheckSystemReady,
		},
		{
			Name:        ModuleList,
			Description: "GET /api/modules lists the expected module first, running",
			Default:     true,
			Run:         CheckModuleList,
		},
		{
			Name:        ModuleDetails,
			Description: "GET /api/modules/{id} returns the module with its log level",
			Default:     true,
			Run:         CheckModuleDetails,
		},
		{
			Name:        ConfigUpdate,
			Description: "POST /api/modules/{id}/config accepts a log level change",
			Default:     true,
			Run:         CheckConfigUpdate,
		},
		{
			Name:        SessionInfo,
			Description: "GET /everest_api/evse_manager/var/session_info is within bounds",
			Default:     true,
			Run:         CheckSessionInfo,
		},
		{
			Name:        ConfigRoundTrip,
			Description: "a config update is observed by a subsequent module read, then reverted",
			Run:         CheckConfigRoundTrip,
		},
	}
}

func nonNull[T any](value *T) error {
	if value == nil {
		return fail("$", "non-null JSON body", "null")
	}

	return nil
}

// CheckSystemReady requires the system to report ready == true.
func CheckSystemReady(ctx context.Context, c client.Interface, _ *Expectations) error {
	resp, err := c.SystemReady(ctx)
	if err != nil {
		return err
	}

	if err := nonNull(resp); err != nil {
		return err
	}

	return expectEqual("ready", resp.Ready, true)
}

// CheckModuleList requires a non-empty module list whose first entry is the
// expected module, running.
func CheckModuleList(ctx context.Context, c client.Interface, e *Expectations) error {
	resp, err := c.ListModules(ctx)
	if err != nil {
		return err
	}

	if err := nonNull(resp); err != nil {
		return err
	}

	modules, err := expectNotEmpty("modules", resp.Modules)
	if err != nil {
		return err
	}

	if err := expectEqual("modules[0].id", modules[0].Id, e.ModuleID); err != nil {
		return err
	}

	return expectEqual("modules[0].status", modules[0].Status, e.RunningStatus)
}

// moduleLogLevel reads a module and checks it is the expected one, returning
// its configured log level.
func moduleLogLevel(ctx context.Context, c client.Interface, e *Expectations) (string, error) {
	detail, err := c.GetModule(ctx, e.ModuleID)
	if err != nil {
		return "", err
	}

	if err := nonNull(detail); err != nil {
		return "", err
	}

	if err := expectEqual("id", detail.Id, e.ModuleID); err != nil {
		return "", err
	}

	if err := expectEqual("status", detail.Status, e.RunningStatus); err != nil {
		return "", err
	}

	config, err := present("config", detail.Config)
	if err != nil {
		return "", err
	}

	return expectString("config", config, "log_level")
}

// CheckModuleDetails requires the module to echo its ID, be running, and
// carry the initial log level.
func CheckModuleDetails(ctx context.Context, c client.Interface, e *Expectations) error {
	logLevel, err := moduleLogLevel(ctx, c, e)
	if err != nil {
		return err
	}

	if logLevel != string(e.InitialLogLevel) {
		return fail("config.log_level", fmt.Sprintf("== %s", e.InitialLogLevel), logLevel)
	}

	return nil
}

func updateLogLevel(ctx context.Context, c client.Interface, moduleID string, level openapi.LogLevel) error {
	resp, err := c.UpdateModuleConfig(ctx, moduleID, &openapi.ConfigUpdateRequest{LogLevel: level})
	if err != nil {
		return err
	}

	if err := nonNull(resp); err != nil {
		return err
	}

	return expectEqual("success", resp.Success, true)
}

// CheckConfigUpdate requires the module to accept the updated log level.
// This mutates the target's module configuration.
func CheckConfigUpdate(ctx context.Context, c client.Interface, e *Expectations) error {
	return updateLogLevel(ctx, c, e.ModuleID, e.UpdatedLogLevel)
}

// CheckSessionInfo requires every session telemetry field to be present and
// within bounds, bounds being inclusive.
func CheckSessionInfo(ctx context.Context, c client.Interface, e *Expectations) error {
	info, err := c.SessionInfo(ctx)
	if err != nil {
		return err
	}

	if err := nonNull(info); err != nil {
		return err
	}

	bounds := &e.Session

	if err := expectAtLeast("energy_session_kWh", info.EnergySessionKWh, bounds.EnergyMinKWh); err != nil {
		return err
	}

	if err := expectAtLeast("power_session_kW", info.PowerSessionKW, bounds.PowerMinKW); err != nil {
		return err
	}

	if err := expectWithin("battery_temperature_C", info.BatteryTemperatureC, bounds.TemperatureMinC, bounds.TemperatureMaxC); err != nil {
		return err
	}

	return expectAtLeast("charging_time_s", info.ChargingTimeS, bounds.ChargingTimeMinS)
}

// CheckConfigRoundTrip updates the log level, requires the change to be
// visible when the module is read back, then restores the original level.
func CheckConfigRoundTrip(ctx context.Context, c client.Interface, e *Expectations) (err error) {
	log := logr.FromContextOrDiscard(ctx)

	detail, err := c.GetModule(ctx, e.ModuleID)
	if err != nil {
		return err
	}

	if err := nonNull(detail); err != nil {
		return err
	}

	config, err := present("config", detail.Config)
	if err != nil {
		return err
	}

	original, err := expectString("config", config, "log_level")
	if err != nil {
		return err
	}

	if err := updateLogLevel(ctx, c, e.ModuleID, e.UpdatedLogLevel); err != nil {
		return err
	}

	defer func() {
		restore := openapi.LogLevel(original)

		if verr := restore.Validate(); verr != nil {
			log.Info("not restoring unrecognised log level", "module", e.ModuleID, "logLevel", original)
			return
		}

		if rerr := updateLogLevel(ctx, c, e.ModuleID, restore); rerr != nil {
			err = errors.Join(err, fmt.Errorf("restoring log level %s: %w", original, rerr))
		}
	}()

	observed, err := moduleLogLevel(ctx, c, e)
	if err != nil {
		return err
	}

	if observed != string(e.UpdatedLogLevel) {
		return fail("config.log_level", fmt.Sprintf("== %s", e.UpdatedLogLevel), observed)
	}

	return nil
}
