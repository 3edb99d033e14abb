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
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
)

var ErrInvalidExpectations = errors.New("invalid expectations")

// SessionBounds are the accepted ranges of EVSE session telemetry.
type SessionBounds struct {
	EnergyMinKWh     float64 `yaml:"energyMinKWh"`
	PowerMinKW       float64 `yaml:"powerMinKW"`
	TemperatureMinC  float64 `yaml:"temperatureMinC"`
	TemperatureMaxC  float64 `yaml:"temperatureMaxC"`
	ChargingTimeMinS int64   `yaml:"chargingTimeMinS"`
}

// Expectations are the values the checks assert against.
type Expectations struct {
	// ModuleID is the module expected first in the module list, and the
	// one that is inspected and reconfigured.
	ModuleID string `yaml:"moduleID"`
	// RunningStatus is the status a healthy module reports.
	RunningStatus openapi.ModuleStatus `yaml:"runningStatus"`
	// InitialLogLevel is the log level the module is expected to start with.
	InitialLogLevel openapi.LogLevel `yaml:"initialLogLevel"`
	// UpdatedLogLevel is the log level posted by the config update.
	UpdatedLogLevel openapi.LogLevel `yaml:"updatedLogLevel"`
	// Session bounds the session telemetry.
	Session SessionBounds `yaml:"session"`
}

// DefaultExpectations returns the expectations for a stock EVerest
// deployment behind Node-RED.
func DefaultExpectations() *Expectations {
	return &Expectations{
		ModuleID:        "API",
		RunningStatus:   openapi.ModuleStatusRunning,
		InitialLogLevel: openapi.LogLevelInfo,
		UpdatedLogLevel: openapi.LogLevelDebug,
		Session: SessionBounds{
			EnergyMinKWh:     0,
			PowerMinKW:       0,
			TemperatureMinC:  -10,
			TemperatureMaxC:  70,
			ChargingTimeMinS: 0,
		},
	}
}

// LoadExpectations reads a YAML file over the defaults, so the file
// need only contain the values that differ. An empty path yields the
// defaults.
func LoadExpectations(path string) (*Expectations, error) {
	e := DefaultExpectations()

	if path == "" {
		return e, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading expectations: %w", err)
	}

	if err := yaml.Unmarshal(data, e); err != nil {
		return nil, fmt.Errorf("parsing expectations %s: %w", path, err)
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Expectations) Validate() error {
	if e.ModuleID == "" {
		return fmt.Errorf("%w: moduleID must be set", ErrInvalidExpectations)
	}

	if e.RunningStatus == "" {
		return fmt.Errorf("%w: runningStatus must be set", ErrInvalidExpectations)
	}

	if err := e.InitialLogLevel.Validate(); err != nil {
		return fmt.Errorf("%w: initialLogLevel: %w", ErrInvalidExpectations, err)
	}

	if err := e.UpdatedLogLevel.Validate(); err != nil {
		return fmt.Errorf("%w: updatedLogLevel: %w", ErrInvalidExpectations, err)
	}

	if e.Session.TemperatureMinC > e.Session.TemperatureMaxC {
		return fmt.Errorf("%w: session temperature bounds are inverted", ErrInvalidExpectations)
	}

	return nil
}
