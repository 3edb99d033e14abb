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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/module"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/session"
)

// Seed is the initial state of the simulated EVerest instance.
type Seed struct {
	// Ready reports readiness from startup, otherwise after ReadyAfter.
	Ready bool `yaml:"ready"`
	// Modules are listed in load order, the first being the API module.
	Modules []module.Module `yaml:"modules"`
	// Session configures the EVSE manager.
	Session session.Parameters `yaml:"session"`
}

// DefaultSeed is a minimal single connector AC charger with one car
// plugged in and charging.
func DefaultSeed() *Seed {
	running := openapi.ModuleStatusRunning

	newModule := func(id string) module.Module {
		return module.Module{
			ID:     id,
			Status: running,
			Config: map[string]interface{}{
				"log_level": string(openapi.LogLevelInfo),
			},
		}
	}

	return &Seed{
		Ready: true,
		Modules: []module.Module{
			newModule("API"),
			newModule("EvseManager"),
			newModule("EnergyManager"),
			newModule("YetiDriver"),
			newModule("Auth"),
		},
		Session: session.Parameters{
			Charging:            true,
			PowerKW:             11,
			AmbientTemperatureC: 25,
			HeatingRateCPerHour: 4,
		},
	}
}

// LoadSeed reads a seed from YAML. Omitted top level fields keep their
// defaults.
func LoadSeed(path string) (*Seed, error) {
	seed := DefaultSeed()

	if path == "" {
		return seed, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seed file: %w", err)
	}

	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("parsing seed file %s: %w", path, err)
	}

	if err := seed.Session.Validate(); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	return seed, nil
}
