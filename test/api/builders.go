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

package api

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/module"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server/handler/session"
)

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

// UnknownModuleID returns a module ID that no target will have loaded.
func UnknownModuleID() string {
	return generateRandomName("no-such-module")
}

// SeedBuilder builds simulator seeds for testing.
type SeedBuilder struct {
	seed *server.Seed
}

// NewSeed creates a new seed builder with the simulator defaults.
func NewSeed() *SeedBuilder {
	return &SeedBuilder{
		seed: server.DefaultSeed(),
	}
}

// NotReady makes the simulator report that startup has not completed.
func (b *SeedBuilder) NotReady() *SeedBuilder {
	b.seed.Ready = false
	return b
}

// WithoutModules empties the module list.
func (b *SeedBuilder) WithoutModules() *SeedBuilder {
	b.seed.Modules = []module.Module{}
	return b
}

// WithModule appends a module with the given status and log level.
func (b *SeedBuilder) WithModule(id string, status openapi.ModuleStatus, level openapi.LogLevel) *SeedBuilder {
	b.seed.Modules = append(b.seed.Modules, module.Module{
		ID:     id,
		Status: status,
		Config: map[string]interface{}{
			"log_level": string(level),
		},
	})

	return b
}

// WithFirstModuleStatus changes the status of the API module.
func (b *SeedBuilder) WithFirstModuleStatus(status openapi.ModuleStatus) *SeedBuilder {
	b.seed.Modules[0].Status = status
	return b
}

// WithSession sets the EVSE session parameters.
func (b *SeedBuilder) WithSession(params session.Parameters) *SeedBuilder {
	b.seed.Session = params
	return b
}

// Build returns the completed seed.
func (b *SeedBuilder) Build() *server.Seed {
	return b.seed
}
