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

package module

import (
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"

	"k8s.io/utils/ptr"
)

var ErrNotFound = errors.New("module not found")

// Module is a loaded EVerest module.
type Module struct {
	ID     string                 `yaml:"id"`
	Status openapi.ModuleStatus   `yaml:"status"`
	Config map[string]interface{} `yaml:"config"`
}

// Registry holds modules in load order.
type Registry struct {
	lock    sync.RWMutex
	modules []*Module
}

// NewRegistry copies the given modules into a new registry.
func NewRegistry(modules []Module) *Registry {
	r := &Registry{
		modules: make([]*Module, len(modules)),
	}

	for i := range modules {
		config := maps.Clone(modules[i].Config)
		if config == nil {
			config = map[string]interface{}{}
		}

		r.modules[i] = &Module{
			ID:     modules[i].ID,
			Status: modules[i].Status,
			Config: config,
		}
	}

	return r
}

func (r *Registry) lookup(id string) (*Module, error) {
	for _, m := range r.modules {
		if m.ID == id {
			return m, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// List returns a summary of every module.
func (r *Registry) List() *openapi.ModuleListResponse {
	r.lock.RLock()
	defer r.lock.RUnlock()

	out := make([]openapi.ModuleSummary, len(r.modules))

	for i, m := range r.modules {
		out[i] = openapi.ModuleSummary{
			Id:     ptr.To(m.ID),
			Status: ptr.To(m.Status),
		}
	}

	return &openapi.ModuleListResponse{
		Modules: &out,
	}
}

// Get returns a module with a copy of its configuration.
func (r *Registry) Get(id string) (*openapi.ModuleDetail, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	m, err := r.lookup(id)
	if err != nil {
		return nil, err
	}

	config := openapi.ModuleConfig(maps.Clone(m.Config))

	return &openapi.ModuleDetail{
		Id:     ptr.To(m.ID),
		Status: ptr.To(m.Status),
		Config: &config,
	}, nil
}

// UpdateConfig applies a configuration change to a module.
func (r *Registry) UpdateConfig(id string, request *openapi.ConfigUpdateRequest) error {
	if err := request.LogLevel.Validate(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	m, err := r.lookup(id)
	if err != nil {
		return err
	}

	m.Config["log_level"] = string(request.LogLevel)

	return nil
}

// SetStatus changes a module's lifecycle state.
func (r *Registry) SetStatus(id string, status openapi.ModuleStatus) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	m, err := r.lookup(id)
	if err != nil {
		return err
	}

	m.Status = status

	return nil
}
