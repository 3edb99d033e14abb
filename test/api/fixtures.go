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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
	"github.com/unikorn-cloud/everest-apicheck/pkg/server"
	"github.com/unikorn-cloud/everest-apicheck/pkg/validation"
)

// NewAPIClient creates a client for the given base URL, validating
// responses against the OpenAPI document when configured to.
func NewAPIClient(ctx context.Context, config *TestConfig, baseURL string) *client.APIClient {
	options := client.Options{
		RequestTimeout: config.RequestTimeout,
		LogRequests:    config.LogRequests,
		LogResponses:   config.LogResponses,
	}

	if config.ValidateSchema {
		validator, err := validation.NewFromEmbedded(ctx)
		Expect(err).NotTo(HaveOccurred())

		options.Validator = validator
	}

	return client.New(baseURL, options)
}

// StartSimulator serves a simulator built from the seed until the current
// spec completes, and returns it with its base URL.
func StartSimulator(seed *server.Seed) (*server.Server, string) {
	simulator := server.New(GinkgoLogr, server.Options{}, seed)

	ts := httptest.NewServer(simulator.Handler())
	DeferCleanup(ts.Close)

	GinkgoWriter.Printf("Started simulator at %s\n", ts.URL)

	return simulator, ts.URL
}

// NewTarget returns a client for the configured live target, or for a
// fresh default simulator. The simulator is nil for a live target.
func NewTarget(ctx context.Context, config *TestConfig) (*client.APIClient, *server.Server) {
	if config.Live() {
		return NewAPIClient(ctx, config, config.BaseURL), nil
	}

	simulator, baseURL := StartSimulator(server.DefaultSeed())

	return NewAPIClient(ctx, config, baseURL), simulator
}

// RestoreLogLevelOnCleanup records a module's current log level and puts
// it back after the spec, so configuration tests leave a live target as
// they found it.
func RestoreLogLevelOnCleanup(ctx context.Context, c client.Interface, moduleID string) {
	detail, err := c.GetModule(ctx, moduleID)
	Expect(err).NotTo(HaveOccurred())
	Expect(detail).NotTo(BeNil())
	Expect(detail.Config).NotTo(BeNil())

	level, ok := (*detail.Config)["log_level"].(string)
	Expect(ok).To(BeTrue(), "module %s has no string log_level", moduleID)

	DeferCleanup(func(ctx SpecContext) {
		GinkgoWriter.Printf("Restoring %s log level to %s\n", moduleID, level)

		_, err := c.UpdateModuleConfig(ctx, moduleID, &openapi.ConfigUpdateRequest{
			LogLevel: openapi.LogLevel(level),
		})
		Expect(err).NotTo(HaveOccurred())
	})
}
