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
	"fmt"
	"strings"
	"time"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/pkg/options"
)

type TestConfig struct {
	// BaseURL is a live EVerest API. When empty, each spec gets its
	// own in-process simulator.
	BaseURL          string
	RequestTimeout   time.Duration
	TestTimeout      time.Duration
	ExpectationsPath string
	ValidateSchema   bool
	LogRequests      bool
	LogResponses     bool
}

// Live is true when running against a real target.
func (c *TestConfig) Live() bool {
	return c.BaseURL != ""
}

// LoadTestConfig loads configuration from environment variables and .env files.
func LoadTestConfig() (*TestConfig, error) {
	loadEnvFile()

	config := &TestConfig{
		BaseURL:          strings.TrimSuffix(options.GetStringWithDefault("EVEREST_BASE_URL", ""), "/"),
		RequestTimeout:   options.GetDurationWithDefault("REQUEST_TIMEOUT", options.DefaultRequestTimeout),
		TestTimeout:      options.GetDurationWithDefault("TEST_TIMEOUT", time.Minute),
		ExpectationsPath: options.GetStringWithDefault("EXPECTATIONS", ""),
		ValidateSchema:   options.GetBoolWithDefault("VALIDATE_SCHEMA", true),
		LogRequests:      options.GetBoolWithDefault("LOG_REQUESTS", false),
		LogResponses:     options.GetBoolWithDefault("LOG_RESPONSES", false),
	}

	if config.BaseURL != "" && !strings.HasPrefix(config.BaseURL, "http://") && !strings.HasPrefix(config.BaseURL, "https://") {
		return nil, fmt.Errorf("%w: EVEREST_BASE_URL %q must be an http or https URL", options.ErrInvalidTarget, config.BaseURL)
	}

	return config, nil
}

// LoadExpectations returns the expected values, from EXPECTATIONS if set.
func (c *TestConfig) LoadExpectations() (*checker.Expectations, error) {
	return checker.LoadExpectations(c.ExpectationsPath)
}

func loadEnvFile() {
	options.LoadEnvFile(
		"../../../test/.env", // From test/api/suites directory
		"../../test/.env",    // From test/api directory
	)
}
