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

package options

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads the first .env file found in paths into the
// environment. Variables that are already set take precedence. It is not
// an error for none to exist, as in CI/CD the variables are set directly.
// The loaded path is returned, or an empty string.
func LoadEnvFile(paths ...string) string {
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			continue
		}

		if err := godotenv.Load(absPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load .env file from %s: %v\n", absPath, err)
			continue
		}

		return absPath
	}

	return ""
}

// GetStringWithDefault gets a string from environment variable or returns default.
func GetStringWithDefault(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}

// GetIntWithDefault gets an integer from environment variable or returns default.
func GetIntWithDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

// GetDurationWithDefault gets a duration from environment variable or returns default.
func GetDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

// GetBoolWithDefault gets a boolean from environment variable or returns default.
func GetBoolWithDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}

	return boolValue
}
