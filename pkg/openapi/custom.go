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

package openapi

import (
	"errors"
	"regexp"
)

var ErrInvalidLogLevel = errors.New("invalid log level: must be one of verbose, debug, info, warning, error or critical")

var logLevelValidationRegex = regexp.MustCompile("^(verbose|debug|info|warning|error|critical)$")

// LogLevel is a module log level as understood by the EVerest framework.
type LogLevel string

const (
	LogLevelVerbose  LogLevel = "verbose"
	LogLevelDebug    LogLevel = "debug"
	LogLevelInfo     LogLevel = "info"
	LogLevelWarning  LogLevel = "warning"
	LogLevelError    LogLevel = "error"
	LogLevelCritical LogLevel = "critical"
)

func (l LogLevel) Validate() error {
	if !logLevelValidationRegex.MatchString(string(l)) {
		return ErrInvalidLogLevel
	}

	return nil
}

func (l *LogLevel) UnmarshalText(text []byte) error {
	level := LogLevel(text)

	if err := level.Validate(); err != nil {
		return err
	}

	*l = level

	return nil
}
