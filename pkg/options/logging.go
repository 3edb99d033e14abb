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

package options

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingOptions configure the process logger.
type LoggingOptions struct {
	Level       string
	Development bool
}

func (o *LoggingOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Level, "log-level", GetStringWithDefault("LOG_LEVEL", "info"), "Log level, one of debug, info, warn or error.")
	f.BoolVar(&o.Development, "log-development", false, "Use human readable console logging.")
}

// SetupLogging builds a zap backed logr.Logger.
func (o *LoggingOptions) SetupLogging() (logr.Logger, error) {
	level, err := zapcore.ParseLevel(o.Level)
	if err != nil {
		return logr.Discard(), fmt.Errorf("parsing log level: %w", err)
	}

	config := zap.NewProductionConfig()

	if o.Development {
		config = zap.NewDevelopmentConfig()
	}

	config.Level = zap.NewAtomicLevelAt(level)

	zapLog, err := config.Build()
	if err != nil {
		return logr.Discard(), fmt.Errorf("building logger: %w", err)
	}

	return zapr.NewLogger(zapLog), nil
}
