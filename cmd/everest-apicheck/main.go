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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/constants"
	"github.com/unikorn-cloud/everest-apicheck/pkg/options"
	"github.com/unikorn-cloud/everest-apicheck/pkg/validation"
)

const (
	outputText = "text"
	outputJSON = "json"
)

type flags struct {
	target  options.TargetOptions
	logging options.LoggingOptions

	checks         []string
	output         string
	waitReady      time.Duration
	waitInterval   time.Duration
	expectations   string
	validateSchema bool
}

func (f *flags) addFlags(fs *pflag.FlagSet) {
	f.target.AddFlags(fs)
	f.logging.AddFlags(fs)

	fs.StringSliceVar(&f.checks, "check", nil, "Check to run, may be repeated. Defaults to all default checks.")
	fs.StringVar(&f.output, "output", outputText, "Report format, one of text or json.")
	fs.DurationVar(&f.waitReady, "wait-ready", options.GetDurationWithDefault("WAIT_READY", 0), "Wait up to this long for the target to report ready before checking.")
	fs.DurationVar(&f.waitInterval, "wait-interval", time.Second, "Readiness polling interval.")
	fs.StringVar(&f.expectations, "expectations", options.GetStringWithDefault("EXPECTATIONS", ""), "YAML file overriding the expected values.")
	fs.BoolVar(&f.validateSchema, "validate-schema", options.GetBoolWithDefault("VALIDATE_SCHEMA", false), "Validate every response against the OpenAPI document.")
}

func (f *flags) validate() error {
	if f.output != outputText && f.output != outputJSON {
		return fmt.Errorf("unsupported output format %q", f.output)
	}

	if f.waitReady < 0 {
		return fmt.Errorf("wait-ready %s must not be negative", f.waitReady)
	}

	if f.waitReady > 0 && f.waitInterval <= 0 {
		return fmt.Errorf("wait-interval %s must be positive", f.waitInterval)
	}

	return f.target.Validate()
}

func run(ctx context.Context, f *flags) (bool, error) {
	log := logr.FromContextOrDiscard(ctx)

	checks, err := checker.Select(f.checks)
	if err != nil {
		return false, err
	}

	expectations, err := checker.LoadExpectations(f.expectations)
	if err != nil {
		return false, err
	}

	clientOptions := f.target.ClientOptions()

	if f.validateSchema {
		validator, err := validation.NewFromEmbedded(ctx)
		if err != nil {
			return false, err
		}

		clientOptions.Validator = validator
	}

	c := client.New(f.target.BaseURL(), clientOptions)

	log.Info("checking target", "baseURL", c.BaseURL(), "checks", len(checks))

	if f.waitReady > 0 {
		if err := checker.WaitReady(ctx, c, f.waitReady, f.waitInterval); err != nil {
			return false, err
		}
	}

	report := checker.NewRunner(c, expectations, checks).Run(ctx)

	if f.output == outputJSON {
		err = report.WriteJSON(os.Stdout)
	} else {
		err = report.WriteText(os.Stdout)
	}

	if err != nil {
		return false, err
	}

	return report.OK(), nil
}

func main() {
	options.LoadEnvFile(".env")

	var f flags

	f.addFlags(pflag.CommandLine)

	pflag.Parse()

	if err := f.validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := f.logging.SetupLogging()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger.Info("starting", "version", constants.VersionString())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ok, err := run(logr.NewContext(ctx, logger), &f)
	if err != nil {
		logger.Error(err, "check run failed")
		stop()
		os.Exit(1)
	}

	if !ok {
		stop()
		os.Exit(1)
	}
}
