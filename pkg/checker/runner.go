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
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/spjmurray/go-util/pkg/set"

	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
)

// Select returns the named checks in execution order. No names selects
// the default set.
func Select(names []string) ([]Check, error) {
	all := All()

	if len(names) == 0 {
		return slices.DeleteFunc(all, func(c Check) bool { return !c.Default }), nil
	}

	known := make([]string, len(all))

	for i := range all {
		known[i] = all[i].Name
	}

	requested := set.New[string](names...)

	var unknown []string

	for name := range requested.Difference(set.New[string](known...)).All() {
		unknown = append(unknown, name)
	}

	if len(unknown) > 0 {
		slices.Sort(unknown)

		return nil, fmt.Errorf("%w: %s (known checks: %s)", ErrUnknownCheck, strings.Join(unknown, ", "), strings.Join(known, ", "))
	}

	return slices.DeleteFunc(all, func(c Check) bool { return !slices.Contains(names, c.Name) }), nil
}

// Runner runs checks sequentially against a single target.
type Runner struct {
	client       client.Interface
	expectations *Expectations
	checks       []Check
}

func NewRunner(client client.Interface, expectations *Expectations, checks []Check) *Runner {
	return &Runner{
		client:       client,
		expectations: expectations,
		checks:       checks,
	}
}

// Run executes every check. A failing check does not stop the others.
func (r *Runner) Run(ctx context.Context) *Report {
	log := logr.FromContextOrDiscard(ctx)

	report := &Report{
		Results: make([]Result, 0, len(r.checks)),
	}

	for _, check := range r.checks {
		start := time.Now()
		err := check.Run(ctx, r.client, r.expectations)
		result := newResult(check, time.Since(start), err)

		if result.Passed {
			log.Info("check passed", "check", check.Name, "duration", result.Duration)
		} else {
			log.Info("check failed", "check", check.Name, "kind", result.Kind, "error", result.Error)
		}

		report.add(result)
	}

	return report
}

// WaitReady polls the readiness endpoint until the target reports ready,
// or the timeout expires.
func WaitReady(ctx context.Context, c client.Interface, timeout, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInterval, interval)
	}

	log := logr.FromContextOrDiscard(ctx)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var lastErr error

	for {
		resp, err := c.SystemReady(ctx)

		switch {
		case err != nil:
			lastErr = err
		case resp != nil && resp.Ready != nil && *resp.Ready:
			return nil
		default:
			lastErr = nil
		}

		log.Info("waiting for target to become ready", "error", lastErr)

		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("%w after %s: %w", ErrNotReady, timeout, lastErr)
			}

			return fmt.Errorf("%w after %s", ErrNotReady, timeout)
		case <-ticker.C:
		}
	}
}
