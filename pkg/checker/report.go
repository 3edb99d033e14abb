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
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"
)

// Result is the outcome of a single check.
type Result struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Passed      bool          `json:"passed"`
	Kind        Kind          `json:"kind,omitempty"`
	Field       string        `json:"field,omitempty"`
	Expected    string        `json:"expected,omitempty"`
	Actual      string        `json:"actual,omitempty"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"duration"`
}

func newResult(check Check, duration time.Duration, err error) Result {
	result := Result{
		Name:        check.Name,
		Description: check.Description,
		Passed:      err == nil,
		Duration:    duration,
	}

	if err == nil {
		return result
	}

	result.Kind = Classify(err)
	result.Error = err.Error()

	if failure, ok := AsAssertionFailure(err); ok {
		result.Field = failure.Field
		result.Expected = failure.Expected
		result.Actual = failure.Actual
	}

	return result
}

// Report aggregates the results of a run.
type Report struct {
	Results []Result `json:"results"`
	Passed  int      `json:"passed"`
	Failed  int      `json:"failed"`
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)

	if result.Passed {
		r.Passed++
	} else {
		r.Failed++
	}
}

// OK is true when every check passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Result looks up a result by check name.
func (r *Report) Result(name string) (Result, bool) {
	for _, result := range r.Results {
		if result.Name == name {
			return result, true
		}
	}

	return Result{}, false
}

func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	return encoder.Encode(r)
}

func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	for _, result := range r.Results {
		status := "PASS"
		detail := ""

		if !result.Passed {
			status = "FAIL"
			detail = fmt.Sprintf("%s: %s", result.Kind, result.Error)
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", status, result.Name, result.Duration.Round(time.Millisecond), detail)
	}

	fmt.Fprintf(tw, "\n%d passed, %d failed\n", r.Passed, r.Failed)

	return tw.Flush()
}
