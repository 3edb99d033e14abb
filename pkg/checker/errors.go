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
	"errors"
	"fmt"

	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/validation"
)

var (
	// ErrUnknownCheck is returned when selecting a check that does not exist.
	ErrUnknownCheck = errors.New("unknown check")

	// ErrNotReady is returned when the target does not become ready in time.
	ErrNotReady = errors.New("target system not ready")

	// ErrInvalidInterval is returned for a non-positive polling interval.
	ErrInvalidInterval = errors.New("polling interval must be positive")
)

// Kind classifies why a check failed.
type Kind string

const (
	KindNone             Kind = ""
	KindConnection       Kind = "ConnectionError"
	KindUnexpectedStatus Kind = "UnexpectedStatusCode"
	KindAssertion        Kind = "AssertionFailure"
	KindInternal         Kind = "InternalError"
)

// missing is reported as the actual value of an absent field.
const missing = "<missing>"

// AssertionFailure describes a response field that did not meet its condition.
type AssertionFailure struct {
	// Field is the JSON path of the offending field, "$" for the whole body.
	Field string
	// Expected describes the condition, e.g. "== true" or "in [-10, 70]".
	Expected string
	// Actual is the value received.
	Actual string
}

func (f *AssertionFailure) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", f.Field, f.Expected, f.Actual)
}

// Classify maps an error returned by a check onto a failure kind.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	if _, ok := AsAssertionFailure(err); ok {
		return KindAssertion
	}

	var connectionError *client.ConnectionError
	if errors.As(err, &connectionError) {
		return KindConnection
	}

	var statusError *client.UnexpectedStatusError
	if errors.As(err, &statusError) {
		return KindUnexpectedStatus
	}

	return KindInternal
}

// AsAssertionFailure extracts an assertion failure from err. Body decoding
// and schema errors are reported as assertion failures too, as they mean a
// field is missing or of the wrong type.
func AsAssertionFailure(err error) (*AssertionFailure, bool) {
	var failure *AssertionFailure
	if errors.As(err, &failure) {
		return failure, true
	}

	var schemaError *validation.SchemaError
	if errors.As(err, &schemaError) {
		return &AssertionFailure{
			Field:    "$",
			Expected: "response conforming to the API schema",
			Actual:   schemaError.Err.Error(),
		}, true
	}

	var decodeError *client.DecodeError
	if !errors.As(err, &decodeError) {
		return nil, false
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(decodeError.Err, &typeError) {
		field := typeError.Field
		if field == "" {
			field = "$"
		}

		return &AssertionFailure{
			Field:    field,
			Expected: "a value of type " + typeError.Type.String(),
			Actual:   typeError.Value,
		}, true
	}

	return &AssertionFailure{
		Field:    "$",
		Expected: "a JSON document",
		Actual:   truncate(decodeError.Body, 64),
	}, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return fmt.Sprintf("%q", s)
	}

	return fmt.Sprintf("%q...", s[:n])
}
