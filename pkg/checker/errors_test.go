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

package checker_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/unikorn-cloud/everest-apicheck/pkg/checker"
	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
	"github.com/unikorn-cloud/everest-apicheck/pkg/validation"
)

func decodeError(t *testing.T, body string) error {
	t.Helper()

	var out openapi.SessionInfo

	err := json.Unmarshal([]byte(body), &out)
	require.Error(t, err)

	return &client.DecodeError{Method: "GET", Path: "/everest_api/evse_manager/var/session_info", Body: body, Err: err}
}

// TestClassify ensures every error maps onto exactly one kind.
func TestClassify(t *testing.T) {
	t.Parallel()

	require.Equal(t, checker.KindNone, checker.Classify(nil))
	require.Equal(t, checker.KindConnection, checker.Classify(&client.ConnectionError{Err: errors.New("refused")}))
	require.Equal(t, checker.KindUnexpectedStatus, checker.Classify(fmt.Errorf("wrapped: %w", &client.UnexpectedStatusError{Expected: 200, Actual: 404})))
	require.Equal(t, checker.KindAssertion, checker.Classify(&checker.AssertionFailure{Field: "ready"}))
	require.Equal(t, checker.KindAssertion, checker.Classify(&validation.SchemaError{Err: errors.New("bad")}))
	require.Equal(t, checker.KindInternal, checker.Classify(errors.New("boom")))
}

// TestWrongTypeNamesField ensures a type mismatch reports the JSON field.
func TestWrongTypeNamesField(t *testing.T) {
	t.Parallel()

	failure, ok := checker.AsAssertionFailure(decodeError(t, `{"charging_time_s":"soon"}`))
	require.True(t, ok)
	require.Equal(t, "charging_time_s", failure.Field)
	require.Equal(t, "a value of type int64", failure.Expected)
	require.Equal(t, "string", failure.Actual)
}

// TestMalformedBody ensures unparseable JSON is an assertion on the body.
func TestMalformedBody(t *testing.T) {
	t.Parallel()

	failure, ok := checker.AsAssertionFailure(decodeError(t, `<html>Bad Gateway</html>`))
	require.True(t, ok)
	require.Equal(t, "$", failure.Field)
	require.Equal(t, "a JSON document", failure.Expected)
	require.Equal(t, `"<html>Bad Gateway</html>"`, failure.Actual)
}

// TestAssertionFailureMessage ensures the message carries field, expected
// and actual values.
func TestAssertionFailureMessage(t *testing.T) {
	t.Parallel()

	failure := &checker.AssertionFailure{Field: "battery_temperature_C", Expected: "in [-10, 70]", Actual: "71"}
	require.Equal(t, "battery_temperature_C: expected in [-10, 70], got 71", failure.Error())
}
