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

package client

import (
	"fmt"
	"strings"
)

// maxErrorBody bounds how much of a response body is kept in an error.
const maxErrorBody = 256

func truncateBody(body []byte) string {
	if len(body) <= maxErrorBody {
		return string(body)
	}

	return strings.ToValidUTF8(string(body[:maxErrorBody]), "") + "..."
}

// ConnectionError is returned when the target could not be reached, or the
// exchange was interrupted before a full response was read.
type ConnectionError struct {
	Method  string
	Path    string
	TraceID string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s %s: connection failed (trace ID: %s): %v", e.Method, e.Path, e.TraceID, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// UnexpectedStatusError is returned when the response status code is not the
// one the operation requires.
type UnexpectedStatusError struct {
	Method   string
	Path     string
	Expected int
	Actual   int
	Body     string
	TraceID  string
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", e.Method, e.Path, e.Expected, e.Actual, e.Body, e.TraceID)
}

// DecodeError is returned when a response body is not the JSON document the
// operation expects, e.g. malformed, or a field has the wrong type.
type DecodeError struct {
	Method string
	Path   string
	Body   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decoding response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
