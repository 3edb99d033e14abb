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

// Package checker implements the EVerest API contract checks.
//
// Each check issues exactly one request (the round trip check excepted) and
// asserts on the JSON response. Checks are independent of one another and
// share nothing but the client, so they may run in any order. None of them
// retry: the first failing assertion ends that check and is reported with
// the field, the expected condition and the actual value.
//
// # Failure Kinds
//
// Failures are classified as:
//   - ConnectionError: the target could not be reached.
//   - UnexpectedStatusCode: the response status was not 200.
//   - AssertionFailure: a field was missing, of the wrong type, or out of range.
//
// The config-update check mutates the target's module configuration. The
// default set never reads it back; the opt-in config-roundtrip check does,
// and restores the original value afterwards.
package checker
