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

// Package api provides integration test utilities for the EVerest API.
//
// # Targets
//
// Suites run against EVEREST_BASE_URL when it is set, typically the
// Node-RED bridge of a running EVerest stack. Otherwise every spec gets its
// own in-process simulator, so the suites are self contained in CI.
//
// # Shared Client
//
// Suites use the same client as the command line checker, so a failure here
// reproduces with everest-apicheck. Responses are additionally validated
// against the embedded OpenAPI document unless VALIDATE_SCHEMA=false.
//
// # Side Effects
//
// Configuration specs change a module's log level on the target. They
// restore the original level on cleanup, but a crashed run can leave the
// updated level behind.
package api
