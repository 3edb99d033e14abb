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
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) *flags {
	t.Helper()

	var f flags

	fs := pflag.NewFlagSet("everest-apicheck", pflag.ContinueOnError)
	f.addFlags(fs)

	require.NoError(t, fs.Parse(args))

	return &f
}

// TestValidateFlags ensures bad readiness polling flags are rejected before
// anything runs.
func TestValidateFlags(t *testing.T) {
	t.Parallel()

	require.NoError(t, parseFlags(t).validate())
	require.NoError(t, parseFlags(t, "--wait-ready", "5s").validate())
	require.NoError(t, parseFlags(t, "--wait-interval", "0").validate())

	require.Error(t, parseFlags(t, "--wait-ready", "5s", "--wait-interval", "0").validate())
	require.Error(t, parseFlags(t, "--wait-ready", "5s", "--wait-interval", "-1s").validate())
	require.Error(t, parseFlags(t, "--wait-ready", "-5s").validate())
	require.Error(t, parseFlags(t, "--output", "xml").validate())
}
