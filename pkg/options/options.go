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

package options

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
)

var ErrInvalidTarget = errors.New("invalid target")

const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 1880
	DefaultRequestTimeout = 30 * time.Second
)

// TargetOptions locate the EVerest API, typically the Node-RED bridge.
type TargetOptions struct {
	Host           string
	Port           int
	BasePath       string
	RequestTimeout time.Duration
	LogRequests    bool
	LogResponses   bool
}

// AddFlags registers the flags, with defaults taken from the environment.
func (o *TargetOptions) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.Host, "host", GetStringWithDefault("EVEREST_HOST", DefaultHost), "EVerest API host.")
	f.IntVar(&o.Port, "port", GetIntWithDefault("EVEREST_PORT", DefaultPort), "EVerest API port.")
	f.StringVar(&o.BasePath, "base-path", GetStringWithDefault("EVEREST_BASE_PATH", ""), "Path prefix for all API endpoints.")
	f.DurationVar(&o.RequestTimeout, "request-timeout", GetDurationWithDefault("REQUEST_TIMEOUT", DefaultRequestTimeout), "Timeout for a single request.")
	f.BoolVar(&o.LogRequests, "log-requests", GetBoolWithDefault("LOG_REQUESTS", false), "Log every request.")
	f.BoolVar(&o.LogResponses, "log-responses", GetBoolWithDefault("LOG_RESPONSES", false), "Log every response body.")
}

func (o *TargetOptions) Validate() error {
	if o.Host == "" {
		return fmt.Errorf("%w: host must be set", ErrInvalidTarget)
	}

	if o.Port < 1 || o.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidTarget, o.Port)
	}

	if o.BasePath != "" && !strings.HasPrefix(o.BasePath, "/") {
		return fmt.Errorf("%w: base path %q must start with /", ErrInvalidTarget, o.BasePath)
	}

	if o.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidTarget)
	}

	return nil
}

// BaseURL is the URL all endpoint paths are relative to.
func (o *TargetOptions) BaseURL() string {
	return "http://" + net.JoinHostPort(o.Host, strconv.Itoa(o.Port)) + strings.TrimSuffix(o.BasePath, "/")
}

// ClientOptions returns the options for an API client to the target.
func (o *TargetOptions) ClientOptions() client.Options {
	return client.Options{
		RequestTimeout: o.RequestTimeout,
		LogRequests:    o.LogRequests,
		LogResponses:   o.LogResponses,
	}
}
