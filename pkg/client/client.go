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

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"

	"github.com/unikorn-cloud/everest-apicheck/pkg/constants"
	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
)

// Options configures the client.
type Options struct {
	// RequestTimeout bounds a single request/response exchange.
	RequestTimeout time.Duration
	// LogRequests logs method, path, status and duration of every request.
	LogRequests bool
	// LogResponses logs every response body.
	LogResponses bool
	// Validator, when set, validates every response against a schema.
	Validator ResponseValidator
}

// APIClient talks to the EVerest API, typically exposed by Node-RED.
type APIClient struct {
	baseURL   string
	client    *http.Client
	options   Options
	endpoints *Endpoints
}

// Ensure the interface is implemented.
var _ Interface = &APIClient{}

// New returns a new client for the API rooted at baseURL, which includes
// any base path.
func New(baseURL string, options Options) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: options.RequestTimeout,
		},
		options:   options,
		endpoints: NewEndpoints(),
	}
}

// BaseURL returns the URL requests are made relative to.
func (c *APIClient) BaseURL() string {
	return c.baseURL
}

// doRequest performs a request and returns the response body. A non-zero
// expectedStatus that does not match yields an UnexpectedStatusError.
func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader, expectedStatus int) ([]byte, error) {
	log := logr.FromContextOrDiscard(ctx)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	traceParent := createTraceParent()
	traceID := ExtractTraceID(traceParent)

	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=everest-apicheck")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constants.UserAgent())

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		log.Error(err, "http request failed", "method", method, "path", path, "duration", duration, "traceID", traceID)

		return nil, &ConnectionError{Method: method, Path: path, TraceID: traceID, Err: err}
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error(err, "reading response body", "method", method, "path", path, "status", resp.StatusCode, "traceID", traceID)

		return nil, &ConnectionError{Method: method, Path: path, TraceID: traceID, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if c.options.LogRequests {
		log.Info("request", "method", method, "path", path, "status", resp.StatusCode, "duration", duration, "traceID", traceID)
	}

	if c.options.LogResponses && len(respBody) > 0 {
		log.Info("response", "method", method, "path", path, "body", string(respBody))
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		log.Info("unexpected status", "method", method, "path", path, "expected", expectedStatus, "got", resp.StatusCode, "traceID", traceID)

		return nil, &UnexpectedStatusError{
			Method:   method,
			Path:     path,
			Expected: expectedStatus,
			Actual:   resp.StatusCode,
			Body:     truncateBody(respBody),
			TraceID:  traceID,
		}
	}

	if c.options.Validator != nil {
		if err := c.options.Validator.Validate(ctx, method, path, resp.StatusCode, resp.Header, respBody); err != nil {
			return nil, err
		}
	}

	return respBody, nil
}

// decode unmarshals a JSON body. A literal null body yields a nil result
// and no error.
func decode[T any](method, path string, body []byte) (*T, error) {
	var out *T

	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &DecodeError{Method: method, Path: path, Body: string(body), Err: err}
	}

	return out, nil
}

// get performs a GET that must return 200 and decodes the result.
func get[T any](ctx context.Context, c *APIClient, path string) (*T, error) {
	body, err := c.doRequest(ctx, http.MethodGet, path, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}

	return decode[T](http.MethodGet, path, body)
}

func (c *APIClient) SystemReady(ctx context.Context) (*openapi.ReadinessResponse, error) {
	return get[openapi.ReadinessResponse](ctx, c, c.endpoints.SystemReady())
}

func (c *APIClient) ListModules(ctx context.Context) (*openapi.ModuleListResponse, error) {
	return get[openapi.ModuleListResponse](ctx, c, c.endpoints.ListModules())
}

func (c *APIClient) GetModule(ctx context.Context, moduleID string) (*openapi.ModuleDetail, error) {
	path, err := c.endpoints.GetModule(moduleID)
	if err != nil {
		return nil, err
	}

	return get[openapi.ModuleDetail](ctx, c, path)
}

func (c *APIClient) UpdateModuleConfig(ctx context.Context, moduleID string, request *openapi.ConfigUpdateRequest) (*openapi.ConfigUpdateResponse, error) {
	path, err := c.endpoints.UpdateModuleConfig(moduleID)
	if err != nil {
		return nil, err
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("marshaling config update: %w", err)
	}

	body, err := c.doRequest(ctx, http.MethodPost, path, bytes.NewReader(requestBody), http.StatusOK)
	if err != nil {
		return nil, err
	}

	return decode[openapi.ConfigUpdateResponse](http.MethodPost, path, body)
}

func (c *APIClient) SessionInfo(ctx context.Context) (*openapi.SessionInfo, error) {
	return get[openapi.SessionInfo](ctx, c, c.endpoints.SessionInfo())
}
