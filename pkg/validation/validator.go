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

// Package validation checks raw API responses against the OpenAPI document.
package validation

import (
	"context"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"

	"github.com/unikorn-cloud/everest-apicheck/pkg/client"
	"github.com/unikorn-cloud/everest-apicheck/pkg/openapi"
)

// SchemaError is returned when a response does not conform to the document.
type SchemaError struct {
	Method string
	Path   string
	Status int
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s %s: response (status %d) violates schema: %v", e.Method, e.Path, e.Status, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// Validator validates responses for the routes in an OpenAPI document.
type Validator struct {
	router routers.Router
}

// Ensure the interface is implemented.
var _ client.ResponseValidator = &Validator{}

// New returns a validator for the given document.
func New(doc *openapi3.T) (*Validator, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("building router: %w", err)
	}

	return &Validator{
		router: router,
	}, nil
}

// NewFromEmbedded returns a validator for the embedded EVerest document.
func NewFromEmbedded(ctx context.Context) (*Validator, error) {
	doc, err := openapi.Schema(ctx)
	if err != nil {
		return nil, err
	}

	return New(doc)
}

func (v *Validator) Validate(ctx context.Context, method, path string, status int, header http.Header, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, method, path, nil)
	if err != nil {
		return fmt.Errorf("creating route lookup request: %w", err)
	}

	route, pathParams, err := v.router.FindRoute(req)
	if err != nil {
		return &SchemaError{Method: method, Path: path, Status: status, Err: err}
	}

	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request:    req,
			PathParams: pathParams,
			Route:      route,
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}

	input.SetBodyBytes(body)

	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return &SchemaError{Method: method, Path: path, Status: status, Err: err}
	}

	return nil
}
