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
	"fmt"
)

func fail(field, expected string, actual any) *AssertionFailure {
	return &AssertionFailure{
		Field:    field,
		Expected: expected,
		Actual:   fmt.Sprintf("%v", actual),
	}
}

// present dereferences a field, failing if it was absent or null.
func present[T any](field string, value *T) (T, error) {
	if value == nil {
		var zero T

		return zero, fail(field, "non-null value", missing)
	}

	return *value, nil
}

func expectEqual[T comparable](field string, value *T, want T) error {
	got, err := present(field, value)
	if err != nil {
		return err
	}

	if got != want {
		return fail(field, fmt.Sprintf("== %v", want), got)
	}

	return nil
}

func expectAtLeast[T int64 | float64](field string, value *T, lower T) error {
	got, err := present(field, value)
	if err != nil {
		return err
	}

	if got < lower {
		return fail(field, fmt.Sprintf(">= %v", lower), got)
	}

	return nil
}

// expectWithin checks lower <= value <= upper.
func expectWithin(field string, value *float64, lower, upper float64) error {
	got, err := present(field, value)
	if err != nil {
		return err
	}

	if got < lower || got > upper {
		return fail(field, fmt.Sprintf("in [%v, %v]", lower, upper), got)
	}

	return nil
}

func expectNotEmpty[T any](field string, value *[]T) ([]T, error) {
	got, err := present(field, value)
	if err != nil {
		return nil, err
	}

	if len(got) == 0 {
		return nil, fail(field+".size()", "> 0", 0)
	}

	return got, nil
}

// expectString looks up a string valued key in a free form object.
func expectString(field string, object map[string]interface{}, key string) (string, error) {
	path := field + "." + key

	value, ok := object[key]
	if !ok || value == nil {
		return "", fail(path, "non-null value", missing)
	}

	s, ok := value.(string)
	if !ok {
		return "", fail(path, "a value of type string", fmt.Sprintf("%T %v", value, value))
	}

	return s, nil
}
