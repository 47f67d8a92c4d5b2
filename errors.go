// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package params

import (
	"errors"
	"fmt"
	"net/http"
)

// Static errors for coercion internals.
var errInvalidBoolean = errors.New("invalid boolean value")

// UnknownSourceError reports a parameter declared against a source the
// engine does not recognize. It indicates a programming error in the
// declaration, not a request defect, and maps to a 500-class response.
type UnknownSourceError struct {
	Param  string // Parameter name
	Source Source // Declared source kind
}

// Error returns a formatted error message.
func (e *UnknownSourceError) Error() string {
	return fmt.Sprintf("parameter %q is bound to an unrecognized input source %q", e.Param, e.Source)
}

// HTTPStatus implements rivaas.dev/params/errors.ErrorType.
func (e *UnknownSourceError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// Code implements rivaas.dev/params/errors.ErrorCode.
func (e *UnknownSourceError) Code() string {
	return "unknown_source"
}

// MissingParamError reports a required parameter absent from its bound
// source, with no default and no optional marker.
type MissingParamError struct {
	Param  string // Parameter name
	Source Source // Source the parameter was expected in
}

// Error returns a formatted error message.
func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing required %s parameter %q", e.Source, e.Param)
}

// HTTPStatus implements rivaas.dev/params/errors.ErrorType.
func (e *MissingParamError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Code implements rivaas.dev/params/errors.ErrorCode.
func (e *MissingParamError) Code() string {
	return "missing_parameter"
}

// TypeMismatchError reports a coerced value whose runtime type is not in
// the declared candidate set, or a list-shaped requirement that was not
// met. Declared always carries the originally declared type, independent of
// any normalization that occurred.
type TypeMismatchError struct {
	Param    string // Parameter name
	Declared string // Originally declared type, rendered by Descriptor.String
	Got      string // Runtime type of the received value
}

// Error returns a formatted error message.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("parameter %q must be of type '%s' (got %s)", e.Param, e.Declared, e.Got)
}

// HTTPStatus implements rivaas.dev/params/errors.ErrorType.
func (e *TypeMismatchError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Code implements rivaas.dev/params/errors.ErrorCode.
func (e *TypeMismatchError) Code() string {
	return "type_mismatch"
}

// ConstraintError reports a correctly-typed value rejected by one of the
// binding's semantic constraints.
type ConstraintError struct {
	Param    string // Parameter name
	Declared string // Originally declared type
	Reason   string // The constraint's message
}

// Error returns a formatted error message.
func (e *ConstraintError) Error() string {
	return fmt.Sprintf("parameter %q %s", e.Param, e.Reason)
}

// HTTPStatus implements rivaas.dev/params/errors.ErrorType.
func (e *ConstraintError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Code implements rivaas.dev/params/errors.ErrorCode.
func (e *ConstraintError) Code() string {
	return "constraint_violation"
}

// MultiError aggregates per-parameter failures. It is returned when
// [WithAllErrors] switches a session to collect-all mode and more than zero
// parameters fail.
//
// Use errors.As to inspect individual failures:
//
//	var multi *params.MultiError
//	if errors.As(err, &multi) {
//	    for _, e := range multi.Errors {
//	        // handle each failure
//	    }
//	}
type MultiError struct {
	Errors []error
}

// Error returns a formatted error message.
func (m *MultiError) Error() string {
	switch len(m.Errors) {
	case 0:
		return "no errors"
	case 1:
		return m.Errors[0].Error()
	default:
		return fmt.Sprintf("%d parameters failed validation", len(m.Errors))
	}
}

// Unwrap returns all aggregated errors for errors.Is/As compatibility.
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// HTTPStatus implements rivaas.dev/params/errors.ErrorType.
func (m *MultiError) HTTPStatus() int {
	return http.StatusBadRequest
}

// Details implements rivaas.dev/params/errors.ErrorDetails.
func (m *MultiError) Details() any {
	msgs := make([]string, 0, len(m.Errors))
	for _, e := range m.Errors {
		msgs = append(msgs, e.Error())
	}

	return msgs
}

// Code implements rivaas.dev/params/errors.ErrorCode.
func (m *MultiError) Code() string {
	return "multiple_validation_errors"
}
