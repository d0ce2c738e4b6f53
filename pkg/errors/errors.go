// SPDX-License-Identifier: Apache-2.0
// Package errors provides the typed failure taxonomy for Pathfinder.
// Every failure that reaches a user is one of these codes, tagged with
// the pipeline stage that produced it.
package errors

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
)

// Code classifies Pathfinder failures for presentation and monitoring.
type Code string

const (
	// CodeInvalidInput indicates the career goal or skills list was empty
	// or malformed. Raised before any stage executes.
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeLookup indicates a data source has no entry for the requested
	// goal or skill. Stages surface this rather than fabricate values.
	CodeLookup Code = "LOOKUP_FAILURE"

	// CodeValidation indicates a stage output violated its declared schema.
	CodeValidation Code = "VALIDATION_FAILURE"

	// CodeTimeout indicates the request deadline fired while a stage was
	// still pending.
	CodeTimeout Code = "TIMEOUT"

	// CodeInternal indicates an unexpected system error.
	CodeInternal Code = "INTERNAL_ERROR"
)

// Error is a typed error carrying the failing stage and structured context.
// It implements the error interface and supports errors.As/Is traversal.
type Error struct {
	Code       Code
	Stage      string
	Message    string
	Err        error
	Context    map[string]any
	StatusCode int
}

// New creates an Error with the given code, message, and cause.
func New(code Code, msg string, cause error) *Error {
	return &Error{
		Code:       code,
		Message:    msg,
		Err:        cause,
		Context:    make(map[string]any),
		StatusCode: codeToStatus(code),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := string(e.Code)
	if e.Stage != "" {
		prefix = fmt.Sprintf("%s %s", e.Code, e.Stage)
	}
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", prefix, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", prefix, e.Message)
}

// Unwrap implements errors.Unwrap for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Err
}

// WithStage tags the error with the pipeline stage that produced it.
// Returns the error for method chaining.
func (e *Error) WithStage(stage string) *Error {
	e.Stage = stage
	return e
}

// WithContext adds a key-value pair to the error context.
// Returns the error for method chaining.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// MarshalJSON implements json.Marshaler for structured logging.
func (e *Error) MarshalJSON() ([]byte, error) {
	var cause string
	if e.Err != nil {
		cause = e.Err.Error()
	}
	return json.Marshal(struct {
		Code    string         `json:"code"`
		Stage   string         `json:"stage,omitempty"`
		Message string         `json:"message"`
		Cause   string         `json:"cause,omitempty"`
		Context map[string]any `json:"context,omitempty"`
	}{
		Code:    string(e.Code),
		Stage:   e.Stage,
		Message: e.Message,
		Cause:   cause,
		Context: e.Context,
	})
}

// AsError converts err to *Error, wrapping unknown errors as internal.
// Returns nil for nil input.
func AsError(err error) *Error {
	if err == nil {
		return nil
	}
	var pe *Error
	if stderrors.As(err, &pe) {
		return pe
	}
	return New(CodeInternal, "unexpected error", err)
}

// HasCode reports whether err is (or wraps) an Error with the given code.
func HasCode(err error, code Code) bool {
	var pe *Error
	if stderrors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// StageOf returns the stage tag of err, or "" when err carries none.
func StageOf(err error) string {
	var pe *Error
	if stderrors.As(err, &pe) {
		return pe.Stage
	}
	return ""
}

func codeToStatus(code Code) int {
	switch code {
	case CodeInvalidInput:
		return 400
	case CodeLookup:
		return 404
	case CodeValidation:
		return 502
	case CodeTimeout:
		return 504
	default:
		return 500
	}
}
