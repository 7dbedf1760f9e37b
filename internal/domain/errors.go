package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
//
// ErrNotFound doubles as "not found or not yours": callers must not be able
// to tell a missing record from one owned by somebody else.
var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
	ErrValidation     = errors.New("validation error")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("conflict")
	ErrStorage        = errors.New("storage error")
	ErrAI             = errors.New("ai error")
	ErrPartialSuccess = errors.New("partial success")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PartialSuccessError reports an enrichment whose result was computed but
// could not be saved. Result carries the computed value so it is not lost.
type PartialSuccessError struct {
	Op     string
	Result any
	Err    error
}

func (e *PartialSuccessError) Error() string {
	return fmt.Sprintf("%s: result computed but not saved: %v", e.Op, e.Err)
}

func (e *PartialSuccessError) Unwrap() error { return e.Err }

// Is reports a match against ErrPartialSuccess in addition to the wrapped cause.
func (e *PartialSuccessError) Is(target error) bool {
	return target == ErrPartialSuccess
}

// NewPartialSuccess wraps a persistence failure that happened after a
// successful enrichment call.
func NewPartialSuccess(op string, result any, err error) *PartialSuccessError {
	return &PartialSuccessError{Op: op, Result: result, Err: err}
}
