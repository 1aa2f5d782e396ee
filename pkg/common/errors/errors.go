// Package errors defines the error types shared across the seqkit library.
package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the seqkit library

var (
	// ErrEmptySequence indicates that a terminal operation requiring at
	// least one element was applied to an empty sequence
	ErrEmptySequence = errors.New("sequence is empty")

	// ErrMultipleElements indicates that a terminal operation expecting
	// exactly one element found more than one
	ErrMultipleElements = errors.New("sequence has more than one element")

	// ErrInvalidArgument indicates an invalid argument was passed to an
	// operation
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError describes an invalid argument with enough context to fix
// the call site. It unwraps to ErrInvalidArgument.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a remediation hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// OperationError wraps a failure from a named operation with its module,
// preserving the cause for errors.Is/As.
type OperationError struct {
	Module    string
	Operation string
	Cause     error
	Context   string
}

// NewOperationError creates an OperationError for the given module and operation.
func NewOperationError(module, operation string, cause error) *OperationError {
	return &OperationError{
		Module:    module,
		Operation: operation,
		Cause:     cause,
	}
}

// WithContext attaches additional context and returns the same error for chaining.
func (e *OperationError) WithContext(context string) *OperationError {
	e.Context = context
	return e
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s.%s failed: %v", e.Module, e.Operation, e.Cause)
	if e.Context != "" {
		msg += " (" + e.Context + ")"
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}

// IsEmptySequence returns true if the error indicates a terminal operation
// was applied to an empty sequence
func IsEmptySequence(err error) bool {
	return errors.Is(err, ErrEmptySequence)
}

// IsValidationError returns true if the error is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
