// Package errors provides structured error types for the Arkilian client
// routing core. All errors include a category, code, and message for
// consistent error handling across SDK components. Every failure in this
// core is a deterministic function of its input, so no error here is
// retryable.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by concern.
type ErrorCategory string

const (
	ErrCategoryValidation ErrorCategory = "VALIDATION"
	ErrCategoryRouting    ErrorCategory = "ROUTING"
	ErrCategoryInternal   ErrorCategory = "INTERNAL"
)

// Error codes for each category.
const (
	// Validation codes
	CodeNullStringComponent = "NULL_STRING_COMPONENT"
	CodeStringTooLong       = "STRING_TOO_LONG"
	CodeUnsupportedValue    = "UNSUPPORTED_VALUE"
	CodeInvalidDefinition   = "INVALID_DEFINITION"
	CodeEmptyKey            = "EMPTY_KEY"

	// Routing codes
	CodeGenerationMismatch = "GENERATION_MISMATCH"
	CodeUnknownVersion     = "UNKNOWN_VERSION"

	// Internal codes
	CodeUnexpected = "UNEXPECTED"
)

// RoutingError is the structured error type used throughout the routing core.
type RoutingError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Cause    error
}

// Error returns a formatted error string.
func (e *RoutingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s:%s] %s: %v", e.Category, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s:%s] %s", e.Category, e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *RoutingError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches this error's category and code.
func (e *RoutingError) Is(target error) bool {
	var t *RoutingError
	if errors.As(target, &t) {
		return e.Category == t.Category && e.Code == t.Code
	}
	return false
}

// New creates a new RoutingError.
func New(category ErrorCategory, code, message string) *RoutingError {
	return &RoutingError{
		Category: category,
		Code:     code,
		Message:  message,
	}
}

// Wrap creates a new RoutingError wrapping an existing error.
func Wrap(category ErrorCategory, code, message string, cause error) *RoutingError {
	return &RoutingError{
		Category: category,
		Code:     code,
		Message:  message,
		Cause:    cause,
	}
}

// GetCategory extracts the error category from an error chain.
// Returns empty string if the error is not a RoutingError.
func GetCategory(err error) ErrorCategory {
	var re *RoutingError
	if errors.As(err, &re) {
		return re.Category
	}
	return ""
}

// GetCode extracts the error code from an error chain.
// Returns empty string if the error is not a RoutingError.
func GetCode(err error) string {
	var re *RoutingError
	if errors.As(err, &re) {
		return re.Code
	}
	return ""
}

// Convenience constructors for common errors.

func NewValidationError(code, message string) *RoutingError {
	return New(ErrCategoryValidation, code, message)
}

func WrapValidationError(code, message string, cause error) *RoutingError {
	return Wrap(ErrCategoryValidation, code, message, cause)
}

func NewRoutingError(code, message string) *RoutingError {
	return New(ErrCategoryRouting, code, message)
}

func NewInternalError(message string, cause error) *RoutingError {
	return Wrap(ErrCategoryInternal, CodeUnexpected, message, cause)
}
