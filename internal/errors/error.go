package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRender Category = "render"
	CategoryParse  Category = "parse"
	CategoryQuery  Category = "query"
	CategoryConfig Category = "config"
	CategoryServer Category = "server"
	CategoryCLI    Category = "cli"
)

// DashError is a structured error with a code, suggestions, and documentation.
type DashError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (render, parse, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *DashError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *DashError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a DashError with the same code.
// Errors without a code only match themselves.
func (e *DashError) Is(target error) bool {
	t, ok := target.(*DashError)
	if !ok {
		return false
	}
	if e.Code == "" || t.Code == "" {
		return e == t
	}
	return e.Code == t.Code
}

// WithSuggestion adds a fix suggestion to the error.
func (e *DashError) WithSuggestion(s string) *DashError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *DashError) WithDetail(d string) *DashError {
	e.Detail = d
	return e
}

// WithDetailf adds a formatted explanation to the error.
func (e *DashError) WithDetailf(format string, args ...any) *DashError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *DashError) Wrap(err error) *DashError {
	e.Wrapped = err
	return e
}

// New creates a DashError from a registered error code.
// The detail of the template is left out; callers attach their own.
func New(code string) *DashError {
	template, ok := registry[code]
	if !ok {
		return &DashError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &DashError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new DashError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *DashError {
	return &DashError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a DashError.
// DashErrors are returned unchanged.
func FromError(err error, code string) *DashError {
	if err == nil {
		return nil
	}
	if de, ok := err.(*DashError); ok {
		return de
	}
	return New(code).Wrap(err)
}
