package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryRender     Category = "render"
	CategoryScope      Category = "scope"
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategoryCLI        Category = "cli"
)

// ArborError is a structured error with a node path, suggestions, and
// documentation.
type ArborError struct {
	// Code is a unique error identifier (e.g., "R001").
	Code string

	// Category is the error type (render, scope, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path locates the offending node in the input tree,
	// e.g. "div > ul > [2] > span".
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is code showing the correct approach.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface. The node path, when recorded,
// is part of the message so callers see where in the tree the error
// originated without unwrapping.
func (e *ArborError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ArborError) Unwrap() error {
	return e.Wrapped
}

// WithPath records the tree path of the node that caused the error.
func (e *ArborError) WithPath(path string) *ArborError {
	e.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *ArborError) WithSuggestion(s string) *ArborError {
	e.Suggestion = s
	return e
}

// WithExample adds a code example to the error.
func (e *ArborError) WithExample(ex string) *ArborError {
	e.Example = ex
	return e
}

// WithDetail replaces the detailed explanation of the error.
func (e *ArborError) WithDetail(d string) *ArborError {
	e.Detail = d
	return e
}

// WithDetailf replaces the detail with a formatted explanation.
func (e *ArborError) WithDetailf(format string, args ...any) *ArborError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *ArborError) Wrap(err error) *ArborError {
	e.Wrapped = err
	return e
}

// New creates an ArborError from a registered error code.
func New(code string) *ArborError {
	template, ok := registry[code]
	if !ok {
		return &ArborError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &ArborError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new ArborError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *ArborError {
	return &ArborError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an ArborError.
func FromError(err error, code string) *ArborError {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*ArborError); ok {
		return ae
	}
	return New(code).Wrap(err)
}
