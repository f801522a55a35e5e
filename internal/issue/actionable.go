// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
)

type (
	// ActionableError is an error with context for user-facing error
	// messages: what operation failed, what resource was involved, and
	// suggestions for how to fix it.
	//
	// Use the ErrorContext builder for convenient construction:
	//
	//	err := issue.NewErrorContext().
	//		WithOperation("load configuration").
	//		WithResource("~/.config/may/config.yaml").
	//		WithSuggestion("Check the file's YAML syntax").
	//		Wrap(originalErr).
	//		Build()
	ActionableError struct {
		// Operation describes what was being attempted.
		Operation string

		// Resource identifies the file, path, or entity involved (optional).
		Resource string

		// Suggestions provides hints on how to fix the issue (optional).
		Suggestions []string

		// Cause is the underlying error that triggered this one (optional).
		Cause error
	}

	// ErrorContext is a builder for constructing ActionableError instances.
	ErrorContext struct {
		operation   string
		resource    string
		suggestions []string
		cause       error
	}
)

// NewErrorContext creates a new ErrorContext builder.
func NewErrorContext() *ErrorContext {
	return &ErrorContext{}
}

// WrapWithOperation wraps an error with operation context. Shorthand for the
// common single-field case; returns nil for a nil error.
func WrapWithOperation(err error, operation string) error {
	if err == nil {
		return nil
	}
	return &ActionableError{Operation: operation, Cause: err}
}

// WithOperation sets the operation description.
func (c *ErrorContext) WithOperation(operation string) *ErrorContext {
	c.operation = operation
	return c
}

// WithResource sets the resource identifier.
func (c *ErrorContext) WithResource(resource string) *ErrorContext {
	c.resource = resource
	return c
}

// WithSuggestion appends a fix suggestion.
func (c *ErrorContext) WithSuggestion(suggestion string) *ErrorContext {
	c.suggestions = append(c.suggestions, suggestion)
	return c
}

// Wrap records the underlying cause.
func (c *ErrorContext) Wrap(err error) *ErrorContext {
	c.cause = err
	return c
}

// Build constructs the ActionableError.
func (c *ErrorContext) Build() *ActionableError {
	return &ActionableError{
		Operation:   c.operation,
		Resource:    c.resource,
		Suggestions: c.suggestions,
		Cause:       c.cause,
	}
}

// Error implements the error interface with a concise message suitable for
// default (non-verbose) output.
func (e *ActionableError) Error() string {
	var msg strings.Builder

	msg.WriteString("failed to ")
	msg.WriteString(e.Operation)

	if e.Resource != "" {
		msg.WriteString(": ")
		msg.WriteString(e.Resource)
	}
	if e.Cause != nil {
		msg.WriteString(": ")
		msg.WriteString(e.Cause.Error())
	}

	return msg.String()
}

// Unwrap returns the underlying cause for use with errors.Is/As.
func (e *ActionableError) Unwrap() error {
	return e.Cause
}

// Format returns the error message followed by its suggestions. In verbose
// mode the full error chain is appended.
func (e *ActionableError) Format(verbose bool) string {
	var msg strings.Builder

	msg.WriteString(e.Error())

	for _, suggestion := range e.Suggestions {
		msg.WriteString("\n  • ")
		msg.WriteString(suggestion)
	}

	if verbose && e.Cause != nil {
		msg.WriteString("\n\nError chain:")
		for i, err := 1, e.Cause; err != nil; i, err = i+1, errors.Unwrap(err) {
			msg.WriteString(fmt.Sprintf("\n  %d. %s", i, err.Error()))
		}
	}

	return msg.String()
}
