package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration and option validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// LayoutError reports a scene that could not be constructed from its inputs.
type LayoutError struct {
	Component string
	Message   string
	Err       error
}

// NewLayoutError constructs a LayoutError for the named layout component.
func NewLayoutError(component, message string, err error) error {
	return &LayoutError{Component: component, Message: message, Err: err}
}

func (e *LayoutError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Component != "" {
		return fmt.Sprintf("layout error [%s]: %s", e.Component, msg)
	}
	return fmt.Sprintf("layout error: %s", msg)
}

// Unwrap exposes the underlying error.
func (e *LayoutError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError indicates a backend failed to draw or encode a scene.
type RenderError struct {
	Format string
	Err    error
}

// NewRenderError constructs a RenderError for the given output format.
func NewRenderError(format string, err error) error {
	return &RenderError{Format: format, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Format != "" {
		return fmt.Sprintf("render error [%s]: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
