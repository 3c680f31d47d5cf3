package referrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a type expression could not be parsed.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrDepth indicates nested name resolution went deeper than allowed.
	ErrDepth = errors.New("resolution depth exceeded")
)

// ParseError represents a failure to parse a type expression.
type ParseError struct {
	// Expr is the expression that failed to parse
	Expr string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Expr != "" {
		msg += fmt.Sprintf(" in %q", e.Expr)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// DepthError reports that resolving a type name recursed past a limit.
// It has no underlying cause.
type DepthError struct {
	// Type is the signature of the type being resolved when the limit was hit
	Type string
	// Depth is the nesting depth that was reached
	Depth int
	// Max is the configured maximum depth
	Max int
}

// Error returns a human-readable error message.
func (e *DepthError) Error() string {
	msg := "resolution depth exceeded"
	if e.Max > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Max)
		if e.Depth > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Depth)
		}
		msg += ")"
	}
	if e.Type != "" {
		msg += ": " + e.Type
	}
	return msg
}

// Unwrap returns nil as DepthError has no underlying cause.
func (e *DepthError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *DepthError) Is(target error) bool {
	return target == ErrDepth
}
