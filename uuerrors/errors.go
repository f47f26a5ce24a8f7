package uuerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a decoding failure occurred.
	ErrParse = errors.New("parse error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrCircularReference indicates a cyclic value reached an encoder that requires a tree.
	ErrCircularReference = errors.New("circular reference")
)

// ParseError represents a failure to decode input text or bytes into a value.
type ParseError struct {
	// Format is the input format being decoded ("json", "yaml", "msgpack")
	Format string

	// Line is the line number where the error occurred (0 if unknown)
	Line int

	// Column is the column number where the error occurred (0 if unknown)
	Column int

	// Message describes the decoding failure
	Message string

	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Format != "" {
		msg += " in " + e.Format + " input"
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
		if e.Column > 0 {
			msg += fmt.Sprintf(", column %d", e.Column)
		}
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

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded.
	// Common values: "nesting_depth", "input_size"
	ResourceType string

	// Limit is the configured maximum value
	Limit int64

	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64

	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as ResourceLimitError has no underlying cause.
func (e *ResourceLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration value.
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

// CycleError reports that a value graph contains a cycle where a tree was required.
type CycleError struct {
	// Path is the location of the node that refers back to one of its ancestors
	Path []string

	// Operation names what was attempted (e.g., "encode yaml")
	Operation string
}

// Error returns a human-readable error message.
func (e *CycleError) Error() string {
	msg := "circular reference"
	if e.Operation != "" {
		msg = e.Operation + ": " + msg
	}
	if len(e.Path) > 0 {
		msg += " at " + strings.Join(e.Path, ".")
	} else {
		msg += " at root"
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *CycleError) Is(target error) bool {
	return target == ErrCircularReference
}
