// Package sdemark structured error types for configuration and
// validation failures. The instrumented path itself has no error
// taxonomy: a kernel either runs to completion or the process dies.
package sdemark

import (
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Invalid configuration (bad operation selection, nil kernel)
	ErrTypeConfig ErrorType = iota
	// Operation selected on a host that lacks the ISA extension
	ErrTypeUnsupported
	// Invalid hardware descriptor (e.g. AMX tile configuration)
	ErrTypeValidation
)

// ProbeError represents a structured error with context
type ProbeError struct {
	Type    ErrorType
	Op      string // Operation name, if tied to one
	Message string // Human-readable message
	Err     error  // Underlying error if any
}

// Error implements the error interface
func (e *ProbeError) Error() string {
	op := e.Op
	if op == "" {
		op = "probe"
	}
	if e.Err != nil {
		return fmt.Sprintf("sdemark %s error in %s: %s (caused by: %v)",
			e.Type.String(), op, e.Message, e.Err)
	}
	return fmt.Sprintf("sdemark %s error in %s: %s",
		e.Type.String(), op, e.Message)
}

// Unwrap allows error chain inspection
func (e *ProbeError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConfig:
		return "Config"
	case ErrTypeUnsupported:
		return "Unsupported"
	case ErrTypeValidation:
		return "Validation"
	default:
		return "Unknown"
	}
}

// NewConfigError creates a configuration error
func NewConfigError(op string, message string) error {
	return &ProbeError{
		Type:    ErrTypeConfig,
		Op:      op,
		Message: message,
	}
}

// NewUnsupportedError creates a host-capability mismatch error
func NewUnsupportedError(op string, feature string) error {
	return &ProbeError{
		Type:    ErrTypeUnsupported,
		Op:      op,
		Message: fmt.Sprintf("host CPU lacks %s (dispatch with force under SDE emulation)", feature),
	}
}

// NewValidationError creates a hardware-descriptor validation error
func NewValidationError(op string, message string, err error) error {
	return &ProbeError{
		Type:    ErrTypeValidation,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// IsUnsupportedError checks if an error is a host-capability mismatch
func IsUnsupportedError(err error) bool {
	if e, ok := err.(*ProbeError); ok {
		return e.Type == ErrTypeUnsupported
	}
	return false
}

// IsConfigError checks if an error is a configuration error
func IsConfigError(err error) bool {
	if e, ok := err.(*ProbeError); ok {
		return e.Type == ErrTypeConfig
	}
	return false
}
