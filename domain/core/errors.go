package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrInvalidInput   = errors.New("invalid ancestral input")
	ErrEmptySurname   = fmt.Errorf("%w: surname must not be empty", ErrInvalidInput)
	ErrSurnameTooLong = fmt.Errorf("%w: surname exceeds maximum length", ErrInvalidInput)

	// Resolution errors
	ErrSimulationFailed  = errors.New("pathway simulation failed")
	ErrEmptyDistribution = errors.New("distribution has no mass")
	ErrJobNotFound       = errors.New("analysis job not found")
)

// NewValidationError builds an input validation error with field context.
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidInput, field, reason)
}

// NewSimulationError wraps a backend failure so callers can distinguish it
// from input problems.
func NewSimulationError(backend string, err error) error {
	return fmt.Errorf("%w: backend %s: %v", ErrSimulationFailed, backend, err)
}

// IsInvalidInput reports whether err is an input validation failure.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSimulationError reports whether err is a simulation execution failure.
func IsSimulationError(err error) bool {
	return errors.Is(err, ErrSimulationFailed)
}
