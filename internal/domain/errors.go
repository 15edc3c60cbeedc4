// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidCrop is returned when a crop profile is missing data or
	// carries non-finite or inconsistent values.
	ErrInvalidCrop = errors.New("invalid crop profile")

	// ErrInvalidRange is returned when a Range violates min <= optimal <= max
	// or holds a non-finite bound.
	ErrInvalidRange = errors.New("invalid parameter range")

	// ErrInvalidLevel is returned when a difficulty level is not 1, 2 or 3.
	ErrInvalidLevel = errors.New("invalid difficulty level")

	// ErrInvalidInput is returned when simulation input fails upstream validation.
	ErrInvalidInput = errors.New("invalid simulation input")

	// ErrZeroOptimum is returned when a nutrient optimum is 0, which makes the
	// NPK balance ratio undefined.
	ErrZeroOptimum = errors.New("optimal value must be non-zero")

	// ErrNilCrop is returned when an operation receives a nil crop profile.
	ErrNilCrop = errors.New("crop profile cannot be nil")

	// ErrNilResult is returned when an operation receives a nil simulation result.
	ErrNilResult = errors.New("simulation result cannot be nil")
)

// DomainError carries the failing operation and field alongside the
// underlying sentinel error. Use errors.Is to test for the sentinel.
type DomainError struct {
	Op    string
	Field string
	Err   error
}

// NewDomainError builds a DomainError for the given operation.
func NewDomainError(op, field string, err error) *DomainError {
	return &DomainError{Op: op, Field: field, Err: err}
}

func (e *DomainError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *DomainError) Unwrap() error {
	return e.Err
}

// ConfigurationError reports invalid reference data in the crop catalog.
// It is raised when a catalog is loaded and again by the engine if such a
// profile reaches it, instead of letting NaN leak into scores.
type ConfigurationError struct {
	Crop  string
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("crop %q: %s: %v", e.Crop, e.Field, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is or wraps a ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
