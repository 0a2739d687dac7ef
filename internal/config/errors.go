// Package config resolves the effective feature-flag configuration for an
// install run. It merges the base config file, the project-local record, and
// CLI-supplied overrides into one concrete flag set, applying the
// skills/commands dependency rule.
package config

import (
	"errors"
	"fmt"
)

// Sentinel errors for configuration operations.
var (
	// ErrInvalidConfig indicates the configuration is invalid.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidBoolLiteral indicates a flag value that is not a boolean literal.
	ErrInvalidBoolLiteral = errors.New("config: flag value must be \"true\" or \"false\"")
)

// ValidationError reports a single bad flag value with its source context.
type ValidationError struct {
	Flag    string
	Value   any
	Message string
	Wrapped error // underlying sentinel error for errors.Is support
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("validation error: flag %q: %s (got: %v)", e.Flag, e.Message, e.Value)
	}
	return fmt.Sprintf("validation error: flag %q: %s", e.Flag, e.Message)
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	if e.Wrapped != nil {
		return e.Wrapped
	}
	return ErrInvalidConfig
}
