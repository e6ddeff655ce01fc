package scrollview

import (
	"errors"
	"fmt"
)

// ErrInvalidAxis is returned when an operation receives an axis other than
// Vertical or Horizontal. It is never fatal: the operation is a no-op.
var ErrInvalidAxis = errors.New("invalid axis")

// AxisError records the operation and axis that failed validation.
type AxisError struct {
	Op   string
	Axis Axis
}

func (e *AxisError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s %q (want %q or %q)", e.Op, ErrInvalidAxis, string(e.Axis), Vertical, Horizontal)
}

// Unwrap exposes ErrInvalidAxis to errors.Is.
func (e *AxisError) Unwrap() error {
	return ErrInvalidAxis
}

// ConfigError captures a configuration load or validation failure.
type ConfigError struct {
	Path  string
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Field != "" && e.Path != "":
		return fmt.Sprintf("config %s: %s: %v", e.Path, e.Field, e.Err)
	case e.Field != "":
		return fmt.Sprintf("config: %s: %v", e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("config: %v", e.Err)
	}
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
