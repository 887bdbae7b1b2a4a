package ode

import (
	"errors"
	"fmt"
)

// Domain errors for solver operations.
var (
	// ErrUnstable indicates the integration produced NaN or Inf.
	ErrUnstable = errors.New("ode: solution diverged (NaN or Inf detected)")

	// ErrStepTooSmall indicates the adaptive timestep underflowed.
	ErrStepTooSmall = errors.New("ode: adaptive timestep below minimum")

	// ErrEmptySpan indicates a degenerate time span (t0 == tf).
	ErrEmptySpan = errors.New("ode: time span is empty")
)

// SolveError wraps an integration failure with the step index and the
// simulation time at which it occurred.
type SolveError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SolveError) Unwrap() error { return e.Wrapped }
