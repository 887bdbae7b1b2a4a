// Package solve adapts a parsed right-hand side to the numerical
// integrators, producing an evenly sampled [ode.Solution] over a time span.
package solve

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/odelab/internal/ode"
)

// DefaultSamples is the number of evenly spaced output points per solve.
const DefaultSamples = 1000

// DefaultTolerance is the local error tolerance for adaptive stepping.
const DefaultTolerance = 1e-6

// Input-format errors, reported before any integration is attempted.
var (
	// ErrSpanFormat indicates time-span text that does not split into
	// exactly two numbers on comma.
	ErrSpanFormat = errors.New("solve: time span must be two comma-separated numbers")

	// ErrInitialFormat indicates a non-numeric initial condition.
	ErrInitialFormat = errors.New("solve: initial condition must be a number")
)

// Problem is one integration request: dy/dt = RHS, y(T0) = Y0, solved over
// [T0, Tf].
type Problem struct {
	RHS       ode.RHS
	T0, Tf    float64
	Y0        float64
	Samples   int     // 0 means DefaultSamples
	Tolerance float64 // 0 means DefaultTolerance
}

// ParseSpan parses time-span text of the form "t0, tf".
func ParseSpan(text string) (t0, tf float64, err error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: got %d values", ErrSpanFormat, len(parts))
	}
	t0, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrSpanFormat, strings.TrimSpace(parts[0]))
	}
	tf, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrSpanFormat, strings.TrimSpace(parts[1]))
	}
	return t0, tf, nil
}

// ParseInitial parses initial-condition text.
func ParseInitial(text string) (float64, error) {
	y0, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInitialFormat, strings.TrimSpace(text))
	}
	return y0, nil
}

// Solver drives an integrator across a Problem's time span.
type Solver struct {
	integ ode.Integrator
}

func New(integ ode.Integrator) *Solver {
	return &Solver{integ: integ}
}

// Solve integrates the problem and returns the sampled solution. The output
// always contains Samples points at evenly spaced times from T0 to Tf
// inclusive; the integrator may take many internal steps between samples.
// The first RHS evaluation error aborts the solve.
func (s *Solver) Solve(ctx context.Context, p Problem) (*ode.Solution, error) {
	n := p.Samples
	if n == 0 {
		n = DefaultSamples
	}
	if n < 2 {
		return nil, fmt.Errorf("solve: need at least 2 samples, got %d", n)
	}
	tol := p.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}
	if p.T0 == p.Tf {
		return nil, ode.ErrEmptySpan
	}
	if math.IsNaN(p.Y0) || math.IsInf(p.Y0, 0) {
		return nil, fmt.Errorf("%w: initial value", ode.ErrUnstable)
	}

	span := p.Tf - p.T0
	minStep := math.Abs(span) * 1e-14

	sol := &ode.Solution{
		Times:  make([]float64, n),
		Values: make([]float64, n),
	}
	sol.Times[0] = p.T0
	sol.Values[0] = p.Y0

	adaptive, _ := s.integ.(ode.AdaptiveIntegrator)

	t := p.T0
	y := p.Y0
	dt := span / float64(n-1)
	step := 0

	for i := 1; i < n; i++ {
		target := p.T0 + span*float64(i)/float64(n-1)

		for (span > 0 && t < target) || (span < 0 && t > target) {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}

			remaining := target - t
			dtStep := dt
			if math.Abs(dtStep) > math.Abs(remaining) {
				dtStep = remaining
			}

			var (
				yNew   float64
				dtNext float64
				err    error
			)
			if adaptive != nil {
				yNew, dtNext, err = adaptive.StepAdaptive(p.RHS, t, y, dtStep, tol)
			} else {
				yNew, err = s.integ.Step(p.RHS, t, y, dtStep)
				dtNext = dt
			}
			if err != nil {
				return nil, &ode.SolveError{Step: step, Time: t, Wrapped: err}
			}
			if math.IsNaN(yNew) || math.IsInf(yNew, 0) {
				return nil, &ode.SolveError{Step: step, Time: t, Wrapped: ode.ErrUnstable}
			}

			if dtStep == remaining {
				t = target
			} else {
				t += dtStep
			}
			y = yNew
			step++

			if math.Abs(dtNext) < minStep {
				return nil, &ode.SolveError{Step: step, Time: t, Wrapped: ode.ErrStepTooSmall}
			}
			dt = dtNext
		}

		sol.Times[i] = target
		sol.Values[i] = y
	}

	return sol, nil
}
