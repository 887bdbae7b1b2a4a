package ode

import "math"

// RHS is the right-hand side of dy/dt = f(t, y). Implementations report
// evaluation failures (unresolved symbols, domain errors) through the error
// return; the solver aborts on the first non-nil error.
type RHS func(t, y float64) (float64, error)

// Integrator advances the solution by one fixed step of size dt.
type Integrator interface {
	Step(f RHS, t, y, dt float64) (float64, error)
}

// AdaptiveIntegrator additionally estimates local error and proposes the next
// step size.
type AdaptiveIntegrator interface {
	Integrator
	StepAdaptive(f RHS, t, y, dt, tol float64) (yNew, dtNext float64, err error)
}

// Solution holds the sampled output of one integration run. Times and Values
// are parallel slices of equal length.
type Solution struct {
	Times  []float64
	Values []float64
}

// Len returns the number of samples.
func (s *Solution) Len() int { return len(s.Times) }

// At returns the i-th sample pair.
func (s *Solution) At(i int) (t, y float64) { return s.Times[i], s.Values[i] }

// IsValid reports whether every sampled value is finite.
func (s *Solution) IsValid() bool {
	for _, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Final returns the last sample, or (0, 0) for an empty solution.
func (s *Solution) Final() (t, y float64) {
	n := s.Len()
	if n == 0 {
		return 0, 0
	}
	return s.Times[n-1], s.Values[n-1]
}
