package integrators

import "github.com/san-kum/odelab/internal/ode"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(f ode.RHS, t, y, dt float64) (float64, error) {
	dy, err := f(t, y)
	if err != nil {
		return 0, err
	}
	return y + dt*dy, nil
}
