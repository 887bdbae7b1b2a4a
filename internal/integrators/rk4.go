package integrators

import "github.com/san-kum/odelab/internal/ode"

type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(f ode.RHS, t, y, dt float64) (float64, error) {
	k1, err := f(t, y)
	if err != nil {
		return 0, err
	}
	k2, err := f(t+dt*0.5, y+dt*0.5*k1)
	if err != nil {
		return 0, err
	}
	k3, err := f(t+dt*0.5, y+dt*0.5*k2)
	if err != nil {
		return 0, err
	}
	k4, err := f(t+dt, y+dt*k3)
	if err != nil {
		return 0, err
	}
	return y + dt*(k1+2*k2+2*k3+k4)/6.0, nil
}
