package integrators

import (
	"fmt"

	"github.com/san-kum/odelab/internal/ode"
)

// ByName resolves an integrator by its CLI name.
func ByName(name string) (ode.Integrator, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	case "rk45", "":
		return NewRK45(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s", name)
	}
}

// Names lists the available integrator names.
func Names() []string { return []string{"euler", "rk4", "rk45"} }
