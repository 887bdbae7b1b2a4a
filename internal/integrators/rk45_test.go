package integrators

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/ode"
)

// dy/dt = -y, exact solution y(t) = y0 * exp(-t).
func decay(t, y float64) (float64, error) { return -y, nil }

func TestRK45_Step(t *testing.T) {
	integ := NewRK45()

	y := 1.0
	dt := 0.01
	for i := 0; i < 500; i++ {
		var err error
		y, err = integ.Step(decay, float64(i)*dt, y, dt)
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}

	exact := math.Exp(-5.0)
	if math.Abs(y-exact) > 1e-8 {
		t.Errorf("y(5): got %g, want %g", y, exact)
	}
}

func TestRK45_AdaptiveStep(t *testing.T) {
	integ := NewRK45()

	y, dtNew, err := integ.StepAdaptive(decay, 0, 1.0, 0.1, 1e-8)
	if err != nil {
		t.Errorf("StepAdaptive returned error: %v", err)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		t.Error("StepAdaptive produced invalid value")
	}
	if dtNew <= 0 {
		t.Errorf("StepAdaptive returned invalid dt: %f", dtNew)
	}
}

func TestRK45_AdaptiveShrinksOnRoughTolerance(t *testing.T) {
	integ := NewRK45()

	// Stiff-ish RHS with a tight tolerance should propose a smaller step.
	stiff := func(t, y float64) (float64, error) { return -50 * y, nil }
	_, dtNew, err := integ.StepAdaptive(stiff, 0, 1.0, 0.5, 1e-10)
	if err != nil {
		t.Fatalf("StepAdaptive: %v", err)
	}
	if dtNew >= 0.5 {
		t.Errorf("expected shrunken step, got %f", dtNew)
	}
}

func TestRK45_VsRK4_Accuracy(t *testing.T) {
	rk4 := NewRK4()
	rk45 := NewRK45()

	y4, y45 := 1.0, 1.0
	dt := 0.1
	for i := 0; i < 50; i++ {
		var err error
		y4, err = rk4.Step(decay, float64(i)*dt, y4, dt)
		if err != nil {
			t.Fatal(err)
		}
		y45, err = rk45.Step(decay, float64(i)*dt, y45, dt)
		if err != nil {
			t.Fatal(err)
		}
	}

	exact := math.Exp(-5.0)
	t.Logf("RK4 final: %.10f", y4)
	t.Logf("RK45 final: %.10f", y45)

	if math.Abs(y45-exact) > math.Abs(y4-exact) {
		t.Log("Warning: RK45 not more accurate than RK4 for this case")
	}
}

func TestStep_PropagatesRHSError(t *testing.T) {
	rhsErr := errors.New("boom")
	failing := func(t, y float64) (float64, error) { return 0, rhsErr }

	for _, integ := range []ode.Integrator{NewEuler(), NewRK4(), NewRK45()} {
		if _, err := integ.Step(failing, 0, 1.0, 0.01); !errors.Is(err, rhsErr) {
			t.Errorf("%T: expected RHS error, got %v", integ, err)
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		if _, err := ByName(name); err != nil {
			t.Errorf("ByName(%q): %v", name, err)
		}
	}
	if _, err := ByName("simplectic"); err == nil {
		t.Error("expected error for unknown integrator")
	}
}
