package solve

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/odelab/internal/integrators"
	"github.com/san-kum/odelab/internal/ode"
)

func decayRHS(a float64) ode.RHS {
	return func(t, y float64) (float64, error) { return -a * y, nil }
}

func TestSolve_ExponentialDecay(t *testing.T) {
	s := New(integrators.NewRK45())

	sol, err := s.Solve(context.Background(), Problem{
		RHS: decayRHS(0.5),
		T0:  0, Tf: 5, Y0: 1.0,
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	if sol.Len() != DefaultSamples {
		t.Errorf("samples: got %d, want %d", sol.Len(), DefaultSamples)
	}

	_, yFinal := sol.Final()
	exact := math.Exp(-2.5)
	if math.Abs(yFinal-exact) > 1e-4 {
		t.Errorf("y(5): got %g, want %g", yFinal, exact)
	}
}

func TestSolve_EvenSampling(t *testing.T) {
	s := New(integrators.NewRK45())

	sol, err := s.Solve(context.Background(), Problem{
		RHS: decayRHS(0.5),
		T0:  0, Tf: 10, Y0: 1.0,
		Samples: 101,
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := 0.1
	for i := 1; i < sol.Len(); i++ {
		got := sol.Times[i] - sol.Times[i-1]
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("spacing at %d: got %g, want %g", i, got, want)
		}
	}
	if sol.Times[0] != 0 || sol.Times[sol.Len()-1] != 10 {
		t.Errorf("endpoints: got [%g, %g], want [0, 10]", sol.Times[0], sol.Times[sol.Len()-1])
	}
}

func TestSolve_FixedStepIntegrator(t *testing.T) {
	s := New(integrators.NewRK4())

	sol, err := s.Solve(context.Background(), Problem{
		RHS: decayRHS(1.0),
		T0:  0, Tf: 2, Y0: 1.0,
		Samples: 201,
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	_, yFinal := sol.Final()
	if math.Abs(yFinal-math.Exp(-2)) > 1e-6 {
		t.Errorf("y(2): got %g, want %g", yFinal, math.Exp(-2))
	}
}

func TestSolve_Backward(t *testing.T) {
	s := New(integrators.NewRK45())

	// Integrating dy/dt = -y from t=5 back to t=0 grows by e^5.
	sol, err := s.Solve(context.Background(), Problem{
		RHS: decayRHS(1.0),
		T0:  5, Tf: 0, Y0: 1.0,
		Samples: 500,
	})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	_, yFinal := sol.Final()
	exact := math.Exp(5)
	if math.Abs(yFinal-exact)/exact > 1e-4 {
		t.Errorf("y(0): got %g, want %g", yFinal, exact)
	}
}

func TestSolve_RHSErrorAborts(t *testing.T) {
	s := New(integrators.NewRK45())

	evalErr := errors.New("bad parameter")
	failAfter := func(t, y float64) (float64, error) {
		if t > 1 {
			return 0, evalErr
		}
		return -y, nil
	}

	_, err := s.Solve(context.Background(), Problem{
		RHS: failAfter,
		T0:  0, Tf: 5, Y0: 1.0,
	})
	if !errors.Is(err, evalErr) {
		t.Fatalf("expected RHS error, got %v", err)
	}

	var solveErr *ode.SolveError
	if !errors.As(err, &solveErr) {
		t.Fatal("expected *ode.SolveError wrapper")
	}
	if solveErr.Time < 1 {
		t.Errorf("error time: got %g, want >= 1", solveErr.Time)
	}
}

func TestSolve_Divergence(t *testing.T) {
	s := New(integrators.NewEuler())

	// dy/dt = y^2 with y0 = 1 blows up at t = 1.
	blowup := func(t, y float64) (float64, error) { return y * y, nil }

	_, err := s.Solve(context.Background(), Problem{
		RHS: blowup,
		T0:  0, Tf: 2, Y0: 1.0,
	})
	if err == nil {
		t.Fatal("expected divergence error, got nil")
	}
}

func TestSolve_EmptySpan(t *testing.T) {
	s := New(integrators.NewRK45())
	_, err := s.Solve(context.Background(), Problem{RHS: decayRHS(1), T0: 3, Tf: 3, Y0: 1})
	if !errors.Is(err, ode.ErrEmptySpan) {
		t.Errorf("expected ErrEmptySpan, got %v", err)
	}
}

func TestSolve_ContextCancel(t *testing.T) {
	s := New(integrators.NewRK45())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Solve(ctx, Problem{RHS: decayRHS(1), T0: 0, Tf: 5, Y0: 1})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestParseSpan(t *testing.T) {
	t0, tf, err := ParseSpan("0, 10")
	if err != nil {
		t.Fatalf("ParseSpan: %v", err)
	}
	if t0 != 0 || tf != 10 {
		t.Errorf("got [%g, %g], want [0, 10]", t0, tf)
	}
}

func TestParseSpan_Invalid(t *testing.T) {
	bad := []string{"0 10", "0,10,20", "a, 10", "0, b", "", ","}
	for _, text := range bad {
		if _, _, err := ParseSpan(text); !errors.Is(err, ErrSpanFormat) {
			t.Errorf("%q: expected ErrSpanFormat, got %v", text, err)
		}
	}
}

func TestParseInitial(t *testing.T) {
	y0, err := ParseInitial(" 1.5 ")
	if err != nil || y0 != 1.5 {
		t.Errorf("got (%g, %v), want (1.5, nil)", y0, err)
	}
	if _, err := ParseInitial("one"); !errors.Is(err, ErrInitialFormat) {
		t.Errorf("expected ErrInitialFormat, got %v", err)
	}
}
