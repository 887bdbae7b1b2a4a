// Package ode provides core types for first-order ordinary differential
// equations of the form dy/dt = f(t, y).
//
// The package defines the shared vocabulary of the solver pipeline:
//
//   - [RHS]: the right-hand side f(t, y), produced by the equation parser
//   - [Solution]: sampled (time, value) pairs from one integration run
//   - [SolveError]: an integration failure with step and time context
//
// # Example
//
//	f := func(t, y float64) (float64, error) { return -0.5 * y, nil }
//	sol, _ := solve.New(integrators.NewRK45()).Solve(ctx, solve.Problem{
//	    RHS: f, T0: 0, Tf: 5, Y0: 1,
//	})
package ode
