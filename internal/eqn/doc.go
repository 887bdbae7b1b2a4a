// Package eqn parses user-typed equation text into a numeric callable.
//
// Input is the full equation line, e.g. "dy/dt = -a*y + sin(b*t)". The text
// after the first '=' is parsed into an expression tree with t, y, and the
// declared parameter names as free symbols. Parameter values are substituted
// into the tree, and the result compiles to an [ode.RHS].
//
//	eq, err := eqn.Parse("dy/dt = -a*y", []string{"a", "b"})
//	f := eq.Bind(map[string]float64{"a": 0.5}).RHS()
//	v, err := f(0, 1) // -0.5
//
// Parameters left unbound stay symbolic and surface as evaluation errors,
// not defaults.
package eqn
