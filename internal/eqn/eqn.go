package eqn

import (
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/odelab/internal/ode"
)

// Equation is a parsed right-hand side of dy/dt = f(t, y). The zero value is
// not usable; construct with [Parse].
type Equation struct {
	text string
	rhs  Expr
}

// Parse validates and parses equation text. The text must contain an '='; the
// substring after the first '=' is parsed with t, y, and the declared
// parameter names as the only permitted free symbols.
func Parse(text string, paramNames []string) (*Equation, error) {
	if !strings.Contains(text, "=") {
		return nil, ErrMissingEquals
	}
	rhsText := strings.TrimSpace(strings.Split(text, "=")[1])
	if rhsText == "" {
		return nil, ErrEmptyExpression
	}

	rhs, err := parseExpr(rhsText)
	if err != nil {
		return nil, err
	}

	allowed := map[string]struct{}{"t": {}, "y": {}}
	for _, name := range paramNames {
		allowed[name] = struct{}{}
	}
	free := map[string]struct{}{}
	rhs.Vars(free)
	for name := range free {
		if _, ok := allowed[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownSymbol, name)
		}
	}

	return &Equation{text: text, rhs: rhs}, nil
}

// Bind substitutes parameter values into the expression and returns the bound
// equation. Parameters absent from values stay symbolic; evaluating them
// later fails with [ErrUnresolvedSymbol] rather than assuming a default.
func (e *Equation) Bind(values map[string]float64) *Equation {
	rhs := e.rhs
	for name, v := range values {
		rhs = rhs.Sub(name, N(v))
	}
	return &Equation{text: e.text, rhs: rhs}
}

// RHS compiles the equation into a numeric callable of (t, y).
func (e *Equation) RHS() ode.RHS {
	rhs := e.rhs
	return func(t, y float64) (float64, error) {
		return rhs.Eval(map[string]float64{"t": t, "y": y})
	}
}

// Vars returns the sorted free symbols of the (possibly bound) expression.
func (e *Equation) Vars() []string {
	set := map[string]struct{}{}
	e.rhs.Vars(set)
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Text returns the original equation text.
func (e *Equation) Text() string { return e.text }

// String renders the parsed right-hand side in canonical form.
func (e *Equation) String() string { return e.rhs.String() }

// Compile is the one-shot path: parse, bind, and return the callable.
func Compile(text string, paramNames []string, values map[string]float64) (ode.RHS, error) {
	eq, err := Parse(text, paramNames)
	if err != nil {
		return nil, err
	}
	return eq.Bind(values).RHS(), nil
}
