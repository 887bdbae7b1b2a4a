package eqn

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Expr is a node in the parsed expression tree. Sub returns a copy with a
// symbol replaced; Eval computes the numeric value under an environment of
// symbol bindings.
type Expr interface {
	Eval(env map[string]float64) (float64, error)
	Sub(name string, value Expr) Expr
	Vars(set map[string]struct{})
	String() string
}

/* ---------- Num ---------- */

type Num struct{ V float64 }

func N(v float64) Expr { return Num{V: v} }

func (n Num) Eval(map[string]float64) (float64, error) { return n.V, nil }
func (n Num) Sub(string, Expr) Expr                    { return n }
func (n Num) Vars(map[string]struct{})                 {}
func (n Num) String() string                           { return strconv.FormatFloat(n.V, 'g', -1, 64) }

/* ---------- Sym ---------- */

type Sym struct{ Name string }

func S(name string) Expr { return Sym{Name: name} }

func (s Sym) Eval(env map[string]float64) (float64, error) {
	if v, ok := env[s.Name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnresolvedSymbol, s.Name)
}

func (s Sym) Sub(name string, value Expr) Expr {
	if s.Name == name {
		return value
	}
	return s
}

func (s Sym) Vars(set map[string]struct{}) { set[s.Name] = struct{}{} }
func (s Sym) String() string               { return s.Name }

/* ---------- Add ---------- */

type Add struct{ Terms []Expr }

// AddOf flattens nested sums and folds constant terms.
func AddOf(terms ...Expr) Expr {
	var flat []Expr
	sum := 0.0
	for _, t := range terms {
		switch v := t.(type) {
		case Add:
			flat = append(flat, v.Terms...)
		case Num:
			sum += v.V
		default:
			flat = append(flat, t)
		}
	}
	if sum != 0 || len(flat) == 0 {
		flat = append(flat, Num{V: sum})
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Add{Terms: flat}
}

func (a Add) Eval(env map[string]float64) (float64, error) {
	sum := 0.0
	for _, t := range a.Terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

func (a Add) Sub(name string, value Expr) Expr {
	out := make([]Expr, len(a.Terms))
	for i, t := range a.Terms {
		out[i] = t.Sub(name, value)
	}
	return AddOf(out...)
}

func (a Add) Vars(set map[string]struct{}) {
	for _, t := range a.Terms {
		t.Vars(set)
	}
}

func (a Add) String() string {
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

/* ---------- Mul ---------- */

type Mul struct{ Factors []Expr }

// MulOf flattens nested products and folds constant factors.
func MulOf(factors ...Expr) Expr {
	var flat []Expr
	prod := 1.0
	for _, f := range factors {
		switch v := f.(type) {
		case Mul:
			flat = append(flat, v.Factors...)
		case Num:
			prod *= v.V
		default:
			flat = append(flat, f)
		}
	}
	if prod == 0 {
		return Num{V: 0}
	}
	if prod != 1 || len(flat) == 0 {
		flat = append([]Expr{Num{V: prod}}, flat...)
	}
	if len(flat) == 1 {
		return flat[0]
	}
	return Mul{Factors: flat}
}

func (m Mul) Eval(env map[string]float64) (float64, error) {
	prod := 1.0
	for _, f := range m.Factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		prod *= v
	}
	return prod, nil
}

func (m Mul) Sub(name string, value Expr) Expr {
	out := make([]Expr, len(m.Factors))
	for i, f := range m.Factors {
		out[i] = f.Sub(name, value)
	}
	return MulOf(out...)
}

func (m Mul) Vars(set map[string]struct{}) {
	for _, f := range m.Factors {
		f.Vars(set)
	}
}

func (m Mul) String() string {
	parts := make([]string, len(m.Factors))
	for i, f := range m.Factors {
		if _, ok := f.(Add); ok {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

/* ---------- Pow ---------- */

type Pow struct{ Base, Exp Expr }

func PowOf(base, exp Expr) Expr {
	if e, ok := exp.(Num); ok {
		if e.V == 0 {
			return Num{V: 1}
		}
		if e.V == 1 {
			return base
		}
		if b, ok := base.(Num); ok {
			return Num{V: math.Pow(b.V, e.V)}
		}
	}
	return Pow{Base: base, Exp: exp}
}

func (p Pow) Eval(env map[string]float64) (float64, error) {
	b, err := p.Base.Eval(env)
	if err != nil {
		return 0, err
	}
	e, err := p.Exp.Eval(env)
	if err != nil {
		return 0, err
	}
	v := math.Pow(b, e)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		if b == 0 && e < 0 {
			return 0, fmt.Errorf("%w: division by zero", ErrNumericDomain)
		}
		return 0, fmt.Errorf("%w: %s^%s undefined at base=%g", ErrNumericDomain, p.Base, p.Exp, b)
	}
	return v, nil
}

func (p Pow) Sub(name string, value Expr) Expr {
	return PowOf(p.Base.Sub(name, value), p.Exp.Sub(name, value))
}

func (p Pow) Vars(set map[string]struct{}) {
	p.Base.Vars(set)
	p.Exp.Vars(set)
}

func (p Pow) String() string {
	return fmt.Sprintf("(%s)^%s", p.Base, p.Exp)
}

/* ---------- Call ---------- */

// functions is the whitelist of callable names. Anything else is a parse
// failure, never a lookup into arbitrary code.
var functions = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"log":   math.Log,
	"ln":    math.Log,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

// Functions returns the sorted names of the callable whitelist.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type Call struct {
	Name string
	Arg  Expr
}

func CallOf(name string, arg Expr) Expr {
	if a, ok := arg.(Num); ok {
		if v := functions[name](a.V); !math.IsNaN(v) && !math.IsInf(v, 0) {
			return Num{V: v}
		}
	}
	return Call{Name: name, Arg: arg}
}

func (c Call) Eval(env map[string]float64) (float64, error) {
	a, err := c.Arg.Eval(env)
	if err != nil {
		return 0, err
	}
	v := functions[c.Name](a)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s(%g) undefined", ErrNumericDomain, c.Name, a)
	}
	return v, nil
}

func (c Call) Sub(name string, value Expr) Expr {
	return Call{Name: c.Name, Arg: c.Arg.Sub(name, value)}
}

func (c Call) Vars(set map[string]struct{}) { c.Arg.Vars(set) }
func (c Call) String() string               { return c.Name + "(" + c.Arg.String() + ")" }
