package eqn

import "errors"

// Domain errors for equation parsing and evaluation.
var (
	// ErrMissingEquals indicates equation text without an '=' sign.
	ErrMissingEquals = errors.New("eqn: equation must contain '='")

	// ErrEmptyExpression indicates nothing follows the '=' sign.
	ErrEmptyExpression = errors.New("eqn: empty right-hand side")

	// ErrSyntax indicates malformed expression text.
	ErrSyntax = errors.New("eqn: syntax error")

	// ErrUnknownFunction indicates a call to a name outside the whitelist.
	ErrUnknownFunction = errors.New("eqn: unknown function")

	// ErrUnknownSymbol indicates an identifier that is neither t, y, nor a
	// declared parameter.
	ErrUnknownSymbol = errors.New("eqn: unknown symbol")

	// ErrUnresolvedSymbol indicates evaluation reached a symbol with no
	// bound value (typically a parameter left blank).
	ErrUnresolvedSymbol = errors.New("eqn: unresolved symbol")

	// ErrNumericDomain indicates evaluation left the real domain
	// (division by zero, log of a negative number, ...).
	ErrNumericDomain = errors.New("eqn: numeric domain error")
)
