// Package expr: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ErrX)); tests match them via errors.Is.

package expr

import "errors"

var (
	// ErrMathDomain indicates an evaluation left the real domain:
	// division by zero, logarithm of a non-positive value, or the
	// ambiguous 0^0.
	ErrMathDomain = errors.New("expr: math domain error")

	// ErrValueUnset indicates a Variable was evaluated before Set.
	ErrValueUnset = errors.New("expr: variable value is unset")

	// ErrNotVariable indicates Set was called on a non-Variable node.
	ErrNotVariable = errors.New("expr: node is not a variable")
)
