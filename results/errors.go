// Package results: sentinel error set.

package results

import "errors"

var (
	// ErrUnknownSignal indicates a requested signal name is not in the
	// circuit's signal table.
	ErrUnknownSignal = errors.New("results: unknown signal")

	// ErrNoEndpoints indicates the circuit has no reporting endpoints
	// (no outputs and no flip-flop data inputs resolve to signals).
	ErrNoEndpoints = errors.New("results: no endpoints")

	// ErrPinIndex indicates an instance's delay pin index fell outside
	// its recorded input list — an inconsistency in the path metadata.
	ErrPinIndex = errors.New("results: pin index out of range")
)
