// Package gate: sentinel error set.

package gate

import "errors"

var (
	// ErrUnknownPin indicates a delay arc was requested for a pin pair the
	// gate does not wire.
	ErrUnknownPin = errors.New("gate: unknown pin")

	// ErrNoDelays indicates an output was requested from a gate with an
	// empty delay table.
	ErrNoDelays = errors.New("gate: no delay is set")

	// ErrNoOutput indicates no wired arc produced the requested output pin
	// (unknown output pin, or no inputs supplied for its arcs).
	ErrNoOutput = errors.New("gate: no arc produced the output")
)
