// Package gate: the library-entry type.

package gate

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/ssta/rv"
)

// DefaultOutPin is the output pin assumed when a caller names none; the
// library format leaves single-output gates on "y" by convention.
const DefaultOutPin = "y"

// PinPair identifies one delay arc of a gate.
type PinPair struct {
	In  string
	Out string
}

// Gate is one delay-library entry. Delays map pin arcs to Normal nodes in
// the analysis Space; instances clone them on use.
type Gate struct {
	typeName     string
	delays       map[PinPair]rv.ID
	numInstances int
}

// New creates an empty gate of the given type name.
func New(typeName string) *Gate {
	return &Gate{
		typeName: typeName,
		delays:   make(map[PinPair]rv.ID),
	}
}

// TypeName reports the library name of the gate ("inv", "nand", ...).
func (g *Gate) TypeName() string { return g.typeName }

// SetDelay installs (or overwrites) the delay for the in→out arc.
func (g *Gate) SetDelay(in, out string, delay rv.ID) {
	g.delays[PinPair{In: in, Out: out}] = delay
}

// Delay returns the library delay for the in→out arc.
func (g *Gate) Delay(in, out string) (rv.ID, error) {
	d, ok := g.delays[PinPair{In: in, Out: out}]
	if !ok {
		return rv.None, fmt.Errorf(
			"delay from pin %q to pin %q is not set on gate %q: %w",
			in, out, g.typeName, ErrUnknownPin)
	}

	return d, nil
}

// DrivesFrom reports whether any arc starts at the given input pin.
func (g *Gate) DrivesFrom(in string) bool {
	for pp := range g.delays {
		if pp.In == in {
			return true
		}
	}

	return false
}

// Arcs returns every delay arc sorted by (In, Out) — the canonical
// iteration order instances fold their outputs in.
func (g *Gate) Arcs() []PinPair {
	arcs := make([]PinPair, 0, len(g.delays))
	for pp := range g.delays {
		arcs = append(arcs, pp)
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].In != arcs[j].In {
			return arcs[i].In < arcs[j].In
		}

		return arcs[i].Out < arcs[j].Out
	})

	return arcs
}

// CreateInstance allocates a fresh instance named "<type>:<n>" and bumps
// the per-gate counter.
func (g *Gate) CreateInstance() *Instance {
	name := g.typeName + ":" + strconv.Itoa(g.numInstances)
	g.numInstances++

	return &Instance{
		gate:       g,
		name:       name,
		inputs:     make(map[string]rv.ID),
		outputs:    make(map[string]rv.ID),
		usedDelays: make(map[PinPair]rv.ID),
	}
}
