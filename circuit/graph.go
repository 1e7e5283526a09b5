// Package circuit: the resolved circuit graph and its accessors.

package circuit

import (
	"sort"

	"github.com/katalvlaran/ssta/rv"
)

// Graph is a fully resolved circuit: the signal table plus the path
// metadata recorded while instances were created. It is immutable after
// Build returns.
type Graph struct {
	space *rv.Space

	signals map[string]rv.ID

	inputs     []string
	outputs    []string
	dffOutputs []string
	dffInputs  []string

	signalToInstance   map[string]string
	instanceToOutput   map[string]string
	instanceToInputs   map[string][]string
	instanceToGateType map[string]string

	// instanceToDelays maps instance → input pin → the cloned delay node
	// attached to that instance's output expression. Sensitivity reads
	// the gradients of exactly these clones.
	instanceToDelays map[string]map[string]rv.ID

	// instanceNames in creation order, for deterministic iteration.
	instanceNames []string
}

// Space returns the arena the circuit's random variables live in.
func (g *Graph) Space() *rv.Space { return g.space }

// Signal returns the LAT node registered under name.
func (g *Graph) Signal(name string) (rv.ID, bool) {
	id, ok := g.signals[name]

	return id, ok
}

// SignalNames returns every registered signal name, sorted.
func (g *Graph) SignalNames() []string {
	names := make([]string, 0, len(g.signals))
	for name := range g.signals {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Inputs returns the primary input signals in declaration order.
func (g *Graph) Inputs() []string { return g.inputs }

// Outputs returns the primary output signals in declaration order.
func (g *Graph) Outputs() []string { return g.outputs }

// DFFOutputs returns the flip-flop Q signals in declaration order.
func (g *Graph) DFFOutputs() []string { return g.dffOutputs }

// DFFInputs returns the flip-flop D signals in declaration order.
func (g *Graph) DFFInputs() []string { return g.dffInputs }

// InstanceFor returns the instance driving a signal; ok is false for
// primary inputs, flip-flop Q outputs, and unknown names.
func (g *Graph) InstanceFor(signal string) (string, bool) {
	inst, ok := g.signalToInstance[signal]

	return inst, ok
}

// OutputOf returns the signal an instance drives.
func (g *Graph) OutputOf(instance string) (string, bool) {
	sig, ok := g.instanceToOutput[instance]

	return sig, ok
}

// InputsOf returns an instance's input signals in pin order.
func (g *Graph) InputsOf(instance string) []string {
	return g.instanceToInputs[instance]
}

// GateTypeOf returns an instance's lowercased gate type.
func (g *Graph) GateTypeOf(instance string) string {
	return g.instanceToGateType[instance]
}

// DelaysOf returns an instance's cloned delays keyed by input pin name.
func (g *Graph) DelaysOf(instance string) map[string]rv.ID {
	return g.instanceToDelays[instance]
}

// InstanceNames returns every instance in creation order.
func (g *Graph) InstanceNames() []string { return g.instanceNames }
