// Package circuit: netlist resolution.

package circuit

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/ssta/gate"
	"github.com/katalvlaran/ssta/netlist"
	"github.com/katalvlaran/ssta/rv"
)

// dffGateName is the library entry consulted for flip-flop Q arrivals.
const dffGateName = "dff"

// Build resolves a parsed netlist against a gate library into a circuit
// graph whose signal table maps every net to its LAT node.
//
// Complexity: O(L log L) scheduling plus O(L·fanin) resolution for L net
// lines; moment evaluation is lazy and happens at reporting time.
func Build(space *rv.Space, gates map[string]*gate.Gate, b *netlist.Bench) (*Graph, error) {
	g := &Graph{
		space:              space,
		signals:            make(map[string]rv.ID),
		inputs:             b.Inputs,
		outputs:            b.Outputs,
		dffOutputs:         b.DFFOutputs,
		dffInputs:          b.DFFInputs,
		signalToInstance:   make(map[string]string),
		instanceToOutput:   make(map[string]string),
		instanceToInputs:   make(map[string][]string),
		instanceToGateType: make(map[string]string),
		instanceToDelays:   make(map[string]map[string]rv.ID),
	}

	// 1) Primary inputs arrive at the time reference.
	for _, name := range b.Inputs {
		if err := g.checkFresh(name); err != nil {
			return nil, err
		}
		in, err := space.Normal(0.0, rv.MinVariance)
		if err != nil {
			return nil, err
		}
		g.register(name, in)
	}

	// 2) Flip-flop Q outputs: clock edge plus a cloned ck→q delay. The
	//    fresh clock reference cuts sequential feedback.
	for _, name := range b.DFFOutputs {
		if err := g.seedDFFOutput(name, gates); err != nil {
			return nil, err
		}
	}

	// 3) Schedule, then sweep.
	lines := scheduleLines(b.Lines, g.signals)
	if err := g.resolveAll(lines, gates); err != nil {
		return nil, err
	}

	return g, nil
}

// checkFresh rejects signal redefinitions.
func (g *Graph) checkFresh(name string) error {
	if _, exists := g.signals[name]; exists {
		return &DuplicateSignalError{Signal: name}
	}

	return nil
}

// register installs a named LAT node into the signal table.
func (g *Graph) register(name string, id rv.ID) {
	g.space.SetName(id, name)
	g.signals[name] = id
}

// seedDFFOutput builds Q = Normal(0, floor) + clone(dff.ck→q).
func (g *Graph) seedDFFOutput(name string, gates map[string]*gate.Gate) error {
	dff, ok := gates[dffGateName]
	if !ok {
		return fmt.Errorf("gate %q not found in library: %w", dffGateName, ErrUnknownGate)
	}

	delay, err := dff.Delay("ck", "q")
	if err != nil {
		return err
	}
	clone, err := g.space.Clone(delay)
	if err != nil {
		return err
	}

	edge, err := g.space.Normal(0.0, rv.MinVariance)
	if err != nil {
		return err
	}

	if err = g.checkFresh(name); err != nil {
		return err
	}
	g.register(name, g.space.Add(edge, clone))

	return nil
}

// scheduleLines orders the worklist by a stabilized topological sort of
// the line dependency graph (producer before consumer, ties in file
// order). On a cycle the file order is kept — the sweep's zero-progress
// check turns the cycle into a floating-net report either way.
func scheduleLines(lines []netlist.NetLine, seeded map[string]rv.ID) []netlist.NetLine {
	if len(lines) == 0 {
		return lines
	}

	producer := make(map[string]int, len(lines))
	for i, l := range lines {
		producer[l.Out] = i
	}

	dg := simple.NewDirectedGraph()
	for i := range lines {
		dg.AddNode(simple.Node(i))
	}
	for i, l := range lines {
		for _, in := range l.Ins {
			if _, known := seeded[in]; known {
				continue
			}
			j, ok := producer[in]
			if !ok || j == i {
				continue
			}
			dg.SetEdge(dg.NewEdge(simple.Node(j), simple.Node(i)))
		}
	}

	order, err := topo.SortStabilized(dg, func(ns []graph.Node) {
		sort.Slice(ns, func(a, b int) bool { return ns[a].ID() < ns[b].ID() })
	})
	if err != nil {
		return lines
	}

	scheduled := make([]netlist.NetLine, 0, len(lines))
	for _, n := range order {
		scheduled = append(scheduled, lines[int(n.ID())])
	}

	return scheduled
}

// resolveAll sweeps the scheduled worklist until it drains; a pass with
// zero progress means the remainder can never resolve.
func (g *Graph) resolveAll(lines []netlist.NetLine, gates map[string]*gate.Gate) error {
	remaining := lines

	for len(remaining) > 0 {
		var deferred []netlist.NetLine

		for _, line := range remaining {
			if !g.lineReady(line) {
				deferred = append(deferred, line)
				continue
			}
			if err := g.resolveLine(line, gates); err != nil {
				return err
			}
		}

		if len(deferred) == len(remaining) {
			outs := make([]string, 0, len(deferred))
			for _, line := range deferred {
				outs = append(outs, line.Out)
			}
			sort.Strings(outs)

			return &FloatingNetError{Outputs: outs}
		}
		remaining = deferred
	}

	return nil
}

// lineReady reports whether every input signal of the line is resolved.
func (g *Graph) lineReady(line netlist.NetLine) bool {
	for _, in := range line.Ins {
		if _, ok := g.signals[in]; !ok {
			return false
		}
	}

	return true
}

// resolveLine instantiates the line's gate, wires its inputs by
// positional pin names, registers the output LAT, and records path
// metadata.
func (g *Graph) resolveLine(line netlist.NetLine, gates map[string]*gate.Gate) error {
	gt, ok := gates[line.Gate]
	if !ok {
		return fmt.Errorf("gate %q not found in library: %w", line.Gate, ErrUnknownGate)
	}

	inst := gt.CreateInstance()
	for i, in := range line.Ins {
		if err := inst.SetInput(strconv.Itoa(i), g.signals[in]); err != nil {
			return err
		}
	}

	out, err := inst.OutputDefault(g.space)
	if err != nil {
		return err
	}

	if err = g.checkFresh(line.Out); err != nil {
		return err
	}
	g.register(line.Out, out)
	g.trackPath(line, inst)

	return nil
}

// trackPath records the metadata reporting needs: driving instance,
// ordered inputs, gate type, and the cloned delay per input pin.
func (g *Graph) trackPath(line netlist.NetLine, inst *gate.Instance) {
	name := inst.Name()

	g.signalToInstance[line.Out] = name
	g.instanceToOutput[name] = line.Out
	g.instanceToInputs[name] = line.Ins
	g.instanceToGateType[name] = line.Gate
	g.instanceNames = append(g.instanceNames, name)

	delays := make(map[string]rv.ID, len(inst.UsedDelays()))
	for pp, clone := range inst.UsedDelays() {
		delays[pp.In] = clone
	}
	g.instanceToDelays[name] = delays
}
