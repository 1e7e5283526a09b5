// Package gate: per-circuit gate invocations.

package gate

import (
	"fmt"

	"github.com/katalvlaran/ssta/rv"
)

// Instance is one invocation of a Gate. It owns its input wiring, the
// memoized output nodes, and the cloned per-invocation delays actually
// attached to the output expressions.
type Instance struct {
	gate       *Gate
	name       string
	inputs     map[string]rv.ID
	outputs    map[string]rv.ID
	usedDelays map[PinPair]rv.ID
}

// Name returns the auto-generated "<type>:<n>" instance name.
func (inst *Instance) Name() string { return inst.name }

// Gate returns the shared library entry this instance invokes.
func (inst *Instance) Gate() *Gate { return inst.gate }

// SetInput wires the LAT of a signal onto an input pin. The pin must
// drive at least one arc of the gate.
func (inst *Instance) SetInput(in string, signal rv.ID) error {
	if !inst.gate.DrivesFrom(in) {
		return fmt.Errorf(
			"input pin %q drives no arc of gate %q: %w",
			in, inst.gate.typeName, ErrUnknownPin)
	}
	inst.inputs[in] = signal

	return nil
}

// Output returns the LAT of the named output pin, building it on first
// call and memoizing the node.
//
// Construction walks the gate's arcs in canonical (in, out) order; for
// each arc ending at the pin whose input has been wired, it clones the
// library delay and folds
//
//	acc = MAX(acc, input + clone)
//
// Arc order only affects the tree shape, not the distribution (MAX is
// commutative); fixing it keeps runs byte-identical.
func (inst *Instance) Output(s *rv.Space, out string) (rv.ID, error) {
	if o, ok := inst.outputs[out]; ok {
		return o, nil
	}

	if len(inst.gate.delays) == 0 {
		return rv.None, fmt.Errorf("gate %q: %w", inst.gate.typeName, ErrNoDelays)
	}

	acc := rv.None
	for _, pp := range inst.gate.Arcs() {
		if pp.Out != out {
			continue
		}
		in, ok := inst.inputs[pp.In]
		if !ok {
			continue
		}

		clone, err := s.Clone(inst.gate.delays[pp])
		if err != nil {
			return rv.None, err
		}
		inst.usedDelays[pp] = clone

		arm := s.Add(in, clone)
		if acc == rv.None {
			acc = arm
		} else {
			acc = s.Max(acc, arm)
		}
	}

	if acc == rv.None {
		return rv.None, fmt.Errorf(
			"output pin %q of gate %q: %w", out, inst.gate.typeName, ErrNoOutput)
	}

	inst.outputs[out] = acc

	return acc, nil
}

// OutputDefault is Output on the conventional "y" pin.
func (inst *Instance) OutputDefault(s *rv.Space) (rv.ID, error) {
	return inst.Output(s, DefaultOutPin)
}

// UsedDelays exposes the cloned delays attached to this instance's output
// expressions, keyed by arc. Sensitivity analysis reads the gradients of
// exactly these clones.
func (inst *Instance) UsedDelays() map[PinPair]rv.ID { return inst.usedDelays }
