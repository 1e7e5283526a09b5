// Package circuit resolves a parsed netlist into per-signal latest
// arrival times.
//
// 🚀 How resolution works:
//
//  1. Primary inputs are seeded as Normal(0, MinVariance) references.
//  2. Flip-flop Q outputs are seeded as clock-edge arrival plus a cloned
//     ck→q delay — sequential feedback is cut at every flip-flop, so the
//     combinational graph is a DAG by construction.
//  3. Net lines are scheduled by a stabilized topological sort of their
//     dependency graph (ties break on netlist file order), then resolved
//     with the classic worklist sweep: a line whose inputs are all known
//     instantiates its gate, wires the inputs, and registers the output
//     LAT under the signal name.
//  4. Lines that never become resolvable — missing drivers or
//     combinational cycles — are reported together as one floating-net
//     error listing every unresolved output.
//
// Alongside the signal table the builder records path metadata (signal →
// instance, instance → ordered inputs, gate type, and the cloned delay
// actually attached per input pin), which the reporting layer uses for
// critical-path backtracking and sensitivity attribution.
//
// The stabilized schedule makes one sweep sufficient on well-formed
// netlists and, more importantly, pins a canonical build order: the same
// dlib and bench always produce byte-identical reports.
package circuit
