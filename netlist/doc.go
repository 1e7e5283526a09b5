// Package netlist parses the two text formats of the analyzer: the .dlib
// delay library and the .bench structural netlist.
//
// Both formats are whitespace- and comment-tolerant line formats: '#'
// starts a comment to end of line, blank lines are skipped, and the
// punctuation "()," (plus "=" in .bench) tokenizes as standalone separators.
//
// .dlib lines install delay arcs on gates:
//
//	<gate> <in_pin> <out_pin> gauss ( <mean> , <sigma> )
//	<gate> <in_pin> <out_pin> const ( <mean> )
//
// .bench lines declare the circuit:
//
//	INPUT( <signal> )
//	OUTPUT( <signal> )
//	<signal> = <gate> ( <in1> , <in2> , ... )
//
// Gate names in .bench are lowercased. A net whose gate is "dff" is not
// added to the worklist: its output signal is recorded as a flip-flop Q
// output and its first argument as the flip-flop's data input — the
// circuit builder roots Q at the clock edge instead.
//
// Errors carry file, line, and the offending token via ParseError, which
// wraps the package sentinels so errors.Is keeps working through the
// context.
package netlist
