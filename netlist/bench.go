// Package netlist: the .bench structural-netlist parser.

package netlist

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/ssta/gate"
)

// dffGateName is the gate type whose nets are diverted to flip-flop
// handling instead of the combinational worklist.
const dffGateName = "dff"

// NetLine is one parsed net: output signal, lowercased gate type, and the
// ordered input signal names.
type NetLine struct {
	Out  string
	Gate string
	Ins  []string
}

// Bench is a parsed .bench file. Slices preserve declaration order;
// duplicate declarations are rejected during parsing.
type Bench struct {
	File string

	Inputs  []string
	Outputs []string

	// DFFOutputs are flip-flop Q signals (the net outputs of dff lines);
	// DFFInputs are the corresponding data (D) signals. Both are timing
	// path endpoints for reporting.
	DFFOutputs []string
	DFFInputs  []string

	// Lines is the combinational worklist, in file order.
	Lines []NetLine
}

// ParseBench reads a netlist from r. The gate library is consulted so an
// unknown gate type fails here, where the line number is still known.
// file is used for error positioning only.
func ParseBench(r io.Reader, file string, gates map[string]*gate.Gate) (*Bench, error) {
	sc := newScanner(r, file, "(),=")
	b := &Bench{File: file}

	seenIn := make(map[string]struct{})
	seenOut := make(map[string]struct{})
	seenDFFOut := make(map[string]struct{})
	seenDFFIn := make(map[string]struct{})

	for sc.NextLine() {
		keyword, err := sc.Token()
		if err != nil {
			return nil, err
		}

		switch keyword {
		case "INPUT":
			if err = b.parseDecl(sc, "input", seenIn, &b.Inputs); err != nil {
				return nil, err
			}
		case "OUTPUT":
			if err = b.parseDecl(sc, "output", seenOut, &b.Outputs); err != nil {
				return nil, err
			}
		default:
			if err = b.parseNet(sc, keyword, gates, seenDFFOut, seenDFFIn); err != nil {
				return nil, err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return b, nil
}

// LoadBench opens and parses a .bench file.
func LoadBench(path string, gates map[string]*gate.Gate) (*Bench, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, ErrFile)
	}
	defer f.Close()

	return ParseBench(f, path, gates)
}

// parseDecl handles INPUT( s ) / OUTPUT( s ).
func (b *Bench) parseDecl(sc *scanner, head string, seen map[string]struct{}, dst *[]string) error {
	if err := sc.ExpectSep("("); err != nil {
		return err
	}
	signal, err := sc.Token()
	if err != nil {
		return err
	}
	if _, dup := seen[signal]; dup {
		return &ParseError{
			File: b.File,
			Line: sc.Line(),
			Msg:  fmt.Sprintf("%s %q is multiply defined", head, signal),
			Kind: ErrDuplicateSignal,
		}
	}
	seen[signal] = struct{}{}
	*dst = append(*dst, signal)

	if err = sc.ExpectSep(")"); err != nil {
		return err
	}

	return sc.End()
}

// parseNet handles <out> = <gate> ( in1 , in2 , ... ).
func (b *Bench) parseNet(sc *scanner, out string, gates map[string]*gate.Gate,
	seenDFFOut, seenDFFIn map[string]struct{}) error {
	if err := sc.ExpectSep("="); err != nil {
		return err
	}

	gateName, err := sc.Token()
	if err != nil {
		return err
	}
	gateName = strings.ToLower(gateName)
	if _, ok := gates[gateName]; !ok {
		return &ParseError{
			File: b.File,
			Line: sc.Line(),
			Msg:  fmt.Sprintf("unknown gate %q", gateName),
			Kind: ErrUnknownGate,
		}
	}

	if err = sc.ExpectSep("("); err != nil {
		return err
	}

	var ins []string
	for {
		in, err := sc.Token()
		if err != nil {
			return err
		}
		ins = append(ins, in)

		sep, err := sc.Token()
		if err != nil {
			return err
		}
		if sep == ")" {
			break
		}
		if sep != "," {
			return sc.unexpected(sep)
		}
	}

	if err = sc.End(); err != nil {
		return err
	}

	if gateName == dffGateName {
		// Flip-flops break the combinational graph: the Q output is
		// re-rooted at the clock edge by the builder, the D input becomes
		// a reporting endpoint. Neither joins the worklist.
		if _, dup := seenDFFOut[out]; !dup {
			seenDFFOut[out] = struct{}{}
			b.DFFOutputs = append(b.DFFOutputs, out)
		}
		if len(ins) > 0 {
			if _, dup := seenDFFIn[ins[0]]; !dup {
				seenDFFIn[ins[0]] = struct{}{}
				b.DFFInputs = append(b.DFFInputs, ins[0])
			}
		}

		return nil
	}

	b.Lines = append(b.Lines, NetLine{Out: out, Gate: gateName, Ins: ins})

	return nil
}
