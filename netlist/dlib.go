// Package netlist: the .dlib delay-library parser.

package netlist

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/ssta/gate"
	"github.com/katalvlaran/ssta/rv"
)

// ParseDlib reads a delay library from r, creating one Normal per arc in
// the given Space. Repeated gate names accumulate arcs on a single Gate.
// file is used for error positioning only.
func ParseDlib(r io.Reader, file string, s *rv.Space) (map[string]*gate.Gate, error) {
	sc := newScanner(r, file, "(),")
	gates := make(map[string]*gate.Gate)

	for sc.NextLine() {
		if err := parseDlibLine(sc, s, gates); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return gates, nil
}

// LoadDlib opens and parses a .dlib file.
func LoadDlib(path string, s *rv.Space) (map[string]*gate.Gate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, ErrFile)
	}
	defer f.Close()

	return ParseDlib(f, path, s)
}

// parseDlibLine handles one arc declaration:
//
//	<gate> <in> <out> gauss ( <mean> , <sigma> )
//	<gate> <in> <out> const ( <mean> )
func parseDlibLine(sc *scanner, s *rv.Space, gates map[string]*gate.Gate) error {
	gateName, err := sc.Token()
	if err != nil {
		return err
	}
	g, ok := gates[gateName]
	if !ok {
		g = gate.New(gateName)
		gates[gateName] = g
	}

	in, err := sc.Token()
	if err != nil {
		return err
	}
	out, err := sc.Token()
	if err != nil {
		return err
	}

	distType, err := sc.Token()
	if err != nil {
		return err
	}
	if distType != "gauss" && distType != "const" {
		return sc.unexpected(distType)
	}

	if err = sc.ExpectSep("("); err != nil {
		return err
	}

	mean, err := sc.Float()
	if err != nil {
		return err
	}
	if mean < 0.0 {
		return sc.unexpected(sc.prev)
	}

	variance := 0.0
	if distType == "gauss" {
		if err = sc.ExpectSep(","); err != nil {
			return err
		}
		sigma, err := sc.Float()
		if err != nil {
			return err
		}
		if sigma < 0.0 {
			return sc.unexpected(sc.prev)
		}
		variance = sigma * sigma
	}

	delay, err := s.Normal(mean, variance)
	if err != nil {
		return err
	}
	g.SetDelay(in, out, delay)

	if err = sc.ExpectSep(")"); err != nil {
		return err
	}

	return sc.End()
}
