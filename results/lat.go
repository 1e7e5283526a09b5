// Package results: the LAT table.

package results

import (
	"github.com/katalvlaran/ssta/circuit"
)

// LatResult is one row of the LAT table.
type LatResult struct {
	Node string
	Mean float64
	Std  float64
}

// LAT returns (name, μ, σ) for every signal, sorted lexicographically by
// name. Moments are computed (and memoized) on demand.
func LAT(g *circuit.Graph) ([]LatResult, error) {
	space := g.Space()
	names := g.SignalNames()

	rows := make([]LatResult, 0, len(names))
	for _, name := range names {
		id, _ := g.Signal(name)
		m, err := space.Mean(id)
		if err != nil {
			return nil, err
		}
		sd, err := space.Std(id)
		if err != nil {
			return nil, err
		}
		rows = append(rows, LatResult{Node: name, Mean: m, Std: sd})
	}

	return rows, nil
}
