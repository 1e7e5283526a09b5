// Package results: critical-path extraction.

package results

import (
	"sort"

	"github.com/katalvlaran/ssta/circuit"
)

// CriticalPath is one reconstructed timing path. Nodes runs from the
// path's origin (a primary input, flip-flop Q output, or undriven signal)
// to its endpoint; Instances lists the gates traversed, parallel to the
// Nodes hops. Mean and Std are the endpoint LAT statistics.
type CriticalPath struct {
	Endpoint  string
	Nodes     []string
	Instances []string
	Mean      float64
	Std       float64
}

// CriticalPaths returns the top-n paths by expected delay.
//
// Endpoints are the primary outputs plus the flip-flop data inputs
// (deduplicated, sorted). From each endpoint the path backtracks through
// the driving instance, hopping to the input signal with the largest
// mean LAT; ties break lexicographically so runs are reproducible. Paths
// are sorted by mean descending, then endpoint name.
func CriticalPaths(g *circuit.Graph, n int) ([]CriticalPath, error) {
	paths := make([]CriticalPath, 0)

	for _, endpoint := range endpoints(g) {
		p, ok, err := backtrack(g, endpoint)
		if err != nil {
			return nil, err
		}
		if ok {
			paths = append(paths, p)
		}
	}

	sort.Slice(paths, func(i, j int) bool {
		if paths[i].Mean != paths[j].Mean {
			return paths[i].Mean > paths[j].Mean
		}

		return paths[i].Endpoint < paths[j].Endpoint
	})

	if n >= 0 && len(paths) > n {
		paths = paths[:n]
	}

	return paths, nil
}

// endpoints merges outputs and flip-flop data inputs, deduplicated and
// sorted.
func endpoints(g *circuit.Graph) []string {
	seen := make(map[string]struct{})
	var eps []string
	for _, name := range g.Outputs() {
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			eps = append(eps, name)
		}
	}
	for _, name := range g.DFFInputs() {
		if _, dup := seen[name]; !dup {
			seen[name] = struct{}{}
			eps = append(eps, name)
		}
	}
	sort.Strings(eps)

	return eps
}

// backtrack walks from an endpoint to a path origin. Endpoints that do
// not resolve to a signal (declared but never driven) are skipped.
func backtrack(g *circuit.Graph, endpoint string) (CriticalPath, bool, error) {
	space := g.Space()

	id, ok := g.Signal(endpoint)
	if !ok {
		return CriticalPath{}, false, nil
	}

	m, err := space.Mean(id)
	if err != nil {
		return CriticalPath{}, false, err
	}
	sd, err := space.Std(id)
	if err != nil {
		return CriticalPath{}, false, err
	}

	nodes := []string{endpoint}
	var instances []string

	cur := endpoint
	for {
		inst, driven := g.InstanceFor(cur)
		if !driven {
			break // primary input, flip-flop Q, or undriven signal
		}
		instances = append(instances, inst)

		next, err := slowestInput(g, g.InputsOf(inst))
		if err != nil {
			return CriticalPath{}, false, err
		}
		if next == "" {
			break
		}
		nodes = append(nodes, next)
		cur = next
	}

	// Reverse so the path reads origin → endpoint.
	reverse(nodes)
	reverse(instances)

	return CriticalPath{
		Endpoint:  endpoint,
		Nodes:     nodes,
		Instances: instances,
		Mean:      m,
		Std:       sd,
	}, true, nil
}

// slowestInput picks the input signal with the largest mean LAT, breaking
// ties lexicographically.
func slowestInput(g *circuit.Graph, ins []string) (string, error) {
	space := g.Space()

	best := ""
	bestMean := 0.0
	for _, in := range ins {
		id, ok := g.Signal(in)
		if !ok {
			continue
		}
		m, err := space.Mean(id)
		if err != nil {
			return "", err
		}
		switch {
		case best == "", m > bestMean:
			best, bestMean = in, m
		case m == bestMean && in < best:
			best = in
		}
	}

	return best, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
