// SPDX-License-Identifier: MIT
// Package results: the pairwise correlation matrix.

package results

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ssta/circuit"
	"github.com/katalvlaran/ssta/rv"
)

// CorrelationMatrix is a symmetric, name-addressed correlation store.
// The diagonal is exactly 1.0; off-diagonal entries are
// cov(a,b)/√(var(a)·var(b)), clamped by the covariance engine so
// |corr| ≤ 1 up to float drift.
type CorrelationMatrix struct {
	names []string
	index map[string]int
	m     *mat.SymDense
}

// Correlation computes the full matrix over every signal, names sorted.
func Correlation(g *circuit.Graph) (*CorrelationMatrix, error) {
	return correlationOver(g, g.SignalNames())
}

// CorrelationOf computes the matrix over a subset of signals — the
// endpoint-submatrix surface. Unknown names are ErrUnknownSignal. The
// subset is sorted before building, so the same pairs always land in the
// same cells.
func CorrelationOf(g *circuit.Graph, names []string) (*CorrelationMatrix, error) {
	subset := make([]string, len(names))
	copy(subset, names)
	sort.Strings(subset)

	for _, name := range subset {
		if _, ok := g.Signal(name); !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownSignal)
		}
	}

	return correlationOver(g, subset)
}

func correlationOver(g *circuit.Graph, names []string) (*CorrelationMatrix, error) {
	space := g.Space()
	n := len(names)

	c := &CorrelationMatrix{
		names: names,
		index: make(map[string]int, n),
		m:     mat.NewSymDense(max(n, 1), nil),
	}
	for i, name := range names {
		c.index[name] = i
	}

	ids := make([]rv.ID, n)
	vars := make([]float64, n)
	for i, name := range names {
		id, _ := g.Signal(name)
		v, err := space.Variance(id)
		if err != nil {
			return nil, err
		}
		ids[i] = id
		vars[i] = v
	}

	for i := 0; i < n; i++ {
		c.m.SetSym(i, i, 1.0)
		for j := i + 1; j < n; j++ {
			cov, err := space.Covariance(ids[i], ids[j])
			if err != nil {
				return nil, err
			}
			denom := math.Sqrt(vars[i] * vars[j])
			if denom <= 0.0 {
				c.m.SetSym(i, j, 0.0)
				continue
			}
			c.m.SetSym(i, j, cov/denom)
		}
	}

	return c, nil
}

// Names returns the row/column labels in matrix order.
func (c *CorrelationMatrix) Names() []string { return c.names }

// Len reports the matrix dimension.
func (c *CorrelationMatrix) Len() int { return len(c.names) }

// At returns the correlation at (i, j); symmetric by construction.
func (c *CorrelationMatrix) At(i, j int) float64 { return c.m.At(i, j) }

// Corr returns the correlation between two named signals.
func (c *CorrelationMatrix) Corr(a, b string) (float64, error) {
	i, ok := c.index[a]
	if !ok {
		return 0, fmt.Errorf("%q: %w", a, ErrUnknownSignal)
	}
	j, ok := c.index[b]
	if !ok {
		return 0, fmt.Errorf("%q: %w", b, ErrUnknownSignal)
	}

	return c.m.At(i, j), nil
}

// Submatrix extracts the rows/columns of the given names from the
// already-computed matrix.
func (c *CorrelationMatrix) Submatrix(names []string) (*CorrelationMatrix, error) {
	subset := make([]string, len(names))
	copy(subset, names)
	sort.Strings(subset)

	sub := &CorrelationMatrix{
		names: subset,
		index: make(map[string]int, len(subset)),
		m:     mat.NewSymDense(max(len(subset), 1), nil),
	}
	for i, name := range subset {
		src, ok := c.index[name]
		if !ok {
			return nil, fmt.Errorf("%q: %w", name, ErrUnknownSignal)
		}
		sub.index[name] = i
		for j := i; j < len(subset); j++ {
			srcJ := c.index[subset[j]]
			sub.m.SetSym(i, j, c.m.At(src, srcJ))
		}
	}

	return sub, nil
}
