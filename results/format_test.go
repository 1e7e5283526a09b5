package results_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/ssta/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteLAT_Layout: header, rule lines, and fixed-width rows.
func TestWriteLAT_Layout(t *testing.T) {
	_, g := build(t, "INPUT(A)\nOUTPUT(Y)\nY = INV(A)\n")
	rows, err := results.LAT(g)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, results.WriteLAT(&sb, rows))
	out := sb.String()

	lines := strings.Split(out, "\n")
	assert.Equal(t, "#", lines[0])
	assert.Equal(t, "# LAT", lines[1])
	assert.Equal(t, "#", lines[2])
	assert.Contains(t, lines[3], "#node")
	assert.True(t, strings.HasPrefix(lines[4], "#-----"), "rule line")

	assert.Contains(t, out, "Y")
	assert.Contains(t, out, "15.000")
	assert.Contains(t, out, "2.000")

	// Fixed-width data row: 15-char name field + 10-char mu + 9-char std.
	assert.Equal(t, "A                   0.000    0.001", lines[5])
}

// TestWriteCorrelation_Layout: tab-separated header and %4.3f cells.
func TestWriteCorrelation_Layout(t *testing.T) {
	_, g := build(t, "INPUT(A)\nOUTPUT(Y)\nY = INV(A)\n")
	c, err := results.Correlation(g)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, results.WriteCorrelation(&sb, c))
	out := sb.String()

	assert.Contains(t, out, "# correlation matrix")
	assert.Contains(t, out, "#\tA\tY\t")
	assert.Contains(t, out, "1.000\t")

	lines := strings.Split(out, "\n")
	var ruleCount int
	for _, ln := range lines {
		if strings.HasPrefix(ln, "#---") {
			ruleCount++
		}
	}
	assert.Equal(t, 2, ruleCount, "rule lines before and after the rows")

	// Row A starts with its name and carries one cell per signal.
	for _, ln := range lines {
		if strings.HasPrefix(ln, "A\t") {
			cells := strings.Split(strings.TrimRight(ln, "\t"), "\t")
			assert.Len(t, cells, 3, "name + 2 value cells")
			assert.Equal(t, "1.000", cells[1], "diagonal")
		}
	}
}

// TestWriteCriticalPaths_Layout: numbered blocks with node and instance
// lists.
func TestWriteCriticalPaths_Layout(t *testing.T) {
	_, g := build(t, threeChains)
	paths, err := results.CriticalPaths(g, 2)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, results.WriteCriticalPaths(&sb, paths))
	out := sb.String()

	assert.Contains(t, out, "# critical paths")
	assert.Contains(t, out, "Path 1: mean 20.000 std 1.000")
	assert.Contains(t, out, "Path 2: mean 15.000 std 1.000")
	assert.Contains(t, out, "nodes:     A -> X")
	assert.Contains(t, out, "instances: g20:0")
	assert.NotContains(t, out, "Path 3", "truncated at n=2")
}

// TestWriteSensitivity_Layout: header, objective, and ranked rows.
func TestWriteSensitivity_Layout(t *testing.T) {
	_, g := build(t, threeChains)
	res, err := results.Sensitivity(g, 3)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, results.WriteSensitivity(&sb, res))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "Sensitivity Analysis\n"))
	assert.Contains(t, out, "Objective: ")
	assert.Contains(t, out, "Top paths:")
	assert.Contains(t, out, "1. X")
	assert.Contains(t, out, "Gate Sensitivities")
	assert.Contains(t, out, "g20:0 out X in A (g20)")
	assert.Contains(t, out, "dF/dmu")
}
