// Package results: plain-text report rendering.
//
// The layouts reproduce the analyzer's historical stdout format exactly —
// downstream tooling greps these blocks, so widths, tabs, and rule lines
// are load-bearing.

package results

import (
	"fmt"
	"io"
	"strings"
)

// WriteLAT renders the LAT block:
//
//	#
//	# LAT
//	#
//	#node		     mu	     std
//	#---------------------------------
//	A                   0.000    0.001
//	#---------------------------------
func WriteLAT(w io.Writer, rows []LatResult) error {
	if _, err := fmt.Fprint(w, "#\n# LAT\n#\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "#node\t\t     mu\t     std\n"); err != nil {
		return err
	}
	rule := "#---------------------------------\n"
	if _, err := fmt.Fprint(w, rule); err != nil {
		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-15s%10.3f%9.3f\n", r.Node, r.Mean, r.Std); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, rule)

	return err
}

// WriteCorrelation renders the correlation block: a tab-separated header
// row, rule lines, and %4.3f value rows.
func WriteCorrelation(w io.Writer, c *CorrelationMatrix) error {
	if _, err := fmt.Fprint(w, "#\n# correlation matrix\n#\n"); err != nil {
		return err
	}

	var header strings.Builder
	header.WriteString("#\t")
	for _, name := range c.Names() {
		header.WriteString(name)
		header.WriteByte('\t')
	}
	header.WriteByte('\n')
	if _, err := io.WriteString(w, header.String()); err != nil {
		return err
	}

	if err := writeRuleLine(w, c.Len()); err != nil {
		return err
	}

	for i, name := range c.Names() {
		var row strings.Builder
		row.WriteString(name)
		row.WriteByte('\t')
		for j := range c.Names() {
			fmt.Fprintf(&row, "%4.3f\t", c.At(i, j))
		}
		row.WriteByte('\n')
		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}

	return writeRuleLine(w, c.Len())
}

// writeRuleLine prints the historical "#-------...----" separator sized
// to the column count.
func writeRuleLine(w io.Writer, cols int) error {
	var b strings.Builder
	for i := 0; i < cols; i++ {
		if i == 0 {
			b.WriteString("#-------")
		} else {
			b.WriteString("--------")
		}
	}
	b.WriteString("-----\n")

	_, err := io.WriteString(w, b.String())

	return err
}

// WriteCriticalPaths renders the top-N path blocks:
//
//	#
//	# critical paths
//	#
//	Path 1: mean 39.227 std 3.318
//	  nodes:     A -> N1 -> Y
//	  instances: inv:0 -> nand:0
func WriteCriticalPaths(w io.Writer, paths []CriticalPath) error {
	if _, err := fmt.Fprint(w, "#\n# critical paths\n#\n"); err != nil {
		return err
	}

	for k, p := range paths {
		if _, err := fmt.Fprintf(w, "Path %d: mean %.3f std %.3f\n", k+1, p.Mean, p.Std); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  nodes:     %s\n", strings.Join(p.Nodes, " -> ")); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  instances: %s\n", strings.Join(p.Instances, " -> ")); err != nil {
			return err
		}
	}

	return nil
}

// WriteSensitivity renders the sensitivity block:
//
//	Sensitivity Analysis
//	Objective: 42.5450
//	Top paths:
//	  1. Y  mu 39.227  std 3.318  score 42.545
//	Gate Sensitivities
//	  nand:0 out Y in N1 (nand)  dF/dmu 0.91234  dF/dsigma 0.37210
func WriteSensitivity(w io.Writer, r *SensitivityResults) error {
	if _, err := fmt.Fprint(w, "Sensitivity Analysis\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Objective: %.4f\n", r.Objective); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "Top paths:\n"); err != nil {
		return err
	}
	for k, p := range r.TopPaths {
		if _, err := fmt.Fprintf(w, "  %d. %s  mu %.3f  std %.3f  score %.3f\n",
			k+1, p.Endpoint, p.Mean, p.Std, p.Score); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "Gate Sensitivities\n"); err != nil {
		return err
	}
	for _, gs := range r.Gates {
		if _, err := fmt.Fprintf(w, "  %s out %s in %s (%s)  dF/dmu %.5f  dF/dsigma %.5f\n",
			gs.Instance, gs.OutputNode, gs.InputSignal, gs.GateType,
			gs.GradMu, gs.GradSigma); err != nil {
			return err
		}
	}

	return nil
}
