package rv_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ssta/expr"
	"github.com/katalvlaran/ssta/rv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exprValue(t *testing.T, e *expr.Expr) float64 {
	t.Helper()
	v, err := e.Value()
	require.NoError(t, err)
	return v
}

// TestSymbolic_NormalLeaf: the leaf's symbolic moments are its variables.
func TestSymbolic_NormalLeaf(t *testing.T) {
	s := rv.NewSpace()
	a := mustNormal(t, s, 10.0, 4.0)

	me, err := s.MeanExpr(a)
	require.NoError(t, err)
	se, err := s.StdExpr(a)
	require.NoError(t, err)

	assert.Same(t, s.MuVar(a), me)
	assert.Same(t, s.SigmaVar(a), se)
	assert.Equal(t, 10.0, exprValue(t, me))
	assert.Equal(t, 2.0, exprValue(t, se))
}

// TestSymbolic_ChainMatchesNumeric: for a pure Add chain the symbolic
// moments equal the numeric ones exactly (no approximation involved).
func TestSymbolic_ChainMatchesNumeric(t *testing.T) {
	s := rv.NewSpace()
	in := mustNormal(t, s, 0.0, rv.MinVariance)
	d1 := mustNormal(t, s, 10.0, 4.0)
	d2 := mustNormal(t, s, 15.0, 9.0)
	y := s.Add(s.Add(in, d1), d2)

	me, err := s.MeanExpr(y)
	require.NoError(t, err)
	se, err := s.StdExpr(y)
	require.NoError(t, err)

	assert.InDelta(t, mean(t, s, y), exprValue(t, me), 1e-12)
	assert.InDelta(t, math.Sqrt(variance(t, s, y)), exprValue(t, se), 1e-12)
}

// TestSymbolic_MaxCloseToNumeric: through a Max the CDF is approximated by
// a logistic, so symbolic and numeric moments agree loosely, not exactly.
func TestSymbolic_MaxCloseToNumeric(t *testing.T) {
	s := rv.NewSpace()
	a := mustNormal(t, s, 10.0, 4.0)
	b := mustNormal(t, s, 11.0, 9.0)
	m := s.Max(a, b)

	me, err := s.MeanExpr(m)
	require.NoError(t, err)
	se, err := s.StdExpr(m)
	require.NoError(t, err)

	assert.InDelta(t, mean(t, s, m), exprValue(t, me), 0.1, "symbolic mean tracks numeric")
	assert.InDelta(t, math.Sqrt(variance(t, s, m)), exprValue(t, se), 0.2, "symbolic std tracks numeric")
}

// TestSymbolic_GradientsThroughChain: reverse mode through μ+σ of a delay
// chain gives ∂/∂μ = 1 for each mean variable.
func TestSymbolic_GradientsThroughChain(t *testing.T) {
	s := rv.NewSpace()
	in := mustNormal(t, s, 0.0, rv.MinVariance)
	d1 := mustNormal(t, s, 10.0, 4.0)
	d2 := mustNormal(t, s, 15.0, 9.0)
	y := s.Add(s.Add(in, d1), d2)

	me, err := s.MeanExpr(y)
	require.NoError(t, err)
	se, err := s.StdExpr(y)
	require.NoError(t, err)

	score := expr.Add(me, se)
	s.Graph().ZeroAllGrad()
	require.NoError(t, score.Backward())

	assert.InDelta(t, 1.0, s.MuVar(d1).Gradient(), 1e-9, "∂(μ+σ)/∂μ_d1")
	assert.InDelta(t, 1.0, s.MuVar(d2).Gradient(), 1e-9, "∂(μ+σ)/∂μ_d2")

	// ∂σ_y/∂σ_di = σ_di/σ_y for independent sums.
	sigmaY := exprValue(t, se)
	assert.InDelta(t, 2.0/sigmaY, s.SigmaVar(d1).Gradient(), 1e-9)
	assert.InDelta(t, 3.0/sigmaY, s.SigmaVar(d2).Gradient(), 1e-9)
}

// TestSymbolic_GradientsThroughMax: the dominant branch of a MAX receives
// (nearly) the whole mean gradient, the dominated branch (nearly) none.
func TestSymbolic_GradientsThroughMax(t *testing.T) {
	s := rv.NewSpace()
	in := mustNormal(t, s, 0.0, rv.MinVariance)
	dBig := mustNormal(t, s, 30.0, 1.0)
	dSmall := mustNormal(t, s, 10.0, 1.0)
	m := s.Max(s.Add(in, dBig), s.Add(in, dSmall))

	me, err := s.MeanExpr(m)
	require.NoError(t, err)

	s.Graph().ZeroAllGrad()
	require.NoError(t, me.Backward())

	gBig := s.MuVar(dBig).Gradient()
	gSmall := s.MuVar(dSmall).Gradient()

	assert.Greater(t, gBig, 0.9, "dominant branch carries the gradient")
	assert.Less(t, math.Abs(gSmall), 0.1, "dominated branch is flat")
}

// TestSymbolic_Memoized: repeat calls return the identical nodes.
func TestSymbolic_Memoized(t *testing.T) {
	s := rv.NewSpace()
	a := mustNormal(t, s, 1.0, 1.0)
	b := mustNormal(t, s, 2.0, 1.0)
	m := s.Max(a, b)

	e1, err := s.MeanExpr(m)
	require.NoError(t, err)
	e2, err := s.MeanExpr(m)
	require.NoError(t, err)
	assert.Same(t, e1, e2)
}

// TestSymbolic_MuVarNilForOps: only Normal leaves expose variables.
func TestSymbolic_MuVarNilForOps(t *testing.T) {
	s := rv.NewSpace()
	a := mustNormal(t, s, 1.0, 1.0)
	b := mustNormal(t, s, 2.0, 1.0)

	assert.Nil(t, s.MuVar(s.Add(a, b)))
	assert.Nil(t, s.SigmaVar(s.Add(a, b)))
	assert.NotNil(t, s.MuVar(a))
}
