package expr_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ssta/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValue_Basic verifies forward evaluation over all operators.
func TestValue_Basic(t *testing.T) {
	g := expr.NewGraph()
	x := g.Variable()
	y := g.Variable()
	require.NoError(t, x.Set(3.0))
	require.NoError(t, y.Set(2.0))

	sum := expr.Add(x, y)
	v, err := sum.Value()
	require.NoError(t, err)
	assert.Equal(t, 5.0, v, "3+2")

	diff := expr.Sub(x, y)
	v, err = diff.Value()
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "3-2")

	prod := expr.Mul(x, y)
	v, err = prod.Value()
	require.NoError(t, err)
	assert.Equal(t, 6.0, v, "3*2")

	quot, err := expr.Div(x, y)
	require.NoError(t, err)
	v, err = quot.Value()
	require.NoError(t, err)
	assert.Equal(t, 1.5, v, "3/2")

	pow, err := expr.Pow(x, y)
	require.NoError(t, err)
	v, err = pow.Value()
	require.NoError(t, err)
	assert.Equal(t, 9.0, v, "3^2")

	ex := expr.Exp(y)
	v, err = ex.Value()
	require.NoError(t, err)
	assert.InDelta(t, math.Exp(2.0), v, 1e-12, "e^2")

	lg := expr.Log(x)
	v, err = lg.Value()
	require.NoError(t, err)
	assert.InDelta(t, math.Log(3.0), v, 1e-12, "ln 3")
}

// TestValue_UnsetVariable ensures evaluating an unbound Variable errors.
func TestValue_UnsetVariable(t *testing.T) {
	g := expr.NewGraph()
	x := g.Variable()

	_, err := expr.Add(x, g.Const(1.0)).Value()
	assert.ErrorIs(t, err, expr.ErrValueUnset)
}

// TestValue_MathDomain covers div-by-zero, log of non-positive, and 0^0.
func TestValue_MathDomain(t *testing.T) {
	g := expr.NewGraph()

	// Division by a literal zero is rejected at construction.
	_, err := expr.Div(g.Const(1.0), g.Const(0.0))
	assert.ErrorIs(t, err, expr.ErrMathDomain, "x/0 at construction")

	// Division by a variable that evaluates to zero fails at evaluation.
	z := g.Variable()
	require.NoError(t, z.Set(0.0))
	q, err := expr.Div(g.Const(1.0), z)
	require.NoError(t, err)
	_, err = q.Value()
	assert.ErrorIs(t, err, expr.ErrMathDomain, "x/var(0) at evaluation")

	// Log of a non-positive value.
	n := g.Variable()
	require.NoError(t, n.Set(-1.0))
	_, err = expr.Log(n).Value()
	assert.ErrorIs(t, err, expr.ErrMathDomain, "log(-1)")

	// Ambiguous 0^0 at construction.
	_, err = expr.Pow(g.Const(0.0), g.Const(0.0))
	assert.ErrorIs(t, err, expr.ErrMathDomain, "0^0")

	// 0^0 via variables at evaluation.
	a, b := g.Variable(), g.Variable()
	require.NoError(t, a.Set(0.0))
	require.NoError(t, b.Set(0.0))
	p, err := expr.Pow(a, b)
	require.NoError(t, err)
	_, err = p.Value()
	assert.ErrorIs(t, err, expr.ErrMathDomain, "var(0)^var(0)")
}

// TestSimplification verifies construction-time algebra: identities must
// return existing operands rather than fresh nodes.
func TestSimplification(t *testing.T) {
	g := expr.NewGraph()
	x := g.Variable()
	zero := g.Const(0.0)
	one := g.Const(1.0)

	assert.Same(t, x, expr.Add(x, zero), "x+0 = x")
	assert.Same(t, x, expr.Add(zero, x), "0+x = x")
	assert.Same(t, x, expr.Sub(x, zero), "x-0 = x")
	assert.Same(t, x, expr.Mul(x, one), "x*1 = x")
	assert.Same(t, x, expr.Mul(one, x), "1*x = x")
	assert.Same(t, zero, expr.Mul(x, zero), "x*0 = 0")
	assert.Same(t, zero, expr.Mul(zero, x), "0*x = 0")

	q, err := expr.Div(zero, x)
	require.NoError(t, err)
	assert.Same(t, zero, q, "0/x = 0")

	q, err = expr.Div(x, one)
	require.NoError(t, err)
	assert.Same(t, x, q, "x/1 = x")

	p, err := expr.Pow(x, one)
	require.NoError(t, err)
	assert.Same(t, x, p, "x^1 = x")

	p, err = expr.Pow(x, zero)
	require.NoError(t, err)
	assert.Same(t, one, p, "x^0 = 1")
}

// TestSet_Invalidation ensures a Variable update invalidates every cached
// transitive parent and nothing else needs manual clearing.
func TestSet_Invalidation(t *testing.T) {
	g := expr.NewGraph()
	x := g.Variable()
	y := g.Variable()
	require.NoError(t, x.Set(2.0))
	require.NoError(t, y.Set(5.0))

	// f = (x+y) * x; prime the caches.
	f := expr.Mul(expr.Add(x, y), x)
	v, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, 14.0, v)

	// Rebind x; the cached 14 must not survive.
	require.NoError(t, x.Set(3.0))
	v, err = f.Value()
	require.NoError(t, err)
	assert.Equal(t, 24.0, v, "(3+5)*3 after rebind")
}

// TestSet_NotVariable ensures Set rejects operation nodes.
func TestSet_NotVariable(t *testing.T) {
	g := expr.NewGraph()
	s := expr.Add(g.Variable(), g.Variable())

	assert.ErrorIs(t, s.Set(1.0), expr.ErrNotVariable)
	assert.ErrorIs(t, g.Const(2.0).Set(1.0), expr.ErrNotVariable)
}

// TestUnset restores the ErrValueUnset behavior after a value is cleared.
func TestUnset(t *testing.T) {
	g := expr.NewGraph()
	x := g.Variable()
	require.NoError(t, x.Set(1.0))

	f := expr.Exp(x)
	_, err := f.Value()
	require.NoError(t, err)

	require.NoError(t, x.Unset())
	_, err = f.Value()
	assert.ErrorIs(t, err, expr.ErrValueUnset)
}

// TestValue_Idempotent asserts repeat evaluation returns the identical
// float64 bit pattern.
func TestValue_Idempotent(t *testing.T) {
	g := expr.NewGraph()
	x := g.Variable()
	require.NoError(t, x.Set(0.1))

	f := expr.Mul(expr.Exp(x), expr.Add(x, g.Const(0.3)))
	v1, err := f.Value()
	require.NoError(t, err)
	v2, err := f.Value()
	require.NoError(t, err)
	assert.Equal(t, math.Float64bits(v1), math.Float64bits(v2))
}
