// Package rv: symbolic μ/σ views over the expression graph.
//
// MeanExpr and StdExpr mirror the numeric moment formulas as
// differentiable expressions, so a backward pass from an objective built
// on top of them deposits ∂F/∂μ and ∂F/∂σ into every Normal leaf's
// variables. Cross-covariances inside Add/Sub/Max variances are frozen at
// their numeric value: the delay variables' direct terms carry the
// gradient, and a fully symbolic covariance is not expressible in the
// operator set. For Max0 the standard-normal density is exact
// (exp(-s²/2)/√2π) while the CDF uses the logistic approximation
// 1/(1+exp(-1.702·s)) — the conventional smooth stand-in when only
// exp/log/power are available.

package rv

import (
	"math"

	"github.com/katalvlaran/ssta/expr"
)

// logisticSlope is the classic Φ(s) ≈ 1/(1+e^(-1.702 s)) fit constant.
const logisticSlope = 1.702

// varFloor keeps the symbolic variance ratio of a Max0 strictly positive
// where float cancellation could push it to zero or slightly below.
const varFloor = 1e-12

// MeanExpr returns the symbolic mean of id, built lazily and memoized.
func (s *Space) MeanExpr(id ID) (*expr.Expr, error) {
	n := s.node(id)
	if n.meanExpr != nil {
		return n.meanExpr, nil
	}

	if err := s.buildSymbolic(id); err != nil {
		return nil, err
	}

	return s.node(id).meanExpr, nil
}

// StdExpr returns the symbolic standard deviation of id, built lazily and
// memoized.
func (s *Space) StdExpr(id ID) (*expr.Expr, error) {
	n := s.node(id)
	if n.stdExpr != nil {
		return n.stdExpr, nil
	}

	if err := s.buildSymbolic(id); err != nil {
		return nil, err
	}

	return s.node(id).stdExpr, nil
}

// buildSymbolic fills meanExpr and stdExpr for id.
func (s *Space) buildSymbolic(id ID) error {
	n := s.node(id)
	g := s.graph

	switch n.kind {
	case KindNormal:
		// The leaf's variables ARE its symbolic moments.
		n.meanExpr = n.muVar
		n.stdExpr = n.sigmaVar

	case KindAdd, KindSub:
		lm, err := s.MeanExpr(n.left)
		if err != nil {
			return err
		}
		rm, err := s.MeanExpr(n.right)
		if err != nil {
			return err
		}
		ls, err := s.StdExpr(n.left)
		if err != nil {
			return err
		}
		rs, err := s.StdExpr(n.right)
		if err != nil {
			return err
		}
		cov, err := s.Covariance(n.left, n.right)
		if err != nil {
			return err
		}

		sign := 1.0
		meanE := expr.Add(lm, rm)
		if n.kind == KindSub {
			sign = -1.0
			meanE = expr.Sub(lm, rm)
		}

		varE := expr.Add(
			expr.Add(expr.Mul(ls, ls), g.Const(2.0*sign*cov)),
			expr.Mul(rs, rs),
		)
		stdE, err := expr.Pow(varE, g.Const(0.5))
		if err != nil {
			return err
		}

		n.meanExpr = meanE
		n.stdExpr = stdE

	case KindMax:
		// max(a,b) = a + max0(b-a): combine a with the helper child.
		am, err := s.MeanExpr(n.left)
		if err != nil {
			return err
		}
		zm, err := s.MeanExpr(n.max0)
		if err != nil {
			return err
		}
		as, err := s.StdExpr(n.left)
		if err != nil {
			return err
		}
		zs, err := s.StdExpr(n.max0)
		if err != nil {
			return err
		}
		cov, err := s.Covariance(n.left, n.max0)
		if err != nil {
			return err
		}

		varE := expr.Add(
			expr.Add(expr.Mul(as, as), g.Const(2.0*cov)),
			expr.Mul(zs, zs),
		)
		stdE, err := expr.Pow(varE, g.Const(0.5))
		if err != nil {
			return err
		}

		n.meanExpr = expr.Add(am, zm)
		n.stdExpr = stdE

	case KindMax0:
		if err := s.buildSymbolicMax0(id); err != nil {
			return err
		}

	default:
		panic("rv: unknown node kind")
	}

	return nil
}

// buildSymbolicMax0 mirrors max0Moments symbolically:
//
//	s    = -μ/σ
//	φ(s) = exp(-s²/2)/√2π
//	Φ(s) ≈ 1/(1+exp(-1.702 s))
//	mean = μ + σ·(φ + s·Φ)
//	std  = σ·√((1-Φ) + s²·Φ + s·φ - (φ + s·Φ)² + floor)
func (s *Space) buildSymbolicMax0(id ID) error {
	n := s.node(id)
	g := s.graph

	mu, err := s.MeanExpr(n.left)
	if err != nil {
		return err
	}
	sd, err := s.StdExpr(n.left)
	if err != nil {
		return err
	}

	sE, err := expr.Div(expr.Neg(mu), sd)
	if err != nil {
		return err
	}
	s2 := expr.Mul(sE, sE)

	// φ(s), exact in the operator set.
	half, err := expr.Div(s2, g.Const(2.0))
	if err != nil {
		return err
	}
	phiE, err := expr.Div(expr.Exp(expr.Neg(half)), g.Const(math.Sqrt(2.0*math.Pi)))
	if err != nil {
		return err
	}

	// Φ(s), logistic approximation.
	cdfE, err := expr.Div(
		g.Const(1.0),
		expr.Add(g.Const(1.0), expr.Exp(expr.Mul(g.Const(-logisticSlope), sE))),
	)
	if err != nil {
		return err
	}

	// MeanMax(s) = φ + s·Φ
	mmE := expr.Add(phiE, expr.Mul(sE, cdfE))

	// MeanMax2(s) = (1-Φ) + s²·Φ + s·φ
	mm2E := expr.Add(
		expr.Add(expr.Sub(g.Const(1.0), cdfE), expr.Mul(s2, cdfE)),
		expr.Mul(sE, phiE),
	)

	ratioE := expr.Add(expr.Sub(mm2E, expr.Mul(mmE, mmE)), g.Const(varFloor))
	rootE, err := expr.Pow(ratioE, g.Const(0.5))
	if err != nil {
		return err
	}

	n.meanExpr = expr.Add(mu, expr.Mul(sd, mmE))
	n.stdExpr = expr.Mul(sd, rootE)

	return nil
}
