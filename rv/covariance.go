// SPDX-License-Identifier: MIT
// Package rv: the memoized recursive covariance engine.
//
// Covariance answers cov(a,b) for any two nodes by structural
// decomposition (Clark's identities), caching every computed pair so
// repeated queries cost O(1) and results are independent of query order.
// The cache key is the unordered ID pair, which makes symmetry exact by
// construction rather than by discipline.

package rv

import (
	"fmt"
	"math"
)

// Covariance returns cov(a, b).
//
// Decomposition rules, first match fires:
//
//	 1. cache hit                        → cached value
//	 2. a == b                           → var(a)
//	 3. a is Add(l,r)                    → cov(l,b) + cov(r,b)   (sym. for b)
//	 4. a is Sub(l,r)                    → cov(l,b) - cov(r,b)   (sym. for b)
//	 5. a is Max(x,·) with helper z      → cov(x,b) + cov(z,b)   (sym. for b)
//	 6. both Max0 with the same child    → var(a)
//	 7. a is Max0(Max0(y))               → cov(child(a), b)      (sym. for b)
//	 8. exactly one of a,b is Max0(z)    → cov(other, z)·MeanPhiMax(-μ_z/σ_z)
//	 9. both Max0, different children    → expand the deeper side (rule 8);
//	    equal levels expand both ways and average
//	10. both Normal leaves               → 0 (independent by default)
//	11. anything else                    → ErrInternal (unreachable)
//
// The result is clamped so |corr(a,b)| ≤ 1 before caching.
func (s *Space) Covariance(a, b ID) (float64, error) {
	// 1) Identity lookup: cache hits win over recomputation.
	if c, ok := s.cov[pairOf(a, b)]; ok {
		return c, nil
	}

	cov, err := s.decompose(a, b)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(cov) {
		return 0, fmt.Errorf("cov(%d,%d) is NaN: %w", a, b, ErrNumericInstability)
	}

	cov, err = s.clampCovariance(cov, a, b)
	if err != nil {
		return 0, err
	}

	s.cov[pairOf(a, b)] = cov

	return cov, nil
}

// decompose applies rules 2-11.
func (s *Space) decompose(a, b ID) (float64, error) {
	// 2) Same node: perfectly correlated with itself.
	if a == b {
		return s.Variance(a)
	}

	na, nb := s.node(a), s.node(b)

	switch {
	// 3) Additions distribute.
	case na.kind == KindAdd:
		return s.bilinear(na.left, na.right, b, +1.0)
	case nb.kind == KindAdd:
		return s.bilinear(nb.left, nb.right, a, +1.0)

	// 4) Subtractions distribute with a sign.
	case na.kind == KindSub:
		return s.bilinear(na.left, na.right, b, -1.0)
	case nb.kind == KindSub:
		return s.bilinear(nb.left, nb.right, a, -1.0)

	// 5) MAX(x,·) = x + z, so it distributes like an addition.
	case na.kind == KindMax:
		return s.bilinear(na.left, na.max0, b, +1.0)
	case nb.kind == KindMax:
		return s.bilinear(nb.left, nb.max0, a, +1.0)
	}

	aMax0 := na.kind == KindMax0
	bMax0 := nb.kind == KindMax0

	switch {
	// 6) Identical Max0 children: the nodes are the same variable.
	case aMax0 && bMax0 && na.left == nb.left:
		return s.Variance(a)

	// 7) Degenerate nesting max0(max0(y)) collapses one layer.
	case aMax0 && s.node(na.left).kind == KindMax0:
		return s.Covariance(na.left, b)
	case bMax0 && s.node(nb.left).kind == KindMax0:
		return s.Covariance(a, nb.left)

	// 9) Two distinct Max0 nodes: expand the deeper one; on a level tie
	//    expand both directions and average, keeping the result
	//    independent of argument order.
	case aMax0 && bMax0:
		switch {
		case na.level < nb.level:
			return s.covThroughMax0(a, b)
		case nb.level < na.level:
			return s.covThroughMax0(b, a)
		default:
			c0, err := s.covThroughMax0(a, b)
			if err != nil {
				return 0, err
			}
			c1, err := s.covThroughMax0(b, a)
			if err != nil {
				return 0, err
			}

			return (c0 + c1) * 0.5, nil
		}

	// 8) Exactly one Max0: scale the child covariance by the transfer
	//    factor.
	case aMax0:
		return s.covThroughMax0(b, a)
	case bMax0:
		return s.covThroughMax0(a, b)

	// 10) Two distinct Normal leaves never seeded into the cache are
	//     independent.
	case na.kind == KindNormal && nb.kind == KindNormal:
		return 0.0, nil

	default:
		// 11) Every kind pair is covered above; reaching here means the
		//     decomposition table is broken.
		return 0, fmt.Errorf("cov(%s,%s): %w", na.kind, nb.kind, ErrInternal)
	}
}

// bilinear computes cov(l,other) + sign·cov(r,other).
func (s *Space) bilinear(l, r, other ID, sign float64) (float64, error) {
	c0, err := s.Covariance(l, other)
	if err != nil {
		return 0, err
	}
	c1, err := s.Covariance(r, other)
	if err != nil {
		return 0, err
	}

	return c0 + sign*c1, nil
}

// covThroughMax0 computes cov(x, y) for y = Max0(z) via
// cov(x,z)·MeanPhiMax(-μ_z/σ_z).
func (s *Space) covThroughMax0(x, y ID) (float64, error) {
	z := s.node(y).left

	c, err := s.Covariance(x, z)
	if err != nil {
		return 0, err
	}
	mu, err := s.Mean(z)
	if err != nil {
		return 0, err
	}
	vz, err := s.Variance(z)
	if err != nil {
		return 0, err
	}

	cov := c * MeanPhiMax(-mu/math.Sqrt(vz))
	if math.IsNaN(cov) {
		return 0, fmt.Errorf("cov through max0 (z=%d) is NaN: %w", z, ErrNumericInstability)
	}

	return cov, nil
}

// clampCovariance enforces |corr| ≤ 1: a covariance whose magnitude
// exceeds √(var(a)·var(b)) is floating-point drift and is pulled back to
// the bound, keeping its sign. When both variances sit at the floor the
// pair carries no real signal; anything at MinVariance or above there is
// drift and collapses to 0.
func (s *Space) clampCovariance(cov float64, a, b ID) (float64, error) {
	va, err := s.Variance(a)
	if err != nil {
		return 0, err
	}
	vb, err := s.Variance(b)
	if err != nil {
		return 0, err
	}

	maxCov := math.Sqrt(va * vb)
	if maxCov < MinVariance {
		if math.Abs(cov) >= MinVariance {
			return 0.0, nil
		}

		return cov, nil
	}

	if math.Abs(cov) > maxCov {
		return math.Copysign(maxCov, cov), nil
	}

	return cov, nil
}
