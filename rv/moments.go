// Package rv: lazy numeric moment evaluation.

package rv

import (
	"fmt"
	"math"
)

// Mean returns E[id], computing it on first call and memoizing the result;
// repeat calls return the identical float64.
//
// Complexity: O(sub-DAG) on first call (Max variants consult the
// covariance engine), O(1) thereafter.
func (s *Space) Mean(id ID) (float64, error) {
	n := s.node(id)
	if n.meanSet {
		return n.mean, nil
	}

	var m float64
	switch n.kind {
	case KindNormal:
		m = n.mu

	case KindAdd, KindSub:
		lm, err := s.Mean(n.left)
		if err != nil {
			return 0, err
		}
		rm, err := s.Mean(n.right)
		if err != nil {
			return 0, err
		}
		if n.kind == KindAdd {
			m = lm + rm
		} else {
			m = lm - rm
		}

	case KindMax:
		// mean(MAX(a,b)) = mean(a) + mean(MAX0(b-a))
		am, err := s.Mean(n.left)
		if err != nil {
			return 0, err
		}
		zm, err := s.Mean(n.max0)
		if err != nil {
			return 0, err
		}
		m = am + zm

	case KindMax0:
		mu, err := s.Mean(n.left)
		if err != nil {
			return 0, err
		}
		v, err := s.Variance(n.left)
		if err != nil {
			return 0, err
		}
		m, _ = max0Moments(mu, v)

	default:
		panic("rv: unknown node kind")
	}

	if math.IsNaN(m) {
		return 0, fmt.Errorf("mean of %s node %d is NaN: %w", n.kind, id, ErrNumericInstability)
	}

	n.mean = m
	n.meanSet = true

	return m, nil
}

// Variance returns Var[id], computing it on first call and memoizing.
//
// Every observable value is at least MinVariance: results in
// (-MinVariance, MinVariance) are clamped up (numerical drift around
// zero), results at or below -MinVariance are ErrNegativeVariance, and
// NaN is ErrNumericInstability.
func (s *Space) Variance(id ID) (float64, error) {
	n := s.node(id)
	if n.varSet {
		return n.varr, nil
	}

	var v float64
	switch n.kind {
	case KindNormal:
		v = n.sigma2 // clamped at construction

	case KindAdd, KindSub:
		lv, err := s.Variance(n.left)
		if err != nil {
			return 0, err
		}
		rv, err := s.Variance(n.right)
		if err != nil {
			return 0, err
		}
		cov, err := s.Covariance(n.left, n.right)
		if err != nil {
			return 0, err
		}
		if n.kind == KindAdd {
			v = lv + 2.0*cov + rv
		} else {
			v = lv - 2.0*cov + rv
		}

	case KindMax:
		// var(MAX(a,b)) = var(a) + 2·cov(a,z) + var(z), z = MAX0(b-a)
		av, err := s.Variance(n.left)
		if err != nil {
			return 0, err
		}
		zv, err := s.Variance(n.max0)
		if err != nil {
			return 0, err
		}
		cov, err := s.Covariance(n.left, n.max0)
		if err != nil {
			return 0, err
		}
		v = av + 2.0*cov + zv

	case KindMax0:
		mu, err := s.Mean(n.left)
		if err != nil {
			return 0, err
		}
		lv, err := s.Variance(n.left)
		if err != nil {
			return 0, err
		}
		_, v = max0Moments(mu, lv)

	default:
		panic("rv: unknown node kind")
	}

	v, err := s.checkVariance(v, id)
	if err != nil {
		return 0, err
	}

	n.varr = v
	n.varSet = true

	return v, nil
}

// checkVariance applies the observable-variance policy: NaN is fatal,
// |v| < MinVariance clamps up to the floor, anything at or below
// -MinVariance is a genuine bug.
func (s *Space) checkVariance(v float64, id ID) (float64, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("variance of node %d is NaN: %w", id, ErrNumericInstability)
	}
	if math.Abs(v) < MinVariance {
		return MinVariance, nil
	}
	if v < 0.0 {
		return 0, fmt.Errorf("variance of node %d is %g: %w", id, v, ErrNegativeVariance)
	}

	return v, nil
}

// Std returns √Var[id]; a convenience for reporting layers.
func (s *Space) Std(id ID) (float64, error) {
	v, err := s.Variance(id)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}
