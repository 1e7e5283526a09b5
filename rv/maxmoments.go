// Package rv: scalar moment helpers for max(x, 0) of a Gaussian.
//
// For x ~ N(μ, σ²) and s = -μ/σ the closed forms are
//
//	E[max(x,0)]   = μ + σ·MeanMax(s)
//	Var[max(x,0)] = σ²·(MeanMax2(s) - MeanMax(s)²)
//
// and the covariance engine scales cov(x, z) by MeanPhiMax(-μ_z/σ_z) when
// expanding a Max0(z) operand. Φ and φ come from gonum's unit normal,
// whose CDF is erfc-based and therefore relatively accurate deep into the
// tails; the remaining hazard is the MeanMax2 - MeanMax² cancellation for
// large positive s, handled by the tail cutoff in max0Moments below.

package rv

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the shared unit normal used by every helper.
var stdNormal = distuv.UnitNormal

// MeanMax returns φ(s) + s·Φ(s).
//
// Limits: MeanMax(s) → 0 as s → -∞ and MeanMax(s) → s as s → +∞, so
// E[max(x,0)] = μ + σ·MeanMax(-μ/σ) tends to μ for strongly positive x
// and to 0 for strongly negative x.
func MeanMax(s float64) float64 {
	return stdNormal.Prob(s) + s*stdNormal.CDF(s)
}

// MeanMax2 returns (1 - Φ(s)) + s²·Φ(s) + s·φ(s), the second moment of
// max(x,0) in units of σ² shifted so that
// Var[max(x,0)] = σ²·(MeanMax2(s) - MeanMax(s)²).
func MeanMax2(s float64) float64 {
	phi := stdNormal.Prob(s)
	cdf := stdNormal.CDF(s)

	return stdNormal.Survival(s) + s*s*cdf + s*phi
}

// MeanPhiMax returns φ(s) + s·(1 - Φ(s)), the covariance transfer factor
// for a Max0 operand. The upper tail is evaluated through Survival (erfc
// based), so the s·(1-Φ(s)) product stays accurate for large s instead of
// collapsing to s·0.
func MeanPhiMax(s float64) float64 {
	return stdNormal.Prob(s) + s*stdNormal.Survival(s)
}

// max0Moments returns E[max(x,0)] and Var[max(x,0)] for x ~ N(mu, sigma2).
//
// For s beyond +tailCut the variance expression is pure cancellation noise
// (both MeanMax2 and MeanMax² ≈ s²) while the true variance is far below
// MinVariance, so it is reported as 0 and left to the caller's clamp.
func max0Moments(mu, sigma2 float64) (mean, variance float64) {
	sigma := math.Sqrt(sigma2)
	s := -mu / sigma

	const tailCut = 8.0

	mm := MeanMax(s)
	mean = mu + sigma*mm

	if s > tailCut {
		return mean, 0.0
	}
	variance = sigma2 * (MeanMax2(s) - mm*mm)

	return mean, variance
}
