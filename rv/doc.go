// Package rv implements the random-variable algebra at the heart of
// statistical static timing analysis.
//
// 🚀 What is rv?
//
//	A closed algebra over Gaussian random variables with five node kinds:
//
//	  • Normal   — a leaf N(μ, σ²)
//	  • Add, Sub — sums and differences of two nodes
//	  • Max      — max of two nodes, decomposed as MAX(a,b) = a + MAX0(b-a)
//	  • Max0     — max(x, 0) of a single node, the Clark-approximation
//	               workhorse whose closed-form moments drive everything
//
// Nodes live in a Space — a typed arena addressed by ID. A Space also owns
// the memoized covariance cache (keyed on unordered ID pairs, so symmetry
// and query-order invariance hold by construction) and one shared
// expression graph used for the symbolic μ/σ views consumed by
// sensitivity analysis.
//
// ✨ Guarantees:
//   - Mean and Variance are lazy, memoized, and bitwise-stable on repeat.
//   - Every variance observable by callers is at least MinVariance.
//   - Covariance obeys cov(a,b) == cov(b,a) exactly and is clamped so
//     |corr| never exceeds 1.
//
// Two fresh Normals are uncorrelated; two references to the same ID are
// perfectly correlated. Clone duplicates a Normal leaf into a fresh,
// independent ID — the mechanism gate instances use so sensitivities
// attribute to the instance rather than the library entry.
//
// The package is single-threaded by design: a Space must not be shared
// across goroutines without external synchronization.
package rv
