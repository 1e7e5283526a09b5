// Package expr implements a differentiable real-valued expression DAG.
//
// 🚀 What is expr?
//
//	A small autodiff engine over a fixed operator set:
//	  • leaves: Const (immutable) and Variable (mutable, invalidating)
//	  • binary: Plus, Minus, Mul, Div, Power
//	  • unary:  Exp, Log
//
// Expressions are built through a *Graph, which registers every node so
// gradient accumulators can be reset in one sweep. Construction applies
// algebraic simplification (x+0=x, x*1=x, x*0=0, ...), so the DAG you get
// back may be an existing node rather than a fresh one.
//
// ✨ Two differentiation modes:
//   - Deriv(wrt)  — forward symbolic differentiation; returns a new
//     expression, memoized per (node, wrt). Use when a closed-form
//     derivative expression is wanted.
//   - Backward()  — reverse-mode accumulation from a scalar output into
//     every reachable node's Gradient(). Use when there are many inputs
//     and one output (the sensitivity-analysis shape).
//
// Values are evaluated lazily and cached; (*Expr).Set on a Variable
// invalidates all transitively dependent cached values through parent
// back-references.
//
// The package is deliberately single-threaded: a Graph and its nodes must
// not be shared across goroutines without external synchronization.
package expr
