// Package expr: operator combinators with construction-time simplification.
//
// Each combinator prunes trivial algebra before allocating a node, so the
// DAG stays small when expressions are assembled mechanically (the
// random-variable layer emits many x+0 / x*1 shapes). Simplifications are
// value-based on Const leaves only; Variables are never folded.

package expr

// Add returns a + b, simplifying a+0 and 0+b.
func Add(a, b *Expr) *Expr {
	sameGraph(a, b)
	if a.isConst(0) {
		return b
	}
	if b.isConst(0) {
		return a
	}

	return a.graph.newNode(OpPlus, a, b)
}

// Sub returns a - b, simplifying a-0 and 0-b (the latter becomes Neg(b)).
func Sub(a, b *Expr) *Expr {
	sameGraph(a, b)
	if b.isConst(0) {
		return a
	}
	if a.isConst(0) {
		return Neg(b)
	}

	return a.graph.newNode(OpMinus, a, b)
}

// Neg returns -a as (-1)*a, folding the -(-1) and -0 cases.
func Neg(a *Expr) *Expr {
	if a.isConst(0) {
		return a.graph.zero
	}
	if a.isConst(-1) {
		return a.graph.one
	}

	return a.graph.newNode(OpMul, a.graph.Const(-1), a)
}

// Mul returns a * b, simplifying multiplication by 0 and 1.
func Mul(a, b *Expr) *Expr {
	sameGraph(a, b)
	if a.isConst(0) || b.isConst(0) {
		return a.graph.zero
	}
	if a.isConst(1) {
		return b
	}
	if b.isConst(1) {
		return a
	}

	return a.graph.newNode(OpMul, a, b)
}

// Div returns a / b.
//
// A literal zero divisor is rejected at construction with ErrMathDomain
// (dividing by a Variable that later evaluates to zero is caught at
// evaluation time instead). 0/b simplifies to 0; a/1 to a; a/(-1) to -a.
func Div(a, b *Expr) (*Expr, error) {
	sameGraph(a, b)
	if b.isConst(0) {
		return nil, ErrMathDomain
	}
	if a.isConst(0) {
		return a.graph.zero, nil
	}
	if b.isConst(1) {
		return a, nil
	}
	if b.isConst(-1) {
		return Neg(a), nil
	}

	return a.graph.newNode(OpDiv, a, b), nil
}

// Pow returns a ^ b.
//
// Simplifications: a^0 = 1 (0^0 is ErrMathDomain), a^1 = a, 0^b = 0.
func Pow(a, b *Expr) (*Expr, error) {
	sameGraph(a, b)
	if b.isConst(0) {
		if a.isConst(0) {
			return nil, ErrMathDomain
		}

		return a.graph.one, nil
	}
	if b.isConst(1) {
		return a, nil
	}
	if a.isConst(0) {
		return a.graph.zero, nil
	}

	return a.graph.newNode(OpPower, a, b), nil
}

// Exp returns e^a.
func Exp(a *Expr) *Expr {
	return a.graph.newNode(OpExp, a, nil)
}

// Log returns the natural logarithm of a.
func Log(a *Expr) *Expr {
	return a.graph.newNode(OpLog, a, nil)
}
