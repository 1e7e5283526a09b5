// Package expr: forward-mode symbolic differentiation.

package expr

// Deriv returns the derivative of e with respect to wrt as a new
// expression, memoized per (node, wrt) pair. The result shares structure
// with e and participates in the same graph.
//
// Rules:
//
//	d(x)/dx = 1, d(const)/dx = 0, d(var!=x)/dx = 0
//	(l+r)' = l' + r'          (l-r)' = l' - r'
//	(l*r)' = l'*r + l*r'      (l/r)' = (l' - (l/r)*r') / r
//	(l^r)' = l^r * (l'*r/l + r'*ln l)
//	exp(l)' = exp(l) * l'     log(l)' = l' / l
//
// Complexity: O(n) over the sub-DAG on first call, O(1) memoized.
func (e *Expr) Deriv(wrt *Expr) (*Expr, error) {
	sameGraph(e, wrt)

	if d, ok := e.derivs[wrt]; ok {
		return d, nil
	}

	d, err := e.deriv(wrt)
	if err != nil {
		return nil, err
	}

	if e.derivs == nil {
		e.derivs = make(map[*Expr]*Expr)
	}
	e.derivs[wrt] = d

	return d, nil
}

func (e *Expr) deriv(wrt *Expr) (*Expr, error) {
	g := e.graph

	if e == wrt {
		return g.one, nil
	}

	switch e.op {
	case OpConst, OpVariable:
		return g.zero, nil

	case OpPlus, OpMinus, OpMul, OpDiv, OpPower:
		dl, err := e.left.Deriv(wrt)
		if err != nil {
			return nil, err
		}
		dr, err := e.right.Deriv(wrt)
		if err != nil {
			return nil, err
		}

		switch e.op {
		case OpPlus:
			return Add(dl, dr), nil
		case OpMinus:
			return Sub(dl, dr), nil
		case OpMul:
			return Add(Mul(dl, e.right), Mul(e.left, dr)), nil
		case OpDiv:
			// (l/r)' = (l' - x*r') / r with x = l/r = e itself.
			return Div(Sub(dl, Mul(e, dr)), e.right)
		default: // OpPower
			// x' = x * ( l'/l * r + r' * ln l )
			lt, err := Div(dl, e.left)
			if err != nil {
				return nil, err
			}

			return Mul(e, Add(Mul(lt, e.right), Mul(dr, Log(e.left)))), nil
		}

	case OpExp:
		dl, err := e.left.Deriv(wrt)
		if err != nil {
			return nil, err
		}

		return Mul(e, dl), nil

	case OpLog:
		dl, err := e.left.Deriv(wrt)
		if err != nil {
			return nil, err
		}

		return Div(dl, e.left)

	default:
		panic("expr: unknown operator")
	}
}
