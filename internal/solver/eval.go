package solver

import (
	"math/big"

	"svw.info/twentyfour/internal/domain"
)

var target = big.NewRat(domain.Target, 1)

// Eval computes the exact value of an expression tree. Rational arithmetic
// keeps non-integral intermediates like 8/3 comparable to the target
// without any epsilon. ok is false when a division by zero occurs anywhere
// in the tree; such a tree is simply not a candidate.
func Eval(e domain.Expr) (*big.Rat, bool) {
	switch n := e.(type) {
	case domain.Leaf:
		return new(big.Rat).SetInt64(int64(n.Value)), true
	case domain.BinaryExpr:
		l, ok := Eval(n.Left)
		if !ok {
			return nil, false
		}
		r, ok := Eval(n.Right)
		if !ok {
			return nil, false
		}
		switch n.Op {
		case domain.OpAdd:
			return new(big.Rat).Add(l, r), true
		case domain.OpSub:
			return new(big.Rat).Sub(l, r), true
		case domain.OpMul:
			return new(big.Rat).Mul(l, r), true
		case domain.OpDiv:
			if r.Sign() == 0 {
				return nil, false
			}
			return new(big.Rat).Quo(l, r), true
		}
	}
	return nil, false
}
