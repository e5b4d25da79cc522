package solver

import "svw.info/twentyfour/internal/domain"

func bin(op domain.Operator, l, r domain.Expr) domain.Expr {
	return domain.BinaryExpr{Op: op, Left: l, Right: r}
}

// shapes are the five binary-tree topologies on four leaves (Catalan C3).
// Operator slots are numbered left to right in the rendered form.
var shapes = [5]func(n [4]domain.Expr, op [3]domain.Operator) domain.Expr{
	// ((a.b).c).d
	func(n [4]domain.Expr, op [3]domain.Operator) domain.Expr {
		return bin(op[2], bin(op[1], bin(op[0], n[0], n[1]), n[2]), n[3])
	},
	// (a.(b.c)).d
	func(n [4]domain.Expr, op [3]domain.Operator) domain.Expr {
		return bin(op[2], bin(op[0], n[0], bin(op[1], n[1], n[2])), n[3])
	},
	// (a.b).(c.d)
	func(n [4]domain.Expr, op [3]domain.Operator) domain.Expr {
		return bin(op[1], bin(op[0], n[0], n[1]), bin(op[2], n[2], n[3]))
	},
	// a.((b.c).d)
	func(n [4]domain.Expr, op [3]domain.Operator) domain.Expr {
		return bin(op[0], n[0], bin(op[2], bin(op[1], n[1], n[2]), n[3]))
	},
	// a.(b.(c.d))
	func(n [4]domain.Expr, op [3]domain.Operator) domain.Expr {
		return bin(op[0], n[0], bin(op[1], n[1], bin(op[2], n[2], n[3])))
	},
}

// leafOrders returns the 24 positional orderings of the hand, in a fixed
// order. Orderings that repeat a value are kept; string dedup at the end
// absorbs the overlap.
func leafOrders(hand [4]int) [][4]int {
	idx := [4]int{0, 1, 2, 3}
	out := make([][4]int, 0, 24)
	var rec func(k int)
	rec = func(k int) {
		if k == 4 {
			var o [4]int
			for i, j := range idx {
				o[i] = hand[j]
			}
			out = append(out, o)
			return
		}
		for i := k; i < 4; i++ {
			idx[k], idx[i] = idx[i], idx[k]
			rec(k + 1)
			idx[k], idx[i] = idx[i], idx[k]
		}
	}
	rec(0)
	return out
}

// searchOrder walks every (operator assignment, shape) pair for one leaf
// ordering and returns the rendered matches plus the number of trees tried.
func searchOrder(order [4]int) ([]string, int) {
	var leaves [4]domain.Expr
	for i, v := range order {
		leaves[i] = domain.Leaf{Value: v}
	}
	var found []string
	trees := 0
	var ops [3]domain.Operator
	for _, o0 := range domain.Operators {
		ops[0] = o0
		for _, o1 := range domain.Operators {
			ops[1] = o1
			for _, o2 := range domain.Operators {
				ops[2] = o2
				for _, build := range shapes {
					trees++
					e := build(leaves, ops)
					v, ok := Eval(e)
					if !ok || v.Cmp(target) != 0 {
						continue
					}
					found = append(found, domain.Render(e))
				}
			}
		}
	}
	return found, trees
}
