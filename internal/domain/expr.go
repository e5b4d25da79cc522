package domain

import "strconv"

// Expr is a node in a candidate expression tree. A full candidate has
// exactly four leaves (one per dealt number) and three binary nodes.
type Expr interface {
	// String renders the node; binary nodes render parenthesized.
	String() string
}

// Leaf holds one dealt number.
type Leaf struct {
	Value int
}

func (l Leaf) String() string { return strconv.Itoa(l.Value) }

// BinaryExpr applies an operator to two subexpressions.
type BinaryExpr struct {
	Op          Operator
	Left, Right Expr
}

func (b BinaryExpr) String() string {
	return "(" + b.Left.String() + b.Op.Symbol() + b.Right.String() + ")"
}

// Render produces the canonical solution string: every grouping stays
// parenthesized except the outermost operation, no whitespace. Example:
// (2*(5+8))-2. Rendered strings double as deduplication keys, so two
// trees are duplicates exactly when they render identically.
func Render(e Expr) string {
	if b, ok := e.(BinaryExpr); ok {
		return b.Left.String() + b.Op.Symbol() + b.Right.String()
	}
	return e.String()
}
