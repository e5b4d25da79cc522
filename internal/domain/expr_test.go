package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderShapes(t *testing.T) {
	a, b, c, d := Leaf{2}, Leaf{5}, Leaf{8}, Leaf{2}
	cases := []struct {
		name string
		expr Expr
		want string
	}{
		{
			"left-leaning",
			BinaryExpr{OpSub, BinaryExpr{OpMul, BinaryExpr{OpAdd, a, b}, c}, d},
			"((2+5)*8)-2",
		},
		{
			"inner-left",
			BinaryExpr{OpSub, BinaryExpr{OpMul, a, BinaryExpr{OpAdd, b, c}}, d},
			"(2*(5+8))-2",
		},
		{
			"balanced",
			BinaryExpr{OpMul, BinaryExpr{OpAdd, a, b}, BinaryExpr{OpDiv, c, d}},
			"(2+5)*(8/2)",
		},
		{
			"inner-right",
			BinaryExpr{OpMul, a, BinaryExpr{OpSub, BinaryExpr{OpAdd, b, c}, d}},
			"2*((5+8)-2)",
		},
		{
			"right-leaning",
			BinaryExpr{OpDiv, a, BinaryExpr{OpSub, b, BinaryExpr{OpDiv, c, d}}},
			"2/(5-(8/2))",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Render(tc.expr))
		})
	}
}

func TestRenderLeaf(t *testing.T) {
	assert.Equal(t, "7", Render(Leaf{7}))
	assert.Equal(t, "-3", Render(Leaf{-3}))
}

func TestOperatorSymbols(t *testing.T) {
	want := []string{"+", "-", "*", "/"}
	for i, op := range Operators {
		assert.Equal(t, want[i], op.Symbol())
	}
}

func TestDeckMax(t *testing.T) {
	assert.Equal(t, 9, SingleDigit.Max())
	assert.Equal(t, 24, DoubleDigit.Max())
}
