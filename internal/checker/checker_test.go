package checker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/solver"
)

func TestCheckCorrectAnswer(t *testing.T) {
	c := New()
	v, err := c.Check(context.Background(), [4]int{2, 5, 8, 2}, "(2*(5+8))-2")
	require.NoError(t, err)
	assert.True(t, v.OK)
	assert.Equal(t, "24", v.Value)
}

func TestCheckWrongValue(t *testing.T) {
	c := New()
	v, err := c.Check(context.Background(), [4]int{2, 5, 8, 2}, "2+5+8+2")
	require.NoError(t, err)
	assert.False(t, v.OK)
	assert.Equal(t, "17", v.Value)
	assert.NotEmpty(t, v.Reason)
}

func TestCheckWrongNumbers(t *testing.T) {
	c := New()
	cases := []struct {
		name string
		expr string
	}{
		{"different number", "(2*(5+9))-2"},
		{"number reused", "2*2*2*3"},
		{"too few numbers", "8*(5-2)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := c.Check(context.Background(), [4]int{2, 5, 8, 2}, tc.expr)
			require.NoError(t, err)
			assert.False(t, v.OK)
			assert.Empty(t, v.Value)
		})
	}
}

func TestCheckDivisionByZero(t *testing.T) {
	c := New()
	v, err := c.Check(context.Background(), [4]int{1, 1, 1, 4}, "4/(1-1)+1")
	require.NoError(t, err)
	assert.False(t, v.OK)
	assert.Equal(t, "division by zero", v.Reason)
}

func TestCheckMalformedExpression(t *testing.T) {
	c := New()
	for _, expr := range []string{"", "2+", "(2+5", "2..5", "2 ^ 5 + 8 + 2", "-2+5+8+2"} {
		_, err := c.Check(context.Background(), [4]int{2, 5, 8, 2}, expr)
		assert.Error(t, err, "expr=%q", expr)
	}
}

func TestParsePrecedence(t *testing.T) {
	e, err := Parse("2+5*8-2")
	require.NoError(t, err)
	v, ok := solver.Eval(e)
	require.True(t, ok)
	assert.Equal(t, "40", v.RatString())
}

func TestParseFullParens(t *testing.T) {
	e, err := Parse("((8+5)*2)-2")
	require.NoError(t, err)
	assert.Equal(t, "((8+5)*2)-2", domain.Render(e))
}

// Every string the solver emits must parse back and score as a correct
// answer for its own hand.
func TestSolverOutputRoundTrips(t *testing.T) {
	s := solver.NewExhaustiveSolver()
	c := New()
	for _, hand := range [][4]int{{2, 5, 8, 2}, {4, 5, 6, 5}, {1, 7, 8, 8}, {3, 3, 8, 8}} {
		sols, _, err := s.Solve(context.Background(), hand[:])
		require.NoError(t, err)
		for _, sol := range sols {
			v, err := c.Check(context.Background(), hand, sol)
			require.NoError(t, err, "hand=%v sol=%q", hand, sol)
			assert.True(t, v.OK, "hand=%v sol=%q value=%s", hand, sol, v.Value)
		}
	}
}
