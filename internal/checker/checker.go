// Package checker scores player-submitted expressions against a dealt
// hand, using the same exact arithmetic as the solver.
package checker

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/solver"
)

var target = big.NewRat(domain.Target, 1)

type AnswerChecker struct{}

func New() *AnswerChecker { return &AnswerChecker{} }

// Check parses the expression, requires it to use each dealt number exactly
// once, and evaluates it exactly. A wrong value or a division by zero is a
// negative verdict, not an error; only an unparseable expression errors.
func (c *AnswerChecker) Check(ctx context.Context, hand [4]int, expression string) (domain.Verdict, error) {
	e, err := Parse(expression)
	if err != nil {
		return domain.Verdict{}, fmt.Errorf("parse expression: %w", err)
	}
	if !usesHand(e, hand) {
		return domain.Verdict{Reason: "expression must use each dealt number exactly once"}, nil
	}
	v, ok := solver.Eval(e)
	if !ok {
		return domain.Verdict{Reason: "division by zero"}, nil
	}
	verdict := domain.Verdict{Value: v.RatString()}
	if v.Cmp(target) == 0 {
		verdict.OK = true
	} else {
		verdict.Reason = fmt.Sprintf("evaluates to %s, not %d", v.RatString(), domain.Target)
	}
	return verdict, nil
}

// usesHand compares the expression's leaf multiset with the hand.
func usesHand(e domain.Expr, hand [4]int) bool {
	leaves := collectLeaves(e, nil)
	if len(leaves) != len(hand) {
		return false
	}
	want := append([]int(nil), hand[:]...)
	sort.Ints(leaves)
	sort.Ints(want)
	for i := range want {
		if leaves[i] != want[i] {
			return false
		}
	}
	return true
}

func collectLeaves(e domain.Expr, acc []int) []int {
	switch n := e.(type) {
	case domain.Leaf:
		return append(acc, n.Value)
	case domain.BinaryExpr:
		return collectLeaves(n.Right, collectLeaves(n.Left, acc))
	}
	return acc
}
