package solver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

// ExhaustiveSolver tries every expression tree over the four cards:
// 24 leaf orderings x 64 operator assignments x 5 shapes, 7680 trees.
// Matches are deduplicated by exact rendered string, first-seen order;
// commutative rearrangements stay distinct entries on purpose, so
// (2*(5+8))-2 and (2*(8+5))-2 both appear.
type ExhaustiveSolver struct {
	// Workers bounds parallel search across leaf orderings. Values below 2
	// keep the whole search on the calling goroutine. Output is identical
	// either way: per-ordering results are merged in ordering sequence.
	Workers int
}

func NewExhaustiveSolver() *ExhaustiveSolver { return &ExhaustiveSolver{} }

func (s *ExhaustiveSolver) Solve(ctx context.Context, numbers []int) ([]string, ports.Stats, error) {
	start := time.Now()
	if len(numbers) != 4 {
		return nil, ports.Stats{}, fmt.Errorf("%w: got %d", domain.ErrInvalidInput, len(numbers))
	}
	var hand [4]int
	copy(hand[:], numbers)
	orders := leafOrders(hand)

	raw := make([][]string, len(orders))
	trees := make([]int, len(orders))

	if s.Workers > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.Workers)
		for i, order := range orders {
			i, order := i, order
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				raw[i], trees[i] = searchOrder(order)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, ports.Stats{Duration: time.Since(start)}, err
		}
	} else {
		for i, order := range orders {
			if err := ctx.Err(); err != nil {
				return nil, ports.Stats{Duration: time.Since(start)}, err
			}
			raw[i], trees[i] = searchOrder(order)
		}
	}

	total := 0
	for _, n := range trees {
		total += n
	}
	seen := make(map[string]struct{})
	solutions := make([]string, 0, 8)
	for _, batch := range raw {
		for _, sol := range batch {
			if _, ok := seen[sol]; ok {
				continue
			}
			seen[sol] = struct{}{}
			solutions = append(solutions, sol)
		}
	}
	return solutions, ports.Stats{Trees: total, Duration: time.Since(start)}, nil
}
