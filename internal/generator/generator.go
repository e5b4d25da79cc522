package generator

import (
	"context"
	"fmt"
	"time"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

// ValidGameGenerator deals hands and keeps the ones with at least one
// solution until the requested count is reached. Each attempt is
// independent; stats accumulate across kept and discarded hands.
type ValidGameGenerator struct {
	Solver ports.Solver
}

func NewValidGameGenerator(s ports.Solver) *ValidGameGenerator {
	return &ValidGameGenerator{Solver: s}
}

// BuildGame solves one explicit hand and packages it as a Game. An empty
// Solutions slice is a valid outcome, not an error.
func (g *ValidGameGenerator) BuildGame(ctx context.Context, numbers []int) (*domain.Game, ports.Stats, error) {
	sols, st, err := g.Solver.Solve(ctx, numbers)
	if err != nil {
		return nil, st, err
	}
	var hand [4]int
	copy(hand[:], numbers)
	return &domain.Game{
		Numbers:   hand,
		Solutions: sols,
		CreatedAt: time.Now().UnixNano(),
	}, st, nil
}

func (g *ValidGameGenerator) GenerateValid(ctx context.Context, count int, d ports.Dealer) ([]*domain.Game, ports.Stats, error) {
	start := time.Now()
	if count < 1 {
		return nil, ports.Stats{}, fmt.Errorf("%w: got %d", domain.ErrInvalidCount, count)
	}
	var seed int64
	if sd, ok := d.(interface{ Seed() int64 }); ok {
		seed = sd.Seed()
	}

	games := make([]*domain.Game, 0, count)
	trees := 0
	for len(games) < count {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Trees: trees, Duration: time.Since(start)}, err
		}
		hand := d.Deal()
		game, st, err := g.BuildGame(ctx, hand[:])
		trees += st.Trees
		if err != nil {
			return nil, ports.Stats{Trees: trees, Duration: time.Since(start)}, err
		}
		if len(game.Solutions) == 0 {
			continue
		}
		game.Seed = seed
		game.Deck = d.Deck()
		games = append(games, game)
	}
	return games, ports.Stats{Trees: trees, Duration: time.Since(start)}, nil
}
