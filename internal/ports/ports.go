package ports

import (
	"context"
	"time"

	"svw.info/twentyfour/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Trees    int
	Duration time.Duration
}

// Solver finds every distinct solution for a hand. The slice is empty,
// not nil-with-error, when no combination reaches the target; it fails
// with domain.ErrInvalidInput unless numbers holds exactly four entries.
type Solver interface {
	Solve(ctx context.Context, numbers []int) ([]string, Stats, error)
}

// Dealer draws hands of four cards.
type Dealer interface {
	Deal() [4]int
	Deck() domain.Deck
}

// Generator redraws hands until it has collected count games that each
// have at least one solution. count < 1 fails with domain.ErrInvalidCount.
type Generator interface {
	GenerateValid(ctx context.Context, count int, d Dealer) ([]*domain.Game, Stats, error)
}

// Checker verifies a player's expression against the dealt hand.
type Checker interface {
	Check(ctx context.Context, hand [4]int, expression string) (domain.Verdict, error)
}

// Storage persists and retrieves games as JSON.
type Storage interface {
	Save(ctx context.Context, g *domain.Game) error
	Load(ctx context.Context, id string) (*domain.Game, error)
	List(ctx context.Context) ([]domain.GameMeta, error)
}
