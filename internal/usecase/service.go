package usecase

import (
	"context"
	"errors"

	"svw.info/twentyfour/internal/domain"
	"svw.info/twentyfour/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Checker   ports.Checker
	Storage   ports.Storage
}

func NewService(s ports.Solver, g ports.Generator, c ports.Checker, st ports.Storage) *Service {
	return &Service{Solver: s, Generator: g, Checker: c, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, numbers []int) ([]string, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, numbers)
}

func (u *Service) Deal(ctx context.Context, count int, d ports.Dealer) ([]*domain.Game, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.GenerateValid(ctx, count, d)
}

func (u *Service) Check(ctx context.Context, hand [4]int, expression string) (domain.Verdict, error) {
	if u.Checker == nil {
		return domain.Verdict{}, errNotConfigured
	}
	return u.Checker.Check(ctx, hand, expression)
}

// Persistence
func (u *Service) Save(ctx context.Context, g *domain.Game) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, g)
}
func (u *Service) Load(ctx context.Context, id string) (*domain.Game, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}
func (u *Service) List(ctx context.Context) ([]domain.GameMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
