package domain

import "errors"

var (
	// ErrInvalidInput rejects hands that do not hold exactly four integers.
	ErrInvalidInput = errors.New("a hand holds exactly four integers")
	// ErrInvalidCount rejects non-positive game counts.
	ErrInvalidCount = errors.New("game count must be positive")
)
