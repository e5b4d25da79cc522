package generator

import (
	"math/rand"

	"svw.info/twentyfour/internal/domain"
)

// SeededDealer draws uniform hands from a deck using its own rand source,
// so a fixed seed replays the same sequence of hands.
type SeededDealer struct {
	deck domain.Deck
	seed int64
	rng  *rand.Rand
}

func NewSeededDealer(seed int64, deck domain.Deck) *SeededDealer {
	return &SeededDealer{deck: deck, seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func (d *SeededDealer) Deal() [4]int {
	var hand [4]int
	for i := range hand {
		hand[i] = d.rng.Intn(d.deck.Max()) + 1
	}
	return hand
}

func (d *SeededDealer) Deck() domain.Deck { return d.deck }

func (d *SeededDealer) Seed() int64 { return d.seed }
