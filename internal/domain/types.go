package domain

// Target is the value every solution must reach.
const Target = 24

// Game is one dealt hand together with all of its solutions. Numbers keeps
// the draw order; Solutions holds rendered expressions, duplicate-free.
type Game struct {
	ID        string   `json:"id,omitempty"`
	Seed      int64    `json:"seed,omitempty"`
	Deck      Deck     `json:"deck,omitempty"`
	Numbers   [4]int   `json:"numbers"`
	Solutions []string `json:"solutions"`
	CreatedAt int64    `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// GameMeta is a lightweight listing entry.
type GameMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Deck      Deck   `json:"deck"`
	Numbers   [4]int `json:"numbers"`
	CreatedAt int64  `json:"createdAt"`
}

// Verdict reports how a submitted answer scored.
type Verdict struct {
	OK bool `json:"ok"`
	// Value is the exact rational the expression evaluates to, e.g. "24"
	// or "35/2". Empty when the expression could not be evaluated.
	Value  string `json:"value,omitempty"`
	Reason string `json:"reason,omitempty"`
}
