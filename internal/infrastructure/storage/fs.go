package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"svw.info/twentyfour/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func deckDir(d domain.Deck) string {
	if d == domain.DoubleDigit {
		return "double"
	}
	return "single"
}

func (s *FS) pathFor(id string, d domain.Deck) string {
	return filepath.Join(s.dir, deckDir(d), strings.TrimSpace(id)+".json")
}

// Save writes the game as indented JSON under {dir}/{deck}/{id}.json,
// assigning a fresh ID when the game has none.
func (s *FS) Save(ctx context.Context, g *domain.Game) error {
	if g == nil {
		return errors.New("invalid game: nil")
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	target := s.pathFor(g.ID, g.Deck)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(g)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Game, error) {
	candidates := []string{
		filepath.Join(s.dir, "single", id+".json"),
		filepath.Join(s.dir, "double", id+".json"),
		filepath.Join(s.dir, id+".json"), // legacy flat layout
	}
	var data []byte
	for _, path := range candidates {
		if _, statErr := os.Stat(path); statErr == nil {
			b, err := os.ReadFile(path)
			if err != nil {
				return nil, err
			}
			data = b
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Game
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.GameMeta, error) {
	var out []domain.GameMeta
	type bucket struct {
		path string
		deck domain.Deck
	}
	buckets := []bucket{
		{filepath.Join(s.dir, "single"), domain.SingleDigit},
		{filepath.Join(s.dir, "double"), domain.DoubleDigit},
		{s.dir, domain.SingleDigit}, // legacy flat files
	}
	for _, b := range buckets {
		ents, err := os.ReadDir(b.path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(b.path, e.Name()))
			if err != nil {
				continue
			}
			var g domain.Game
			if err := json.Unmarshal(data, &g); err != nil || g.ID == "" {
				continue
			}
			out = append(out, domain.GameMeta{
				ID:        g.ID,
				Name:      g.Name,
				Deck:      g.Deck,
				Numbers:   g.Numbers,
				CreatedAt: g.CreatedAt,
			})
		}
	}
	return out, nil
}
