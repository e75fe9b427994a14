package cardstore

import (
	"context"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/morfo-lang/morfo"
)

// Store holds the language cards loaded from a directory. Cards are
// parsed once at Open time and handed out as shared pointers; callers
// must treat them as immutable.
type Store struct {
	mu    sync.Mutex
	path  string
	cards map[string]*morfo.Card
}

func (s *Store) Card(ctx context.Context, language string) (*morfo.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[strings.ToLower(language)]
	if !ok {
		return nil, morfo.ErrCardNotFound
	}

	return card, nil
}

func (s *Store) ListCards(ctx context.Context) ([]*morfo.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]*morfo.Card, 0, len(s.cards))
	for _, card := range s.cards {
		res = append(res, card)
	}

	sort.Slice(res, func(i, j int) bool { return res[i].Language < res[j].Language })

	return res, nil
}

func (s *Store) CardCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.cards)
}

// Open loads every .yaml, .yml and .json card under dirPath. The file
// name does not matter; the card's own language field is the key, and
// a duplicate language is an error.
func Open(ctx context.Context, dirPath string) (*Store, error) {
	stat, err := os.Stat(dirPath)
	if err != nil {
		return nil, err
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, err
	}

	cards := make(map[string]*morfo.Card, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch path.Ext(entry.Name()) {
		case ".yaml", ".yml", ".json":
		default:
			continue
		}

		data, err := os.ReadFile(path.Join(dirPath, entry.Name()))
		if err != nil {
			return nil, err
		}

		card, err := morfo.DecodeCard(data)
		if err != nil {
			return nil, fmt.Errorf("could not load card %s: %w", entry.Name(), err)
		}

		key := strings.ToLower(card.Language)
		if _, ok := cards[key]; ok {
			return nil, fmt.Errorf("could not load card %s: duplicate language %q", entry.Name(), card.Language)
		}
		cards[key] = card
	}

	return &Store{path: dirPath, cards: cards}, nil
}

// FromCards builds a store without touching the filesystem. Used by
// tests and by callers that embed their cards.
func FromCards(cards ...*morfo.Card) *Store {
	m := make(map[string]*morfo.Card, len(cards))
	for _, card := range cards {
		m[strings.ToLower(card.Language)] = card
	}

	return &Store{cards: m}
}
