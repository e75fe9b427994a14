package staticlexicon

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"sync"

	"github.com/morfo-lang/morfo"
)

// Lexicon serves translations from a JSON file mapping concept IDs to
// per-language lexemes. With readOnly set, Add returns
// morfo.ErrReadOnly and reads skip the lock.
type Lexicon struct {
	mu       sync.Mutex
	readOnly bool
	entries  map[string]map[string]morfo.Lexeme
}

// Data is the file layout: concept ID, then lowercase language code.
type Data struct {
	Entries map[string]map[string]morfo.Lexeme `json:"entries"`
}

func Open(path string, readOnly bool) (*Lexicon, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var data Data
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return nil, err
	}

	return FromData(readOnly, data), nil
}

func FromData(readOnly bool, data Data) *Lexicon {
	entries := data.Entries
	if entries == nil {
		entries = make(map[string]map[string]morfo.Lexeme)
	}

	return &Lexicon{readOnly: readOnly, entries: entries}
}

func (l *Lexicon) Lexeme(ctx context.Context, conceptID, language string) (*morfo.Lexeme, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if !l.readOnly {
		l.mu.Lock()
		defer l.mu.Unlock()
	}

	byLanguage, ok := l.entries[conceptID]
	if !ok {
		return nil, morfo.ErrLexemeNotFound
	}

	lexeme, ok := byLanguage[strings.ToLower(language)]
	if !ok {
		return nil, morfo.ErrLexemeNotFound
	}

	lexeme.ConceptID = conceptID
	lexeme.Language = strings.ToLower(language)
	return &lexeme, nil
}

func (l *Lexicon) Add(conceptID, language string, lexeme morfo.Lexeme) error {
	if l.readOnly {
		return morfo.ErrReadOnly
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.entries[conceptID] == nil {
		l.entries[conceptID] = make(map[string]morfo.Lexeme, 4)
	}
	l.entries[conceptID][strings.ToLower(language)] = lexeme

	return nil
}
