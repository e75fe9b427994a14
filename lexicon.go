package morfo

import (
	"context"
	"errors"
)

// Lexicon resolves stable concept identifiers to per-language lemmas.
// Implementations live in adapters; the render path only needs Lexeme.
type Lexicon interface {
	Lexeme(ctx context.Context, conceptID string, language string) (*Lexeme, error)
}

// Lexeme is a per-language dictionary surface for a concept, with the
// coarse features the renderers care about.
type Lexeme struct {
	ConceptID string `json:"conceptId" yaml:"concept_id"`
	Language  string `json:"language" yaml:"language"`
	Lemma     string `json:"lemma" yaml:"lemma"`
	// Gender is the lexeme's own grammatical gender, if the card's
	// tables key on it.
	Gender Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
	// Class is the noun class for class-prefix languages.
	Class       string `json:"class,omitempty" yaml:"class,omitempty"`
	Human       bool   `json:"human,omitempty" yaml:"human,omitempty"`
	Nationality bool   `json:"nationality,omitempty" yaml:"nationality,omitempty"`
}

// CombinedLexicon calls each lexicon in order. Lexeme takes the first
// answer that is not a not-found error. Putting a pass-through lexicon
// last makes a missing lemma degrade to the concept ID.
type CombinedLexicon []Lexicon

func (c CombinedLexicon) Lexeme(ctx context.Context, conceptID string, language string) (*Lexeme, error) {
	for _, lexicon := range c {
		res, err := lexicon.Lexeme(ctx, conceptID, language)
		if errors.Is(err, ErrLexemeNotFound) || errors.Is(err, ErrLexiconNotFound) {
			continue
		} else if err != nil {
			return nil, err
		}

		return res, nil
	}

	return nil, ErrLexemeNotFound
}
