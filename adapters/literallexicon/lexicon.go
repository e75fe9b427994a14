// Package literallexicon provides the lexicon of last resort: every
// concept ID resolves to itself. Chained after a real lexicon it
// guarantees rendering never fails on a missing translation.
package literallexicon

import (
	"context"
	"strings"

	"github.com/morfo-lang/morfo"
)

type literalLexicon struct{}

func (l *literalLexicon) Lexeme(_ context.Context, conceptID, language string) (*morfo.Lexeme, error) {
	if conceptID == "" {
		return nil, morfo.ErrLexemeNotFound
	}

	return &morfo.Lexeme{
		ConceptID: conceptID,
		Language:  strings.ToLower(language),
		Lemma:     conceptID,
	}, nil
}

func New() morfo.Lexicon {
	return &literalLexicon{}
}
