package literallexicon

import (
	"context"
	"testing"

	"github.com/morfo-lang/morfo"
	"github.com/stretchr/testify/assert"
)

func TestLiteralPassthrough(t *testing.T) {
	l := New()

	lexeme, err := l.Lexeme(context.Background(), "doctor", "IT")
	if assert.NoError(t, err) {
		assert.Equal(t, "doctor", lexeme.Lemma)
		assert.Equal(t, "doctor", lexeme.ConceptID)
		assert.Equal(t, "it", lexeme.Language)
	}

	_, err = l.Lexeme(context.Background(), "", "it")
	assert.ErrorIs(t, err, morfo.ErrLexemeNotFound)
}
