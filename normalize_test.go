package morfo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWhitespace(t *testing.T) {
	table := []struct {
		Label    string
		Input    string
		NoSpaces bool
		Expected string
	}{
		{"Collapses double space from elided fragment", "Анна  врач", false, "Анна врач"},
		{"Trims edges", "  Maria è attrice ", false, "Maria è attrice"},
		{"Space before comma dropped", "Curie , la fisica", false, "Curie, la fisica"},
		{"Space before full stop dropped", "Maria è attrice .", false, "Maria è attrice."},
		{"No-space scripts lose all spacing", "田中 は 医者", true, "田中は医者"},
		{"Already clean input unchanged", "Maria è attrice", false, "Maria è attrice"},
		{"Empty input", "   ", false, ""},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			res := NormalizeWhitespace(row.Input, row.NoSpaces)
			assert.Equal(t, row.Expected, res)

			// Normalization is idempotent.
			assert.Equal(t, res, NormalizeWhitespace(res, row.NoSpaces))
		})
	}
}

func TestEnsureTerminal(t *testing.T) {
	table := []struct {
		Label    string
		Input    string
		Mark     string
		Expected string
	}{
		{"Appends the mark", "Maria è attrice", ".", "Maria è attrice."},
		{"Never doubles the mark", "Maria è attrice.", ".", "Maria è attrice."},
		{"Replaces a different terminal", "Maria è attrice.", "。", "Maria è attrice。"},
		{"Strips stacked terminals", "Maria è attrice..!", ".", "Maria è attrice."},
		{"Strips terminal after trailing space", "Maria è attrice . ", ".", "Maria è attrice."},
		{"Empty input stays empty", "", ".", ""},
		{"Only punctuation collapses to empty", "...", ".", ""},
		{"Ideographic stop", "田中は医者です", "。", "田中は医者です。"},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			res := EnsureTerminal(row.Input, row.Mark)
			assert.Equal(t, row.Expected, res)

			// Exactly one terminal mark, and applying again changes nothing.
			assert.Equal(t, res, EnsureTerminal(res, row.Mark))
			if res != "" {
				assert.True(t, strings.HasSuffix(res, row.Mark))
				assert.False(t, strings.HasSuffix(strings.TrimSuffix(res, row.Mark), row.Mark))
			}
		})
	}
}

func TestStripTerminal(t *testing.T) {
	assert.Equal(t, "Maria è attrice", StripTerminal("Maria è attrice."))
	assert.Equal(t, "Maria è attrice", StripTerminal("Maria è attrice"))
	assert.Equal(t, "田中は医者です", StripTerminal("田中は医者です。"))
	assert.Equal(t, "", StripTerminal("."))
}

func TestFinalizeSentence(t *testing.T) {
	assert.Equal(t, "Анна врач.", FinalizeSentence("Анна  врач ", ".", false))
	assert.Equal(t, "田中は医者です。", FinalizeSentence("田中は医者です", "。", true))
	assert.Equal(t, "", FinalizeSentence("   ", ".", false))
}
