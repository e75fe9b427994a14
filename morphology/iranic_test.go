package morphology

import (
	"testing"

	"github.com/morfo-lang/morfo"
	"github.com/stretchr/testify/assert"
)

func persianCard() *morfo.Card {
	return &morfo.Card{
		Language: "fa",
		Family:   morfo.FamilyIranic,
		Phonetics: morfo.Phonetics{
			Vowels:       "aeiou",
			SilentFinals: "h",
		},
		Morphology: morfo.MorphologyRules{
			Suffixes: map[string]morfo.SuffixSpec{
				"ezafe":      {Variants: map[string]string{"consonant": "-e", "vowel": "-ye"}},
				"indefinite": {Invariant: "-i"},
			},
		},
		Syntax: morfo.Syntax{
			Ezafe:      true,
			Indefinite: "suffix",
		},
		Verbs: morfo.Verbs{
			Copula: morfo.FallbackNode{Leaf: "ast"},
		},
		Structure: "{name} {profession} {nationality} {copula}",
	}
}

func TestIranicEzafe(t *testing.T) {
	r := newIranic(persianCard())

	table := []struct {
		Label    string
		Head     string
		Expected string
	}{
		{"Consonant final", "ketab", "-e"},
		{"Vowel final", "daneshju", "-ye"},
		{"Silent final he counts as vowel", "khaneh", "-ye"},
		{"Empty head", "", ""},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, r.Ezafe(row.Head))
		})
	}
}

func TestIranicEzafeDisabled(t *testing.T) {
	card := persianCard()
	card.Syntax.Ezafe = false
	r := newIranic(card)

	assert.Equal(t, "", r.Ezafe("ketab"))
}

func TestIranicNPWithModifier(t *testing.T) {
	r := newIranic(persianCard())

	res := r.RealizeNP(morfo.NP{Lemma: "ketab", Adjective: "bozorg"})
	assert.Equal(t, "ketab-e bozorg", res)

	// Indefinite marking goes on the whole phrase, not the bare head.
	res = r.RealizeNP(morfo.NP{Lemma: "ketab", Adjective: "bozorg", Article: morfo.ArticleIndefinite})
	assert.Equal(t, "ketab-e bozorg-i", res)
}

func TestIranicRenderBio(t *testing.T) {
	r := newIranic(persianCard())

	res := r.RenderBio(morfo.SemanticSlots{
		Name:        "Sara",
		Profession:  "pezeshk",
		Nationality: "irani",
	})

	assert.Equal(t, "Sara pezeshk-i irani ast.", res)
}
