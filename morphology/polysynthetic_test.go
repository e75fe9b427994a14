package morphology

import (
	"testing"

	"github.com/morfo-lang/morfo"
	"github.com/stretchr/testify/assert"
)

func polysyntheticCard() *morfo.Card {
	return &morfo.Card{
		Language: "kl",
		Family:   morfo.FamilyPolysynthetic,
		Morphology: morfo.MorphologyRules{
			Deletions: "rq",
			Verbalizers: map[string]morfo.SuffixSpec{
				"be": {Invariant: "uvo"},
			},
			PersonMarks: map[string]morfo.SuffixSpec{
				"3singular": {Invariant: "q"},
				"1singular": {Invariant: "nga"},
			},
		},
		Structure: "{name} {profession}",
	}
}

func TestPolysyntheticVerbalize(t *testing.T) {
	r := newPolysynthetic(polysyntheticCard())

	table := []struct {
		Label    string
		Root     string
		Person   morfo.Person
		Number   morfo.Number
		Expected string
	}{
		// The deletion set drops the root-final consonant before fusion.
		{"Third person with deletion", "nakor", morfo.PersonThird, morfo.NumberSingular, "nakouvoq"},
		{"First person", "nakor", morfo.PersonFirst, morfo.NumberSingular, "nakouvonga"},
		{"Root without deletable final", "illu", morfo.PersonThird, morfo.NumberSingular, "illuuvoq"},
		{"Empty root", "", morfo.PersonThird, morfo.NumberSingular, ""},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, r.Verbalize(row.Root, "be", row.Person, row.Number))
		})
	}
}

func TestPolysyntheticUnknownVerbalizerAndMark(t *testing.T) {
	r := newPolysynthetic(polysyntheticCard())

	// Missing verbalizer and person mark degrade to the untouched root:
	// deletion only fires when something actually fuses on.
	assert.Equal(t, "nakor", r.Verbalize("nakor", "become", morfo.PersonSecond, morfo.NumberPlural))
}

func TestPolysyntheticRenderBio(t *testing.T) {
	r := newPolysynthetic(polysyntheticCard())

	// The predication is one verbalized word; the template carries no
	// copula placeholder.
	res := r.RenderBio(morfo.SemanticSlots{Name: "Aputsiaq", Profession: "nakor"})
	assert.Equal(t, "Aputsiaq nakouvoq.", res)
}
