package morphology

import (
	"testing"

	"github.com/morfo-lang/morfo"
	"github.com/stretchr/testify/assert"
)

func arabicCard() *morfo.Card {
	return &morfo.Card{
		Language: "ar",
		Family:   morfo.FamilySemitic,
		Phonetics: morfo.Phonetics{
			CharClasses: map[string][]string{
				"sun_letters": {"t", "th", "d", "dh", "r", "z", "s", "sh", "n", "l"},
			},
		},
		Syntax: morfo.Syntax{
			CopulaType:       morfo.CopulaZero,
			AttachedArticles: true,
		},
		Articles: morfo.Articles{
			Definite: map[string]morfo.ArticleForm{
				"default": {Default: "al-"},
			},
		},
		Structure: "{name} {copula} {profession} {nationality}",
	}
}

func TestSemiticSunLetterAssimilation(t *testing.T) {
	r := newSemitic(arabicCard())

	table := []struct {
		Label    string
		Head     string
		Expected string
	}{
		{"Moon letter keeps the article", "qamar", "al-"},
		{"Sun letter n assimilates", "nur", "an-"},
		{"Sun letter s assimilates", "sana", "as-"},
		{"Sun letter r assimilates", "rajul", "ar-"},
		{"Digraph sh assimilates as a whole", "shams", "ash-"},
		{"Digraph dh assimilates as a whole", "dhahab", "adh-"},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, r.RealizeArticle(morfo.ArticleDefinite, morfo.GenderMale, row.Head))
		})
	}
}

func TestSemiticAttachedArticleNP(t *testing.T) {
	r := newSemitic(arabicCard())

	res := r.RealizeNP(morfo.NP{Lemma: "qamar", Article: morfo.ArticleDefinite})
	assert.Equal(t, "al-qamar", res)

	res = r.RealizeNP(morfo.NP{Lemma: "rajul", Article: morfo.ArticleDefinite})
	assert.Equal(t, "ar-rajul", res)
}

func TestSemiticFeminineDerivation(t *testing.T) {
	r := newSemitic(arabicCard())

	assert.Equal(t, "tabiba", r.Inflect("tabib", "female"))
	assert.Equal(t, "tabib", r.Inflect("tabib", "male"))
}

func TestSemiticRenderBioZeroCopula(t *testing.T) {
	r := newSemitic(arabicCard())

	res := r.RenderBio(morfo.SemanticSlots{
		Name:        "Layla",
		Gender:      morfo.GenderFemale,
		Profession:  "tabib",
		Nationality: "misri",
	})

	// Zero copula leaves no double space behind.
	assert.Equal(t, "Layla tabiba misria.", res)
	assert.NotContains(t, res, "  ")
}
