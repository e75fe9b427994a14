package morphology

import (
	"testing"

	"github.com/morfo-lang/morfo"
	"github.com/stretchr/testify/assert"
)

func irishCard() *morfo.Card {
	return &morfo.Card{
		Language: "ga",
		Family:   morfo.FamilyCeltic,
		Morphology: morfo.MorphologyRules{
			Mutations: map[string]string{
				"b": "bh",
				"c": "ch",
				"p": "ph",
			},
		},
		Articles: morfo.Articles{
			Definite: map[string]morfo.ArticleForm{
				"default": {Default: "an"},
			},
		},
		Verbs: morfo.Verbs{
			Copula: morfo.FallbackNode{Leaf: "Is"},
		},
		Structure: "{copula} {profession} {name}",
	}
}

func TestCelticMutate(t *testing.T) {
	r := newCeltic(irishCard())

	assert.Equal(t, "bhean", r.Mutate("bean"))
	assert.Equal(t, "chathair", r.Mutate("cathair"))
	assert.Equal(t, "doras", r.Mutate("doras"))
	assert.Equal(t, "", r.Mutate(""))
}

func TestCelticMutationAfterFeminineArticle(t *testing.T) {
	r := newCeltic(irishCard())

	res := r.RealizeNP(morfo.NP{
		Lemma:    "bean",
		Article:  morfo.ArticleDefinite,
		Features: morfo.Features{Gender: morfo.GenderFemale},
	})
	assert.Equal(t, "an bhean", res)

	// Masculine heads do not mutate.
	res = r.RealizeNP(morfo.NP{
		Lemma:    "bord",
		Article:  morfo.ArticleDefinite,
		Features: morfo.Features{Gender: morfo.GenderMale},
	})
	assert.Equal(t, "an bord", res)

	// No article, no mutation.
	res = r.RealizeNP(morfo.NP{
		Lemma:    "bean",
		Features: morfo.Features{Gender: morfo.GenderFemale},
	})
	assert.Equal(t, "bean", res)
}

func TestCelticRenderBioCopulaFirst(t *testing.T) {
	r := newCeltic(irishCard())

	// Copula-initial order comes from the structure template.
	res := r.RenderBio(morfo.SemanticSlots{Name: "Aoife", Profession: "dochtúir"})
	assert.Equal(t, "Is dochtúir Aoife.", res)
}
