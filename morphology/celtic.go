package morphology

import (
	"strings"

	"github.com/morfo-lang/morfo"
)

// celtic applies initial-consonant mutation after the feminine definite
// article, using the card's mutation table (longest initial grapheme
// wins). Copula-first word order comes from the structure template, not
// from code.
type celtic struct {
	base
}

func newCeltic(card *morfo.Card) *celtic {
	r := &celtic{newBase(card, morfo.FamilyCeltic)}
	r.self = r

	return r
}

// Mutate lenites the word's initial grapheme per the card table.
func (r *celtic) Mutate(word string) string {
	best := ""
	for key := range r.card.Morphology.Mutations {
		if key != "" && strings.HasPrefix(word, key) && len(key) > len(best) {
			best = key
		}
	}

	if best == "" {
		return word
	}

	return r.card.Morphology.Mutations[best] + word[len(best):]
}

func (r *celtic) RealizeNP(np morfo.NP) string {
	if np.IsZero() {
		return ""
	}

	head := np.Lemma
	if !np.Name {
		head = r.RealizeNoun(np.Lemma, np.Features)
	}

	kind := np.Article
	if np.Name && kind.None() && r.card.Syntax.PersonalArticle != "" {
		kind = morfo.ArticlePersonal
	}
	art := r.RealizeArticle(kind, np.Features.Gender, head)

	// Mutation is triggered by the definite article on a feminine head.
	if kind == morfo.ArticleDefinite && np.Features.Gender == morfo.GenderFemale {
		head = r.Mutate(head)
	}

	adj := ""
	if np.Adjective != "" {
		adj = r.Inflect(np.Adjective, np.Features.Key())
	}

	return r.JoinTokens([]string{art, head, adj})
}
