package morphology

import "github.com/morfo-lang/morfo"

// germanic is close to the bare skeleton: gendered agent nouns come from
// irregulars and suffix rules, with -in as the feminine fallback, and
// the copula is a standalone table lookup.
type germanic struct {
	base
}

func newGermanic(card *morfo.Card) *germanic {
	r := &germanic{newBase(card, morfo.FamilyGermanic)}
	r.self = r
	r.fallback = r.genderFallback

	return r
}

func (r *germanic) genderFallback(lemma, key string) (string, bool) {
	if key != string(morfo.GenderFemale) {
		return "", false
	}

	return lemma + "in", true
}
