package morphology

import "github.com/morfo-lang/morfo"

// slavic carries case declension through per-case suffix rules and drops
// the present-tense copula when the card says so. The family fallback
// appends -a for feminine derivation from a consonant-final masculine.
type slavic struct {
	base
}

func newSlavic(card *morfo.Card) *slavic {
	r := &slavic{newBase(card, morfo.FamilySlavic)}
	r.self = r
	r.fallback = r.genderFallback

	return r
}

func (r *slavic) genderFallback(lemma, key string) (string, bool) {
	if key != string(morfo.GenderFemale) {
		return "", false
	}
	if !morfo.EndsInVowel(lemma, r.card.Phonetics.VowelSet(), "") {
		return lemma + "a", true
	}

	return "", false
}

// Decline inflects a lemma for a named case through the card's
// declension rules.
func (r *slavic) Decline(lemma, caseName string) string {
	return r.Inflect(lemma, caseName)
}
