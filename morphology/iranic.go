package morphology

import "github.com/morfo-lang/morfo"

// iranic adds the Ezafe link between a head noun and its modifier, with
// a vowel- or consonant-triggered form (a configured silent final counts
// as a vowel), plus suffix- or particle-style indefinite marking applied
// to the whole phrase.
type iranic struct {
	base
}

func newIranic(card *morfo.Card) *iranic {
	r := &iranic{newBase(card, morfo.FamilyIranic)}
	r.self = r

	return r
}

// Ezafe returns the link attached after head, or "" when the card does
// not use one.
func (r *iranic) Ezafe(head string) string {
	if !r.card.Syntax.Ezafe || head == "" {
		return ""
	}

	ph := &r.card.Phonetics
	spec, ok := r.card.Morphology.Suffixes["ezafe"]
	if !ok {
		return ph.Connector
	}

	if morfo.EndsInVowel(head, ph.VowelSet(), ph.SilentFinals) {
		return spec.Variant("vowel")
	}

	return spec.Variant("consonant")
}

func (r *iranic) RealizeNP(np morfo.NP) string {
	if np.IsZero() {
		return ""
	}

	head := np.Lemma
	if !np.Name {
		head = r.RealizeNoun(np.Lemma, np.Features)
	}

	phrase := head
	if np.Adjective != "" {
		adj := r.Inflect(np.Adjective, np.Features.Key())
		phrase = r.JoinTokens([]string{head + r.Ezafe(head), adj})
	}

	if np.Article == morfo.ArticleIndefinite {
		phrase = r.indefinite(phrase)
	}

	return phrase
}

// indefinite marks the resulting phrase, not the bare head.
func (r *iranic) indefinite(phrase string) string {
	spec := r.card.Morphology.Suffixes["indefinite"]
	switch r.card.Syntax.Indefinite {
	case "suffix":
		return r.attach(phrase, spec)
	case "particle":
		return r.JoinTokens([]string{spec.Invariant, phrase})
	default:
		return phrase
	}
}
