package morphology

import "github.com/morfo-lang/morfo"

// isolating languages inflect nothing: lemmas pass through untouched and
// all grammar lives in word order, particles and the standalone copula.
// Cards may set no_spaces and an ideographic full stop.
type isolating struct {
	base
}

func newIsolating(card *morfo.Card) *isolating {
	r := &isolating{newBase(card, morfo.FamilyIsolating)}
	r.self = r

	return r
}
