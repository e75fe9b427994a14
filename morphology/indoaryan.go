package morphology

import "github.com/morfo-lang/morfo"

// indoAryan uses the shared skeleton with postpositions, verb-final
// order from the structure template, and a gender-agreeing standalone
// copula resolved from the card's table.
type indoAryan struct {
	base
}

func newIndoAryan(card *morfo.Card) *indoAryan {
	r := &indoAryan{newBase(card, morfo.FamilyIndoAryan)}
	r.self = r

	return r
}
