package morphology

import "github.com/morfo-lang/morfo"

// austronesian relies on the personal article before proper names and a
// predicate-initial or inverted order supplied by the structure
// template; lemmas themselves stay uninflected.
type austronesian struct {
	base
}

func newAustronesian(card *morfo.Card) *austronesian {
	r := &austronesian{newBase(card, morfo.FamilyAustronesian)}
	r.self = r

	return r
}
