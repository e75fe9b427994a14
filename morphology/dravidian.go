package morphology

import "github.com/morfo-lang/morfo"

// dravidian agglutinates without vowel harmony: case and copula suffixes
// attach directly, with the card's euphonic glide (y/v) inserted between
// a vowel-final stem and a vowel-initial suffix.
type dravidian struct {
	base
}

func newDravidian(card *morfo.Card) *dravidian {
	r := &dravidian{newBase(card, morfo.FamilyDravidian)}
	r.self = r
	r.fallback = r.suffixFallback
	r.glide = true

	return r
}
