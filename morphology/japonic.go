package morphology

import "github.com/morfo-lang/morfo"

// japonic renders with invariant particles carried as template literals
// or suffix specs, a speech-level-sensitive standalone copula, no
// interword spacing, and the ideographic full stop.
type japonic struct {
	base
}

func newJaponic(card *morfo.Card) *japonic {
	r := &japonic{newBase(card, morfo.FamilyJaponic)}
	r.self = r

	return r
}

// Particle returns the named invariant particle (topic wa, subject ga).
func (r *japonic) Particle(particleType string) string {
	return r.card.Morphology.Suffixes[particleType].Invariant
}
