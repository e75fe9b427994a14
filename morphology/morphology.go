// Package morphology implements the per-family surface realizers. Each
// family is a distinct algorithm over the same card schema; the set is
// closed and dispatched in New.
package morphology

import (
	"fmt"

	"github.com/morfo-lang/morfo"
)

// Resolver realizes surface forms for one language card. It carries the
// full construction capability plus the compact single-sentence
// biography path that bypasses the construction layer.
type Resolver interface {
	morfo.Morphology

	Family() morfo.Family
	// Inflect applies the family's inflection skeleton for a raw feature
	// key: irregular lookup, then longest-suffix rule, then the family
	// fallback, then identity.
	Inflect(lemma string, key string) string
	// RenderBio renders the one-sentence biography through the card's
	// structure template.
	RenderBio(slots morfo.SemanticSlots) string
}

// New builds the resolver for the card's family. The switch is
// exhaustive over morfo's Family constants; an unlisted family is a
// config error, not a fallback.
func New(card *morfo.Card) (Resolver, error) {
	switch card.Family {
	case morfo.FamilyAgglutinative:
		return newAgglutinative(card), nil
	case morfo.FamilyRomance:
		return newRomance(card), nil
	case morfo.FamilySlavic:
		return newSlavic(card), nil
	case morfo.FamilySemitic:
		return newSemitic(card), nil
	case morfo.FamilyBantu:
		return newBantu(card), nil
	case morfo.FamilyCeltic:
		return newCeltic(card), nil
	case morfo.FamilyDravidian:
		return newDravidian(card), nil
	case morfo.FamilyGermanic:
		return newGermanic(card), nil
	case morfo.FamilyIndoAryan:
		return newIndoAryan(card), nil
	case morfo.FamilyIranic:
		return newIranic(card), nil
	case morfo.FamilyIsolating:
		return newIsolating(card), nil
	case morfo.FamilyJaponic:
		return newJaponic(card), nil
	case morfo.FamilyKoreanic:
		return newKoreanic(card), nil
	case morfo.FamilyPolysynthetic:
		return newPolysynthetic(card), nil
	case morfo.FamilyAustronesian:
		return newAustronesian(card), nil
	default:
		return nil, fmt.Errorf("%w: %q", morfo.ErrUnknownFamily, card.Family)
	}
}
