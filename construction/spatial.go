package construction

import "github.com/morfo-lang/morfo"

// LocativeSlots feed "X is in/at Y".
type LocativeSlots struct {
	Subject    morfo.NP             `json:"subject" yaml:"subject"`
	Location   morfo.NP             `json:"location" yaml:"location"`
	Adposition string               `json:"adposition,omitempty" yaml:"adposition,omitempty"`
	Copula     morfo.CopulaFeatures `json:"copula,omitempty" yaml:"copula,omitempty"`
}

// Locative renders a location clause; the locative phrase is the
// adposition-wrapped location NP.
func Locative(slots LocativeSlots, p Profile, m morfo.Morphology) string {
	frags := map[Role]string{
		RoleSubject:  m.RealizeNP(slots.Subject),
		RoleLocation: m.RealizeAdposition(slots.Adposition, m.RealizeNP(slots.Location)),
		RoleCopula:   m.RealizeCopula(slots.Copula),
	}

	def := []Role{RoleSubject, RoleCopula, RoleLocation}

	return assemble("locative", frags, def, RoleLocation, slots.Copula, p, m)
}

// ExistentialSlots feed "there is an X (in Y)". Verb is the existential
// marker lemma ("be", "exist", "hay"); empty falls back to the copula.
type ExistentialSlots struct {
	Existent   morfo.NP             `json:"existent" yaml:"existent"`
	Location   morfo.NP             `json:"location,omitempty" yaml:"location,omitempty"`
	Adposition string               `json:"adposition,omitempty" yaml:"adposition,omitempty"`
	Verb       string               `json:"verb,omitempty" yaml:"verb,omitempty"`
	Copula     morfo.CopulaFeatures `json:"copula,omitempty" yaml:"copula,omitempty"`
}

// Existential renders an existence clause.
func Existential(slots ExistentialSlots, p Profile, m morfo.Morphology) string {
	verb := ""
	if slots.Verb != "" {
		verb = m.RealizeVerb(slots.Verb, morfo.Features{Tense: slots.Copula.Tense, Person: morfo.PersonThird})
	} else {
		verb = m.RealizeCopula(slots.Copula)
	}

	frags := map[Role]string{
		RoleExistent: m.RealizeNP(slots.Existent),
		RoleLocation: m.RealizeAdposition(slots.Adposition, m.RealizeNP(slots.Location)),
		RoleVerb:     verb,
	}

	def := []Role{RoleLocation, RoleVerb, RoleExistent}

	return linearize("existential", frags, def, p, m)
}
