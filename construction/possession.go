package construction

import "github.com/morfo-lang/morfo"

// PossessionSlots feed both possession patterns. Verb is the "have"
// lemma for the transitive pattern; Adposition marks the possessor in
// the existential pattern ("u menya est' kniga").
type PossessionSlots struct {
	Possessor  morfo.NP             `json:"possessor" yaml:"possessor"`
	Possessed  morfo.NP             `json:"possessed" yaml:"possessed"`
	Verb       string               `json:"verb,omitempty" yaml:"verb,omitempty"`
	Adposition string               `json:"adposition,omitempty" yaml:"adposition,omitempty"`
	Copula     morfo.CopulaFeatures `json:"copula,omitempty" yaml:"copula,omitempty"`
}

// PossessionHave renders transitive possession: possessor + "have" +
// possessed.
func PossessionHave(slots PossessionSlots, p Profile, m morfo.Morphology) string {
	f := morfo.Features{
		Tense:  slots.Copula.Tense,
		Person: morfo.PersonThird,
		Number: morfo.NumberSingular,
		Gender: slots.Possessor.Features.Gender,
	}

	frags := map[Role]string{
		RolePossessor: m.RealizeNP(slots.Possessor),
		RoleVerb:      m.RealizeVerb(slots.Verb, f),
		RolePossessed: m.RealizeNP(slots.Possessed),
	}

	def := []Role{RolePossessor, RoleVerb, RolePossessed}

	return linearize("possession_have", frags, def, p, m)
}

// PossessionExistential renders possession as existence at the
// possessor: an adposition-marked possessor phrase plus an existential
// copula over the possessed NP.
func PossessionExistential(slots PossessionSlots, p Profile, m morfo.Morphology) string {
	frags := map[Role]string{
		RolePossessor: m.RealizeAdposition(slots.Adposition, m.RealizeNP(slots.Possessor)),
		RoleCopula:    m.RealizeCopula(slots.Copula),
		RolePossessed: m.RealizeNP(slots.Possessed),
	}

	def := []Role{RolePossessor, RoleCopula, RolePossessed}

	return assemble("possession_existential", frags, def, RolePossessed, slots.Copula, p, m)
}
