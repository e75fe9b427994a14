package construction

import "github.com/morfo-lang/morfo"

// RelativeSlots feed the subject-gap relative clause pattern ("the
// author who wrote the book"). Pronoun is the relativizer surface form;
// Resumptive is filled only for languages that require one.
type RelativeSlots struct {
	Head       morfo.NP       `json:"head" yaml:"head"`
	Pronoun    string         `json:"pronoun" yaml:"pronoun"`
	Verb       string         `json:"verb" yaml:"verb"`
	Features   morfo.Features `json:"features,omitempty" yaml:"features,omitempty"`
	Object     morfo.NP       `json:"object,omitempty" yaml:"object,omitempty"`
	Resumptive string         `json:"resumptive,omitempty" yaml:"resumptive,omitempty"`
}

// RelativeClause renders the head NP modified by a subject-gap relative.
func RelativeClause(slots RelativeSlots, p Profile, m morfo.Morphology) string {
	f := slots.Features
	if f.Person == "" {
		f.Person = morfo.PersonThird
	}
	if f.Gender == "" {
		f.Gender = slots.Head.Features.Gender
	}

	frags := map[Role]string{
		RoleSubject:    m.RealizeNP(slots.Head),
		RolePronoun:    slots.Pronoun,
		RoleVerb:       m.RealizeVerb(slots.Verb, f),
		RoleObject:     m.RealizeNP(slots.Object),
		RoleResumptive: slots.Resumptive,
	}

	def := []Role{RoleSubject, RolePronoun, RoleVerb, RoleObject, RoleResumptive}

	return linearize("relative_clause", frags, def, p, m)
}
