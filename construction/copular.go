package construction

import "github.com/morfo-lang/morfo"

// AttributiveSlots feed the copula-attributive-adjective pattern
// ("the house is big").
type AttributiveSlots struct {
	Subject   morfo.NP             `json:"subject" yaml:"subject"`
	Adjective string               `json:"adjective" yaml:"adjective"`
	Copula    morfo.CopulaFeatures `json:"copula,omitempty" yaml:"copula,omitempty"`
}

// AttributiveAdjective renders a predicative adjective clause. The
// adjective agrees with the subject's feature bundle.
func AttributiveAdjective(slots AttributiveSlots, p Profile, m morfo.Morphology) string {
	frags := map[Role]string{
		RoleSubject:   m.RealizeNP(slots.Subject),
		RolePredicate: m.RealizeNoun(slots.Adjective, slots.Subject.Features),
		RoleCopula:    m.RealizeCopula(slots.Copula),
	}

	def := p.clauseOrder()

	return assemble("attributive_adjective", frags, def, RolePredicate, slots.Copula, p, m)
}

// PredicateNPSlots feed the copula-attributive-NP and the equative
// classification patterns ("X is a doctor", "X is the captain").
type PredicateNPSlots struct {
	Subject   morfo.NP             `json:"subject" yaml:"subject"`
	Predicate morfo.NP             `json:"predicate" yaml:"predicate"`
	Copula    morfo.CopulaFeatures `json:"copula,omitempty" yaml:"copula,omitempty"`
}

// AttributiveNP renders a predicate-NP clause with the predicate's own
// article handling (typically indefinite).
func AttributiveNP(slots PredicateNPSlots, p Profile, m morfo.Morphology) string {
	frags := map[Role]string{
		RoleSubject:   m.RealizeNP(slots.Subject),
		RolePredicate: m.RealizeNP(slots.Predicate),
		RoleCopula:    m.RealizeCopula(slots.Copula),
	}

	def := p.clauseOrder()

	return assemble("attributive_np", frags, def, RolePredicate, slots.Copula, p, m)
}

// Equative renders an identity/classification clause; it differs from
// AttributiveNP only in forcing a definite predicate when the slots left
// the article open.
func Equative(slots PredicateNPSlots, p Profile, m morfo.Morphology) string {
	if slots.Predicate.Article.None() && !slots.Predicate.Name {
		slots.Predicate.Article = morfo.ArticleDefinite
	}

	frags := map[Role]string{
		RoleSubject:   m.RealizeNP(slots.Subject),
		RolePredicate: m.RealizeNP(slots.Predicate),
		RoleCopula:    m.RealizeCopula(slots.Copula),
	}

	def := p.clauseOrder()

	return assemble("equative", frags, def, RolePredicate, slots.Copula, p, m)
}
