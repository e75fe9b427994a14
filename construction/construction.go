// Package construction implements the reusable clause templates. Each
// construction is a pure function over role-tagged slots, a language
// profile and the narrow morphology capability; none of them knows which
// family sits behind the interface.
package construction

import (
	"strings"

	"github.com/morfo-lang/morfo"
)

// Role tags a surface fragment's slot in the linearization order.
type Role string

const (
	RoleSubject    Role = "subject"
	RoleCopula     Role = "copula"
	RolePredicate  Role = "predicate"
	RoleLocation   Role = "location"
	RoleExistent   Role = "existent"
	RolePossessor  Role = "possessor"
	RolePossessed  Role = "possessed"
	RoleVerb       Role = "verb"
	RoleObject     Role = "object"
	RolePronoun    Role = "pronoun"
	RoleResumptive Role = "resumptive"
)

type AppositionStyle string

const (
	AppositionBoth      AppositionStyle = "both"
	AppositionAfterOnly AppositionStyle = "after_appos_only"
	AppositionNone      AppositionStyle = "none"
)

// Profile is the construction-level view of a language card: ordering,
// copula behavior and punctuation, nothing morphological.
type Profile struct {
	Language         string            `json:"language" yaml:"language"`
	Order            []Role            `json:"order,omitempty" yaml:"order,omitempty"`
	Orders           map[string][]Role `json:"orders,omitempty" yaml:"orders,omitempty"`
	CopulaType       morfo.CopulaType  `json:"copulaType,omitempty" yaml:"copula_type,omitempty"`
	ZeroCopulaTenses []morfo.Tense     `json:"zeroCopulaTenses,omitempty" yaml:"zero_copula_tenses,omitempty"`
	DefaultTense     morfo.Tense       `json:"defaultTense,omitempty" yaml:"default_tense,omitempty"`
	Conjunction      string            `json:"conjunction,omitempty" yaml:"conjunction,omitempty"`
	SerialComma      bool              `json:"serialComma,omitempty" yaml:"serial_comma,omitempty"`
	Punctuation      string            `json:"punctuation,omitempty" yaml:"punctuation,omitempty"`
	NoSpaces         bool              `json:"noSpaces,omitempty" yaml:"no_spaces,omitempty"`
	AppositionCommas AppositionStyle   `json:"appositionCommas,omitempty" yaml:"apposition_commas,omitempty"`
	// AppositionHeadFirst puts the head before the appositive NP.
	AppositionHeadFirst bool `json:"appositionHeadFirst,omitempty" yaml:"apposition_head_first,omitempty"`
}

// ProfileFromCard derives the profile view from a language card.
func ProfileFromCard(card *morfo.Card) Profile {
	syn := &card.Syntax

	orders := make(map[string][]Role, len(syn.ConstructionOrders))
	for name, symbols := range syn.ConstructionOrders {
		orders[name] = parseRoles(symbols)
	}

	style := AppositionStyle(syn.AppositionCommas)
	if style == "" {
		style = AppositionBoth
	}

	return Profile{
		Language:            card.Language,
		Order:               parseRoles(syn.WordOrder),
		Orders:              orders,
		CopulaType:          syn.CopulaType,
		ZeroCopulaTenses:    syn.ZeroCopulaTenses,
		DefaultTense:        syn.Tense(),
		Conjunction:         syn.Conjunction,
		SerialComma:         syn.SerialComma,
		Punctuation:         syn.TerminalMark(),
		NoSpaces:            syn.NoSpaces,
		AppositionCommas:    style,
		AppositionHeadFirst: true,
	}
}

func parseRoles(symbols []string) []Role {
	roles := make([]Role, 0, len(symbols))
	for _, symbol := range symbols {
		roles = append(roles, Role(strings.ToLower(symbol)))
	}

	return roles
}

// order returns the linearization for a construction: the per-name
// override wins, otherwise the construction's own default.
func (p *Profile) order(construction string, def []Role) []Role {
	if roles, ok := p.Orders[construction]; ok && len(roles) > 0 {
		return roles
	}

	return def
}

// clauseOrder is the default for the copular clause constructions: the
// profile's word order when the card sets one, subject-copula-predicate
// otherwise.
func (p *Profile) clauseOrder() []Role {
	if len(p.Order) > 0 {
		return p.Order
	}

	return []Role{RoleSubject, RoleCopula, RolePredicate}
}

func (p *Profile) tense(f morfo.CopulaFeatures) morfo.Tense {
	if f.Tense != "" {
		return f.Tense
	}
	if p.DefaultTense != "" {
		return p.DefaultTense
	}

	return morfo.TensePresent
}

// zeroCopula reports whether the profile drops the copula in this tense.
func (p *Profile) zeroCopula(tense morfo.Tense) bool {
	if p.CopulaType == morfo.CopulaZero {
		return true
	}
	for _, t := range p.ZeroCopulaTenses {
		if t == tense {
			return true
		}
	}

	return false
}

func (p *Profile) terminal() string {
	if p.Punctuation != "" {
		return p.Punctuation
	}

	return "."
}

// assemble is the shared back half of every clause construction: decide
// the copula's fate, linearize the fragments skipping empty ones, join
// and finalize.
//
// host names the fragment a suffix copula fuses onto.
func assemble(name string, frags map[Role]string, def []Role, host Role, cop morfo.CopulaFeatures, p Profile, m morfo.Morphology) string {
	tense := p.tense(cop)

	if p.zeroCopula(tense) {
		frags[RoleCopula] = ""
	} else if p.CopulaType == morfo.CopulaSuffix {
		if attacher, ok := m.(morfo.CopulaAttacher); ok && frags[host] != "" {
			frags[host] = attacher.AttachCopula(frags[host], cop)
		}
		frags[RoleCopula] = ""
	}

	return linearize(name, frags, def, p, m)
}

// linearize orders the fragments and finalizes, with no copula
// handling; constructions whose verb is already realized use it
// directly.
func linearize(name string, frags map[Role]string, def []Role, p Profile, m morfo.Morphology) string {
	order := p.order(name, def)
	tokens := make([]string, 0, len(order))
	for _, role := range order {
		tokens = append(tokens, frags[role])
	}

	return m.FinalizeSentence(m.JoinTokens(tokens))
}
