package construction

import (
	"strings"

	"github.com/morfo-lang/morfo"
)

// AppositionSlots feed the apposition-NP pattern ("Curie, the
// physicist").
type AppositionSlots struct {
	Head       morfo.NP `json:"head" yaml:"head"`
	Appositive morfo.NP `json:"appositive" yaml:"appositive"`
}

// Apposition renders the head and appositive NPs in the profile's order
// with its comma style. A comma that would end up sentence-final is
// dropped before the terminal mark goes on.
func Apposition(slots AppositionSlots, p Profile, m morfo.Morphology) string {
	head := m.RealizeNP(slots.Head)
	appos := m.RealizeNP(slots.Appositive)

	if head == "" || appos == "" {
		return m.FinalizeSentence(m.JoinTokens([]string{head, appos}))
	}

	first, second := head, appos
	if !p.AppositionHeadFirst {
		first, second = appos, head
	}

	var s string
	switch p.AppositionCommas {
	case AppositionBoth:
		s = first + ", " + second + ","
	case AppositionAfterOnly:
		s = m.JoinTokens([]string{first, second}) + ","
	default:
		s = m.JoinTokens([]string{first, second})
	}

	s = strings.TrimRight(s, ", ")

	return m.FinalizeSentence(s)
}
