package morphology

import "github.com/morfo-lang/morfo"

// agglutinative is the vowel-harmony resolver: every attachable suffix
// (case endings, the copula, the question particle) has one variant per
// harmony group, selected by the stem's trigger vowel.
type agglutinative struct {
	base
}

func newAgglutinative(card *morfo.Card) *agglutinative {
	r := &agglutinative{newBase(card, morfo.FamilyAgglutinative)}
	r.self = r
	r.selector = r.harmonyVariant
	r.fallback = r.suffixFallback

	return r
}

// harmonyVariant finds the stem's trigger vowel (last vowel scanning
// from the end, with the card's default when none is found), maps it to
// a harmony group, and picks the suffix variant registered for that
// group.
func (r *agglutinative) harmonyVariant(spec morfo.SuffixSpec, stem string) string {
	ph := &r.card.Phonetics
	vowel := morfo.TriggerVowel(stem, ph.VowelSet(), ph.DefaultVowel)
	group := morfo.HarmonyGroup(vowel, ph.HarmonyGroups)

	return spec.Variant(group)
}

// Suffix attaches the named suffix type to a stem with harmony applied.
func (r *agglutinative) Suffix(stem, suffixType string) string {
	spec, ok := r.card.Morphology.Suffixes[suffixType]
	if !ok {
		return stem
	}

	return r.attach(stem, spec)
}
