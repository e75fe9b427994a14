package morphology

import "github.com/morfo-lang/morfo"

// koreanic selects particle and copula variants by batchim: whether the
// preceding word ends in a closed Hangul syllable. Variant maps use the
// "consonant" and "vowel" keys; an invariant spec (plain string) passes
// through unchanged.
type koreanic struct {
	base
}

func newKoreanic(card *morfo.Card) *koreanic {
	r := &koreanic{newBase(card, morfo.FamilyKoreanic)}
	r.self = r
	r.selector = r.batchimVariant
	r.fallback = r.suffixFallback

	return r
}

func (r *koreanic) batchimVariant(spec morfo.SuffixSpec, stem string) string {
	if morfo.HasBatchim(stem) {
		return spec.Variant("consonant")
	}

	return spec.Variant("vowel")
}

// Particle returns the named particle (topic, subject, object) matched
// to the word's final syllable.
func (r *koreanic) Particle(word, particleType string) string {
	spec, ok := r.card.Morphology.Suffixes[particleType]
	if !ok {
		return ""
	}

	return r.batchimVariant(spec, word)
}
