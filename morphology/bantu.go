package morphology

import "github.com/morfo-lang/morfo"

// bantu is the noun-class resolver: nouns and agreeing adjectives take a
// class prefix (the two concords may differ), with a vowel-triggered
// allomorph before vowel-initial stems, and the copula is chosen
// per-class with the card's copula table as the global fallback.
type bantu struct {
	base
}

func newBantu(card *morfo.Card) *bantu {
	r := &bantu{newBase(card, morfo.FamilyBantu)}
	r.self = r
	r.fallback = r.classFallback

	return r
}

func (r *bantu) classFallback(lemma, key string) (string, bool) {
	class, ok := r.card.Morphology.NounClasses[key]
	if !ok {
		return "", false
	}

	return r.prefixed(class.Prefix, class.VowelPrefix, lemma), true
}

func (r *bantu) prefixed(prefix, vowelPrefix, stem string) string {
	if vowelPrefix != "" && morfo.IsVowel(morfo.FirstRune(stem), r.card.Phonetics.VowelSet()) {
		return vowelPrefix + stem
	}

	return prefix + stem
}

func (r *bantu) RealizeNoun(lemma string, f morfo.Features) string {
	if f.Class == "" {
		f.Class = r.card.Morphology.DefaultClass
	}

	return r.Inflect(lemma, f.Key())
}

func (r *bantu) RealizeNP(np morfo.NP) string {
	if np.IsZero() {
		return ""
	}
	if np.Features.Class == "" {
		np.Features.Class = r.card.Morphology.DefaultClass
	}

	head := np.Lemma
	if !np.Name {
		head = r.RealizeNoun(np.Lemma, np.Features)
	}

	adj := ""
	if np.Adjective != "" {
		adj = r.adjConcord(np.Adjective, np.Features.Class)
	}

	return r.JoinTokens([]string{head, adj})
}

// adjConcord applies the adjective concord prefix, which may differ from
// the noun prefix, with the same vowel allomorphy.
func (r *bantu) adjConcord(lemma, classKey string) string {
	if form, ok := r.card.Morphology.Irregular(classKey, lemma); ok {
		return form
	}

	class, ok := r.card.Morphology.NounClasses[classKey]
	if !ok {
		return lemma
	}

	prefix := class.AdjPrefix
	if prefix == "" {
		prefix = class.Prefix
	}

	return r.prefixed(prefix, class.VowelPrefix, lemma)
}

func (r *bantu) RealizeCopula(f morfo.CopulaFeatures) string {
	syn := &r.card.Syntax
	if f.Tense == "" {
		f.Tense = syn.Tense()
	}
	if syn.ZeroCopulaFor(f.Tense) {
		return ""
	}

	if class, ok := r.card.Morphology.NounClasses[r.card.Morphology.DefaultClass]; ok && class.Copula != "" {
		return class.Copula
	}

	return r.card.Verbs.Copula.Resolve(f.Keys()...)
}

// ClassCopula is the per-class copula with the global default fallback.
func (r *bantu) ClassCopula(classKey string, f morfo.CopulaFeatures) string {
	if class, ok := r.card.Morphology.NounClasses[classKey]; ok && class.Copula != "" {
		return class.Copula
	}

	return r.card.Verbs.Copula.Resolve(f.Keys()...)
}
