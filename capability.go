package morfo

// Morphology is the narrow capability constructions depend on. Every
// family resolver implements it; constructions never see the resolver's
// concrete type or the card behind it.
//
// All methods are total: missing configuration degrades through the
// card's fallback chain, and an empty lemma yields an empty fragment.
type Morphology interface {
	// RealizeNoun inflects a bare lemma for the feature bundle.
	RealizeNoun(lemma string, f Features) string
	// RealizeNP realizes a full noun phrase: article, inflected head,
	// agreeing adjective, in the language's internal order.
	RealizeNP(np NP) string
	// RealizeArticle returns the article form for the head word, or ""
	// when the language does not article that kind.
	RealizeArticle(kind ArticleKind, gender Gender, head string) string
	// RealizeCopula returns the copula surface form; "" means zero
	// copula (or a suffix copula handled via CopulaAttacher).
	RealizeCopula(f CopulaFeatures) string
	// RealizeAdposition wraps phrase with the adposition in the
	// language's order (preposition or postposition).
	RealizeAdposition(adp string, phrase string) string
	// RealizeVerb returns the finite form of a verb lemma.
	RealizeVerb(lemma string, f Features) string
	// JoinTokens linearizes surface fragments, skipping empty ones.
	JoinTokens(tokens []string) string
	// FinalizeSentence normalizes whitespace and terminal punctuation.
	FinalizeSentence(s string) string
}

// CopulaAttacher is the optional capability for suffix-copula languages:
// the copula fuses onto its host word instead of standing alone.
// Constructions probe for it with a type assertion.
type CopulaAttacher interface {
	AttachCopula(host string, f CopulaFeatures) string
}
