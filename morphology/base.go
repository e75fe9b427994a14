package morphology

import (
	"sort"
	"strings"

	"github.com/morfo-lang/morfo"
)

// base carries the shared resolver skeleton: irregular lookup, longest
// suffix rule, family fallback, identity. Family structs embed it and
// hook in their own behavior through self, fallback and selector.
type base struct {
	card   *morfo.Card
	family morfo.Family
	tmpl   morfo.Template

	// self is the concrete resolver; shared flows call capability
	// methods through it so family overrides take effect.
	self Resolver
	// fallback is the family's minimal heuristic, consulted only after
	// irregulars and suffix rules both missed.
	fallback func(lemma, key string) (string, bool)
	// selector picks a suffix variant for a stem (harmony group, batchim,
	// final-character class). Nil means selectVariant.
	selector func(spec morfo.SuffixSpec, stem string) string
	// glide inserts the card's connector between a vowel-final stem and
	// a vowel-initial suffix.
	glide bool
}

func newBase(card *morfo.Card, family morfo.Family) base {
	return base{
		card:   card,
		family: family,
		tmpl:   morfo.ParseTemplate(card.Structure),
	}
}

func (b *base) Family() morfo.Family {
	return b.family
}

// Inflect is the common algorithm shape shared by every family, in
// priority order: irregular lookup, longest-ending suffix rule, family
// fallback, identity.
func (b *base) Inflect(lemma string, key string) string {
	if lemma == "" {
		return ""
	}

	if form, ok := b.card.Morphology.Irregular(key, lemma); ok {
		return form
	}

	if rules, ok := b.card.Morphology.SuffixRules[key]; ok {
		if form, changed := morfo.ApplySuffixRules(lemma, rules); changed {
			return form
		}
	}

	if b.fallback != nil {
		if form, ok := b.fallback(lemma, key); ok {
			return form
		}
	}

	return lemma
}

func (b *base) RealizeNoun(lemma string, f morfo.Features) string {
	return b.self.Inflect(lemma, f.Key())
}

func (b *base) RealizeArticle(kind morfo.ArticleKind, gender morfo.Gender, head string) string {
	if kind.None() || head == "" {
		return ""
	}
	if kind == morfo.ArticlePersonal {
		return b.card.Syntax.PersonalArticle
	}

	form, ok := b.card.Articles.Form(kind, gender.Key())
	if !ok {
		return ""
	}

	return b.articleVariant(form, head)
}

// articleVariant applies the phonetic triggers: impure clusters first,
// then stressed vowels, then plain vowel-initial heads.
func (b *base) articleVariant(form morfo.ArticleForm, head string) string {
	ph := &b.card.Phonetics
	if form.Impure != "" && morfo.MatchCharClass(head, ph.CharClasses["impure"]) {
		return form.Impure
	}
	if form.Stressed != "" && morfo.MatchCharClass(head, ph.CharClasses["stressed"]) {
		return form.Stressed
	}
	if form.VowelInitial != "" && morfo.IsVowel(morfo.FirstRune(head), ph.VowelSet()) {
		return form.VowelInitial
	}

	return form.Default
}

func (b *base) RealizeCopula(f morfo.CopulaFeatures) string {
	syn := &b.card.Syntax
	if f.Tense == "" {
		f.Tense = syn.Tense()
	}
	if f.Level == "" {
		f.Level = syn.SpeechLevel
	}

	if syn.ZeroCopulaFor(f.Tense) || syn.CopulaType == morfo.CopulaSuffix {
		return ""
	}

	return b.card.Verbs.Copula.Resolve(f.Keys()...)
}

// AttachCopula fuses a suffix copula onto its host word. For standalone
// copulas it degrades to joining; for zero copulas the host is returned
// untouched.
func (b *base) AttachCopula(host string, f morfo.CopulaFeatures) string {
	if host == "" {
		return ""
	}

	syn := &b.card.Syntax
	if f.Tense == "" {
		f.Tense = syn.Tense()
	}
	if syn.ZeroCopulaFor(f.Tense) {
		return host
	}
	if syn.CopulaType != morfo.CopulaSuffix {
		return b.self.JoinTokens([]string{host, b.self.RealizeCopula(f)})
	}

	spec, ok := b.card.Morphology.Suffixes["copula"]
	if !ok {
		return host
	}

	return b.attach(host, spec)
}

func (b *base) RealizeAdposition(adp string, phrase string) string {
	if phrase == "" || adp == "" {
		return phrase
	}

	switch b.card.Syntax.Adpositions {
	case "none":
		return phrase
	case "post":
		return b.self.JoinTokens([]string{phrase, adp})
	default:
		return b.self.JoinTokens([]string{adp, phrase})
	}
}

func (b *base) RealizeVerb(lemma string, f morfo.Features) string {
	if lemma == "" {
		return ""
	}

	tense := f.Tense
	if tense == "" {
		tense = b.card.Syntax.Tense()
	}

	if node, ok := b.card.Verbs.Forms[lemma]; ok {
		keys := []string{string(tense), string(f.Person), string(f.Number), f.Gender.Key()}
		if form := node.Resolve(keys...); form != "" {
			return form
		}
	}

	if rules, ok := b.card.Morphology.SuffixRules["verb_"+string(tense)]; ok {
		if form, changed := morfo.ApplySuffixRules(lemma, rules); changed {
			return form
		}
	}

	return lemma
}

func (b *base) RealizeNP(np morfo.NP) string {
	if np.IsZero() {
		return ""
	}

	head := np.Lemma
	if !np.Name {
		head = b.self.RealizeNoun(np.Lemma, np.Features)
	}

	adj := ""
	if np.Adjective != "" {
		adj = b.self.Inflect(np.Adjective, np.Features.Key())
	}

	kind := np.Article
	if np.Name && kind.None() && b.card.Syntax.PersonalArticle != "" {
		kind = morfo.ArticlePersonal
	}
	art := b.self.RealizeArticle(kind, np.Features.Gender, head)

	if kind == morfo.ArticleIndefinite && art == "" {
		switch b.card.Syntax.Indefinite {
		case "suffix":
			head = b.attach(head, b.card.Morphology.Suffixes["indefinite"])
		case "particle":
			art = b.card.Morphology.Suffixes["indefinite"].Invariant
		}
	}

	// Elided articles (un', l') and attached articles (al-) fuse onto
	// the head instead of standing free.
	if art != "" && (b.card.Syntax.AttachedArticles || strings.HasSuffix(art, "'")) {
		head = art + head
		art = ""
	}

	var tokens []string
	if b.card.Syntax.AdjectiveOrder == "post" {
		tokens = []string{art, head, adj}
	} else {
		tokens = []string{art, adj, head}
	}

	return b.self.JoinTokens(tokens)
}

func (b *base) JoinTokens(tokens []string) string {
	sep := " "
	if b.card.Syntax.NoSpaces {
		sep = ""
	}

	sb := strings.Builder{}
	sb.Grow(32)
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(token)
	}

	return sb.String()
}

func (b *base) FinalizeSentence(s string) string {
	return morfo.FinalizeSentence(s, b.card.Syntax.TerminalMark(), b.card.Syntax.NoSpaces)
}

// RenderBio is the compact single-sentence path: realize the three
// fragments, substitute them into the card's structure template, and
// normalize. Suffix copulas attach to the placeholder before {copula},
// whether or not the template spaces the two apart.
func (b *base) RenderBio(slots morfo.SemanticSlots) string {
	syn := &b.card.Syntax
	f := morfo.CopulaFeatures{
		Tense:  syn.Tense(),
		Person: morfo.PersonThird,
		Number: morfo.NumberSingular,
		Gender: slots.Gender,
		Level:  syn.SpeechLevel,
	}

	values := map[string]string{
		"name":        b.bioName(slots.Name),
		"profession":  b.bioProfession(slots),
		"nationality": b.self.Inflect(slots.Nationality, slots.Gender.Key()),
	}

	if syn.CopulaType == morfo.CopulaSuffix {
		if host, ok := b.tmpl.Preceding("copula"); ok && values[host] != "" {
			if attacher, ok := b.self.(morfo.CopulaAttacher); ok {
				values[host] = attacher.AttachCopula(values[host], f)
			}
		}
	} else {
		values["copula"] = b.self.RealizeCopula(f)
	}

	return b.self.FinalizeSentence(b.tmpl.Render(values))
}

func (b *base) bioName(name string) string {
	if name == "" {
		return ""
	}
	if b.card.Syntax.PersonalArticle != "" {
		return b.self.JoinTokens([]string{b.card.Syntax.PersonalArticle, name})
	}

	return name
}

func (b *base) bioProfession(slots morfo.SemanticSlots) string {
	prof := b.self.RealizeNoun(slots.Profession, morfo.Features{Gender: slots.Gender})
	if prof == "" {
		return ""
	}

	switch b.card.Syntax.Indefinite {
	case "article":
		art := b.self.RealizeArticle(morfo.ArticleIndefinite, slots.Gender, prof)
		if strings.HasSuffix(art, "'") {
			return art + prof
		}
		return b.self.JoinTokens([]string{art, prof})
	case "suffix":
		return b.attach(prof, b.card.Morphology.Suffixes["indefinite"])
	case "particle":
		return b.self.JoinTokens([]string{b.card.Morphology.Suffixes["indefinite"].Invariant, prof})
	default:
		return prof
	}
}

// attach fuses a suffix spec onto a stem: select the variant, apply the
// deletion set to the stem, insert the euphonic connector when the
// family uses one.
func (b *base) attach(stem string, spec morfo.SuffixSpec) string {
	if stem == "" {
		return ""
	}

	suffix := b.variant(spec, stem)
	if suffix == "" {
		return stem
	}

	fused := morfo.StripDeletion(stem, b.card.Morphology.Deletions)

	ph := &b.card.Phonetics
	if b.glide && ph.Connector != "" &&
		morfo.EndsInVowel(fused, ph.VowelSet(), ph.SilentFinals) &&
		morfo.IsVowel(morfo.FirstRune(suffix), ph.VowelSet()) {
		return fused + ph.Connector + suffix
	}

	return fused + suffix
}

func (b *base) variant(spec morfo.SuffixSpec, stem string) string {
	if b.selector != nil {
		return b.selector(spec, stem)
	}

	return b.selectVariant(spec, stem)
}

// selectVariant is the default variant choice: direct final-character
// match, then final-character class membership (stable order), then the
// vowel/consonant split.
func (b *base) selectVariant(spec morfo.SuffixSpec, stem string) string {
	if len(spec.Variants) == 0 {
		return spec.Invariant
	}

	last := morfo.LastRune(stem)
	if last == 0 {
		return spec.Invariant
	}

	if v, ok := spec.Variants[string(last)]; ok {
		return v
	}

	keys := make([]string, 0, len(spec.Variants))
	for key := range spec.Variants {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		class, ok := b.card.Phonetics.CharClasses[key]
		if ok && morfo.MatchCharClass(string(last), class) {
			return spec.Variants[key]
		}
	}

	ph := &b.card.Phonetics
	if morfo.EndsInVowel(stem, ph.VowelSet(), ph.SilentFinals) {
		return spec.Variant("vowel")
	}

	return spec.Variant("consonant")
}

// suffixFallback is the family fallback used by agglutinating families:
// a feature key without irregulars or rules resolves to the suffix spec
// registered under the same key.
func (b *base) suffixFallback(lemma, key string) (string, bool) {
	spec, ok := b.card.Morphology.Suffixes[key]
	if !ok {
		return "", false
	}

	return b.attach(lemma, spec), true
}
