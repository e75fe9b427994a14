package morphology

import (
	"strings"

	"github.com/morfo-lang/morfo"
)

// semitic assimilates the definite article to "sun letter" initials: the
// article's final consonant copies the head's initial sun letter, which
// in transliteration may be a digraph ("sh", "th"). The sun letter set
// and the article forms are card data; the present-tense copula is
// typically zero.
type semitic struct {
	base
}

func newSemitic(card *morfo.Card) *semitic {
	r := &semitic{newBase(card, morfo.FamilySemitic)}
	r.self = r
	r.fallback = r.genderFallback

	return r
}

func (r *semitic) genderFallback(lemma, key string) (string, bool) {
	if key != string(morfo.GenderFemale) {
		return "", false
	}

	return lemma + "a", true
}

func (r *semitic) RealizeArticle(kind morfo.ArticleKind, gender morfo.Gender, head string) string {
	art := r.base.RealizeArticle(kind, gender, head)
	if art == "" || kind != morfo.ArticleDefinite {
		return art
	}
	letter, ok := morfo.MatchedClassMember(head, r.card.Phonetics.CharClasses["sun_letters"])
	if !ok {
		return art
	}

	return assimilate(art, letter)
}

// assimilate replaces the article's final consonant (keeping a trailing
// hyphen, if the transliteration uses one) with the head's initial sun
// letter, whole cluster included.
func assimilate(article, initial string) string {
	hyphen := ""
	core := article
	if trimmed, found := strings.CutSuffix(article, "-"); found {
		core = trimmed
		hyphen = "-"
	}

	runes := []rune(core)
	if len(runes) == 0 {
		return article
	}
	runes = runes[:len(runes)-1]

	return string(runes) + initial + hyphen
}
