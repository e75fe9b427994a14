package morphology

import (
	"strings"

	"github.com/morfo-lang/morfo"
)

// romance layers gender agreement and trigger-sensitive articles on the
// shared skeleton. The family fallback is the classic -o → -a swap for
// feminine forms; everything else is card data.
type romance struct {
	base
}

func newRomance(card *morfo.Card) *romance {
	r := &romance{newBase(card, morfo.FamilyRomance)}
	r.self = r
	r.fallback = r.genderFallback

	return r
}

func (r *romance) genderFallback(lemma, key string) (string, bool) {
	if key != string(morfo.GenderFemale) {
		return "", false
	}
	if strings.HasSuffix(lemma, "o") {
		return lemma[:len(lemma)-1] + "a", true
	}

	return "", false
}
