package morphology

import "github.com/morfo-lang/morfo"

// polysynthetic builds predicates by phonological fusion: a suffix spec
// is an invariant string or a variant map keyed by the stem's final
// character (or its class); if the triggering final character is in the
// card's deletion set it is dropped before concatenation. Verbalization
// and person marking are two sequential applications of that mechanism.
type polysynthetic struct {
	base
}

func newPolysynthetic(card *morfo.Card) *polysynthetic {
	r := &polysynthetic{newBase(card, morfo.FamilyPolysynthetic)}
	r.self = r
	r.fallback = r.suffixFallback

	return r
}

// Verbalize turns a noun root into a predicate and marks it for person
// and number: root + verbalizer + person mark, each step fused.
func (r *polysynthetic) Verbalize(root, verbalizer string, person morfo.Person, number morfo.Number) string {
	if root == "" {
		return ""
	}

	spec, ok := r.card.Morphology.Verbalizers[verbalizer]
	if !ok {
		spec = r.card.Morphology.Verbalizers["default"]
	}
	pred := r.attach(root, spec)

	markKey := string(person) + string(number)
	mark, ok := r.card.Morphology.PersonMarks[markKey]
	if !ok {
		mark = r.card.Morphology.PersonMarks["default"]
	}

	return r.attach(pred, mark)
}

// RenderBio renders the whole predication as one verbalized word: the
// profession root carries "to be" and third-person marking, so the
// template needs no copula of its own.
func (r *polysynthetic) RenderBio(slots morfo.SemanticSlots) string {
	values := map[string]string{
		"name":        r.bioName(slots.Name),
		"profession":  r.Verbalize(slots.Profession, "be", morfo.PersonThird, morfo.NumberSingular),
		"nationality": r.Inflect(slots.Nationality, slots.Gender.Key()),
	}

	return r.FinalizeSentence(r.tmpl.Render(values))
}
