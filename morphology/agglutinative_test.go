package morphology

import (
	"testing"

	"github.com/morfo-lang/morfo"
	"github.com/stretchr/testify/assert"
)

func turkishCard() *morfo.Card {
	return &morfo.Card{
		Language: "tr",
		Family:   morfo.FamilyAgglutinative,
		Phonetics: morfo.Phonetics{
			Vowels: "aeıioöuü",
			HarmonyGroups: map[string][]string{
				"back_unrounded":  {"a", "ı"},
				"back_rounded":    {"o", "u"},
				"front_unrounded": {"e", "i"},
				"front_rounded":   {"ö", "ü"},
			},
			DefaultVowel: "e",
		},
		Morphology: morfo.MorphologyRules{
			Suffixes: map[string]morfo.SuffixSpec{
				"copula": {Variants: map[string]string{
					"back_unrounded":  "dır",
					"back_rounded":    "dur",
					"front_unrounded": "dir",
					"front_rounded":   "dür",
				}},
				"locative": {Variants: map[string]string{
					"back_unrounded":  "da",
					"back_rounded":    "da",
					"front_unrounded": "de",
					"front_rounded":   "de",
				}},
			},
		},
		Syntax:    morfo.Syntax{CopulaType: morfo.CopulaSuffix},
		Structure: "{name} {nationality} {profession}{copula}",
	}
}

func TestAgglutinativeSuffixHarmony(t *testing.T) {
	r := newAgglutinative(turkishCard())

	table := []struct {
		Label    string
		Stem     string
		Type     string
		Expected string
	}{
		{"Back rounded trigger", "doktor", "copula", "doktordur"},
		{"Front unrounded trigger", "öğretmen", "copula", "öğretmendir"},
		{"Back unrounded trigger", "avukat", "copula", "avukattır"},
		{"Front rounded trigger", "müdür", "copula", "müdürdür"},
		{"Locative back", "Ankara", "locative", "Ankarada"},
		{"Locative front", "İzmir", "locative", "İzmirde"},
		{"Unknown suffix type passes through", "doktor", "plural", "doktor"},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, r.Suffix(row.Stem, row.Type))
		})
	}
}

func TestAgglutinativeRenderBio(t *testing.T) {
	r := newAgglutinative(turkishCard())

	res := r.RenderBio(morfo.SemanticSlots{
		Name:        "Ayşe",
		Gender:      morfo.GenderFemale,
		Profession:  "doktor",
		Nationality: "Türk",
	})

	assert.Equal(t, "Ayşe Türk doktordur.", res)
}

func TestAgglutinativeRenderBioSpacedCopulaSlot(t *testing.T) {
	card := turkishCard()
	card.Structure = "{name} {profession} {copula}"
	r := newAgglutinative(card)

	// A space before {copula} still yields the attached copula.
	res := r.RenderBio(morfo.SemanticSlots{Name: "Ayşe", Profession: "doktor"})
	assert.Equal(t, "Ayşe doktordur.", res)
}

func TestAgglutinativeAttachCopula(t *testing.T) {
	r := newAgglutinative(turkishCard())

	assert.Equal(t, "doktordur", r.AttachCopula("doktor", morfo.CopulaFeatures{}))
	assert.Equal(t, "öğretmendir", r.AttachCopula("öğretmen", morfo.CopulaFeatures{}))
	assert.Equal(t, "", r.AttachCopula("", morfo.CopulaFeatures{}))
}

func TestAgglutinativeDefaultVowelFallback(t *testing.T) {
	r := newAgglutinative(turkishCard())

	// A stem with no vowels harmonizes with the card's default vowel.
	assert.Equal(t, "krkdir", r.Suffix("krk", "copula"))
}
