package morfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriggerVowel(t *testing.T) {
	table := []struct {
		Label    string
		Word     string
		Vowels   string
		Fallback string
		Expected string
	}{
		{"Last vowel wins", "doktor", "aeıioöuü", "e", "o"},
		{"Scans past final consonants", "kitap", "aeıioöuü", "e", "a"},
		{"Front rounded vowel", "müdür", "aeıioöuü", "e", "ü"},
		{"Uppercase vowel folds", "TOKAT", "aeıioöuü", "e", "a"},
		{"No vowel uses fallback", "krk", "aeıioöuü", "e", "e"},
		{"Empty word uses fallback", "", "aeıioöuü", "i", "i"},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, TriggerVowel(row.Word, row.Vowels, row.Fallback))
		})
	}
}

func TestHarmonyGroup(t *testing.T) {
	groups := map[string][]string{
		"back_unrounded":  {"a", "ı"},
		"back_rounded":    {"o", "u"},
		"front_unrounded": {"e", "i"},
		"front_rounded":   {"ö", "ü"},
	}

	assert.Equal(t, "back_rounded", HarmonyGroup("o", groups))
	assert.Equal(t, "front_unrounded", HarmonyGroup("i", groups))
	assert.Equal(t, "default", HarmonyGroup("x", groups))
	assert.Equal(t, "default", HarmonyGroup("a", nil))
}

func TestHasBatchim(t *testing.T) {
	table := []struct {
		Label    string
		Word     string
		Expected bool
	}{
		{"Closed final syllable", "김", true},
		{"Closed final syllable in longer word", "서울", true},
		{"Open final syllable", "의사", false},
		{"Open final syllable in longer word", "배우", false},
		{"Latin consonant final", "Kim", true},
		{"Latin vowel final", "Mina", false},
		{"Empty word", "", false},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			assert.Equal(t, row.Expected, HasBatchim(row.Word))
		})
	}
}

func TestHasBatchimJamoArithmetic(t *testing.T) {
	// Every 28th code point from the block base is an open syllable;
	// the 27 after it are closed.
	for offset := rune(0); offset < 28*4; offset++ {
		c := rune(0xAC00) + offset
		expected := offset%28 > 0
		assert.Equal(t, expected, HasBatchim(string(c)), "code point %#x", c)
	}
}

func TestApplySuffixRules(t *testing.T) {
	rules := []SuffixRule{
		{EndsWith: "e", ReplaceWith: "a"},
		{EndsWith: "ore", ReplaceWith: "rice"},
		{EndsWith: "tore", ReplaceWith: "trice"},
	}

	table := []struct {
		Label    string
		Word     string
		Expected string
		Changed  bool
	}{
		{"Longest ending wins over shorter ones", "attore", "attrice", true},
		{"Shorter ending applies when longest misses", "amore", "amrice", true},
		{"One-character ending as last resort", "grande", "granda", true},
		{"No ending matches", "blu", "blu", false},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			res, changed := ApplySuffixRules(row.Word, rules)
			assert.Equal(t, row.Expected, res)
			assert.Equal(t, row.Changed, changed)
		})
	}
}

func TestApplySuffixRulesOrderIndependent(t *testing.T) {
	// The longest match must win regardless of rule order.
	forward := []SuffixRule{{EndsWith: "e", ReplaceWith: "a"}, {EndsWith: "tore", ReplaceWith: "trice"}}
	backward := []SuffixRule{{EndsWith: "tore", ReplaceWith: "trice"}, {EndsWith: "e", ReplaceWith: "a"}}

	resA, _ := ApplySuffixRules("attore", forward)
	resB, _ := ApplySuffixRules("attore", backward)
	assert.Equal(t, "attrice", resA)
	assert.Equal(t, "attrice", resB)
}

func TestEndsInVowel(t *testing.T) {
	assert.True(t, EndsInVowel("casa", "", ""))
	assert.False(t, EndsInVowel("doktor", "", ""))
	assert.True(t, EndsInVowel("khane", "aeiou", ""))
	// The silent final consonant counts as a vowel.
	assert.True(t, EndsInVowel("khaneh", "aeiou", "h"))
	assert.False(t, EndsInVowel("ketab", "aeiou", "h"))
	assert.False(t, EndsInVowel("", "aeiou", "h"))
}

func TestMatchCharClass(t *testing.T) {
	impure := []string{"z", "gn", "ps", "st", "sp", "sc"}

	assert.True(t, MatchCharClass("studente", impure))
	assert.True(t, MatchCharClass("zio", impure))
	assert.True(t, MatchCharClass("gnomo", impure))
	assert.False(t, MatchCharClass("dottore", impure))
	assert.False(t, MatchCharClass("sale", impure))
	assert.False(t, MatchCharClass("anything", nil))
}

func TestMatchedClassMember(t *testing.T) {
	sun := []string{"t", "th", "d", "dh", "s", "sh"}

	// The digraph wins over its single-letter prefix.
	member, ok := MatchedClassMember("shams", sun)
	assert.True(t, ok)
	assert.Equal(t, "sh", member)

	member, ok = MatchedClassMember("sana", sun)
	assert.True(t, ok)
	assert.Equal(t, "s", member)

	_, ok = MatchedClassMember("qamar", sun)
	assert.False(t, ok)
}

func TestStripDeletion(t *testing.T) {
	assert.Equal(t, "nako", StripDeletion("nakor", "rq"))
	assert.Equal(t, "illu", StripDeletion("illu", "rq"))
	assert.Equal(t, "nakor", StripDeletion("nakor", ""))
	// Only the final character is checked, and only once.
	assert.Equal(t, "nakor", StripDeletion("nakorr", "r")[:5])
	assert.Equal(t, "nakor", StripDeletion("nakorr", "r"))
}

func TestIsVowelDefaultsToLatin(t *testing.T) {
	assert.True(t, IsVowel('a', ""))
	assert.True(t, IsVowel('E', ""))
	assert.False(t, IsVowel('k', ""))
	assert.True(t, IsVowel('ü', "aeıioöuü"))
	assert.False(t, IsVowel('ü', ""))
}
