package morfo

import "strings"

const latinVowels = "aeiouAEIOU"

const (
	hangulBase = 0xAC00
	hangulEnd  = 0xD7A3
	// jamoPerSyllable is the number of final-consonant slots per syllable
	// block; remainder 0 means an open syllable.
	jamoPerSyllable = 28
)

// IsVowel reports whether r is in the vowel set. An empty set means the
// plain Latin vowels.
func IsVowel(r rune, vowels string) bool {
	if vowels == "" {
		vowels = latinVowels
	}

	return strings.ContainsRune(vowels, r) || strings.ContainsRune(vowels, toLowerRune(r))
}

func toLowerRune(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}

	return r
}

// LastRune returns the final rune of word, or 0 for the empty string.
func LastRune(word string) rune {
	var last rune
	for _, r := range word {
		last = r
	}

	return last
}

// FirstRune returns the initial rune of word, or 0 for the empty string.
func FirstRune(word string) rune {
	for _, r := range word {
		return r
	}

	return 0
}

// TriggerVowel scans word from the end for its harmony trigger vowel,
// returning fallback when the word has none.
func TriggerVowel(word, vowels, fallback string) string {
	runes := []rune(word)
	for i := len(runes) - 1; i >= 0; i-- {
		if IsVowel(runes[i], vowels) {
			return string(toLowerRune(runes[i]))
		}
	}

	return fallback
}

// HarmonyGroup maps a trigger vowel to its group name, or "default" when
// no group lists it.
func HarmonyGroup(vowel string, groups map[string][]string) string {
	for name, members := range groups {
		for _, member := range members {
			if member == vowel {
				return name
			}
		}
	}

	return "default"
}

// EndsInVowel reports whether word's final sound is vocalic. silentFinals
// lists consonants that count as vowel-equivalent (the Persian silent he).
func EndsInVowel(word, vowels, silentFinals string) bool {
	last := LastRune(word)
	if last == 0 {
		return false
	}
	if silentFinals != "" && strings.ContainsRune(silentFinals, last) {
		return true
	}

	return IsVowel(last, vowels)
}

// HasBatchim reports whether word ends in a closed syllable. For Hangul
// syllable blocks this is exact jamo arithmetic; anything else falls back
// to a naive Latin-vowel check on the final letter.
func HasBatchim(word string) bool {
	last := LastRune(word)
	if last == 0 {
		return false
	}

	if last >= hangulBase && last <= hangulEnd {
		return (last-hangulBase)%jamoPerSyllable > 0
	}

	return !IsVowel(last, "")
}

// ApplySuffixRules applies the first rule whose ending matches word,
// preferring the longest ending so a 3-character rule beats a 1-character
// rule that is also its suffix. Rules are pre-sorted by DecodeCard, but
// the scan does not rely on it.
func ApplySuffixRules(word string, rules []SuffixRule) (string, bool) {
	best := -1
	for i, rule := range rules {
		if rule.EndsWith == "" || !strings.HasSuffix(word, rule.EndsWith) {
			continue
		}
		if best == -1 || len(rule.EndsWith) > len(rules[best].EndsWith) {
			best = i
		}
	}

	if best == -1 {
		return word, false
	}

	return word[:len(word)-len(rules[best].EndsWith)] + rules[best].ReplaceWith, true
}

// MatchedClassMember returns the class member word starts with. The
// longest member wins, so a digraph like "sh" beats a plain "s" that is
// its prefix.
func MatchedClassMember(word string, class []string) (string, bool) {
	best := ""
	for _, member := range class {
		if member != "" && strings.HasPrefix(word, member) && len(member) > len(best) {
			best = member
		}
	}

	return best, best != ""
}

// MatchCharClass reports whether word starts with any member of the named
// class. Members may be multi-character clusters.
func MatchCharClass(word string, class []string) bool {
	_, ok := MatchedClassMember(word, class)
	return ok
}

// StripDeletion drops the final character of word if the deletion set
// lists it, used before phonological fusion. Only one character is
// dropped per fusion step.
func StripDeletion(word, deletions string) string {
	if deletions == "" {
		return word
	}

	runes := []rune(word)
	if len(runes) > 0 && strings.ContainsRune(deletions, runes[len(runes)-1]) {
		runes = runes[:len(runes)-1]
	}

	return string(runes)
}
