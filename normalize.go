package morfo

import "strings"

const terminalMarks = ".!?。؟।…"

// NormalizeWhitespace collapses runs of whitespace to single spaces and
// trims the edges. When noSpaces is set (scripts without interword
// spacing), all spaces are removed instead. The operation is idempotent.
func NormalizeWhitespace(s string, noSpaces bool) string {
	fields := strings.Fields(s)
	if noSpaces {
		return strings.Join(fields, "")
	}

	res := strings.Join(fields, " ")

	// No space before clause-internal punctuation left behind by elided
	// fragments.
	res = strings.ReplaceAll(res, " ,", ",")
	res = strings.ReplaceAll(res, " .", ".")

	return res
}

// EnsureTerminal strips any trailing terminal punctuation and appends
// exactly one instance of mark. Empty input stays empty: a degraded
// sentence does not become a bare full stop.
func EnsureTerminal(s, mark string) string {
	s = strings.TrimRight(s, " ")
	for {
		trimmed := strings.TrimRight(s, terminalMarks)
		if trimmed == s {
			break
		}
		s = strings.TrimRight(trimmed, " ")
	}

	if s == "" {
		return ""
	}

	return s + mark
}

// StripTerminal removes trailing terminal punctuation, used before
// clauses are coordinated.
func StripTerminal(s string) string {
	return strings.TrimRight(strings.TrimRight(s, " "), terminalMarks)
}

// FinalizeSentence is the shared last step of every orchestrator and
// construction: whitespace normalization followed by exactly one
// terminal mark.
func FinalizeSentence(s, mark string, noSpaces bool) string {
	return EnsureTerminal(NormalizeWhitespace(s, noSpaces), mark)
}
