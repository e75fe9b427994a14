package construction

import (
	"strings"

	"github.com/morfo-lang/morfo"
)

// Coordinate joins rendered clause strings with the profile's
// conjunction, applying the serial comma for three or more clauses when
// configured. Pre-existing terminal punctuation is stripped from each
// clause first; exactly one terminal mark goes on the result.
func Coordinate(clauses []string, p Profile) string {
	stripped := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		clause = strings.TrimSpace(morfo.StripTerminal(clause))
		if clause != "" {
			stripped = append(stripped, clause)
		}
	}

	switch len(stripped) {
	case 0:
		return ""
	case 1:
		return morfo.EnsureTerminal(stripped[0], p.terminal())
	}

	sep := " "
	if p.NoSpaces {
		sep = ""
	}

	sb := strings.Builder{}
	sb.Grow(64)
	last := len(stripped) - 1
	for i, clause := range stripped {
		switch {
		case i == 0:
		case i == last:
			if len(stripped) > 2 && p.SerialComma {
				sb.WriteString(",")
			}
			if p.Conjunction != "" {
				sb.WriteString(sep)
				sb.WriteString(p.Conjunction)
			} else {
				// Without a conjunction the final joint still needs a
				// separator, spaceless scripts included.
				sb.WriteString(",")
			}
			sb.WriteString(sep)
		default:
			sb.WriteString(",")
			sb.WriteString(sep)
		}
		sb.WriteString(clause)
	}

	return morfo.EnsureTerminal(sb.String(), p.terminal())
}
