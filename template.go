package morfo

import "strings"

// Template is the parsed form of a card's structure string, e.g.
// "{name} {copula} {profession}.". It is an ordered token list rather
// than free-form replacement so that placeholder presence, order and
// adjacency are queryable.
type Template []TemplateToken

type TemplateToken struct {
	// Text is literal text when Placeholder is false, the placeholder
	// name otherwise.
	Text        string `json:"text" yaml:"text"`
	Placeholder bool   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// ParseTemplate splits raw into literal and {placeholder} tokens. An
// unterminated brace is kept as literal text.
func ParseTemplate(raw string) Template {
	tokens := make(Template, 0, 8)
	curr := raw

	for len(curr) > 0 {
		open := strings.IndexByte(curr, '{')
		if open == -1 {
			tokens = append(tokens, TemplateToken{Text: curr})
			break
		}

		closing := strings.IndexByte(curr[open:], '}')
		if closing == -1 {
			tokens = append(tokens, TemplateToken{Text: curr})
			break
		}

		if open > 0 {
			tokens = append(tokens, TemplateToken{Text: curr[:open]})
		}
		tokens = append(tokens, TemplateToken{Text: curr[open+1 : open+closing], Placeholder: true})
		curr = curr[open+closing+1:]
	}

	return tokens
}

// Render substitutes values into the template. Placeholders without a
// value render empty; the caller's normalization pass is responsible for
// collapsing the whitespace that leaves behind.
func (t Template) Render(values map[string]string) string {
	sb := strings.Builder{}
	sb.Grow(64)
	for _, token := range t {
		if token.Placeholder {
			sb.WriteString(values[token.Text])
		} else {
			sb.WriteString(token.Text)
		}
	}

	return sb.String()
}

// Placeholders returns the placeholder names in template order,
// duplicates included.
func (t Template) Placeholders() []string {
	res := make([]string, 0, len(t))
	for _, token := range t {
		if token.Placeholder {
			res = append(res, token.Text)
		}
	}

	return res
}

// Has reports whether the template contains the named placeholder.
func (t Template) Has(name string) bool {
	for _, token := range t {
		if token.Placeholder && token.Text == name {
			return true
		}
	}

	return false
}

// Preceding returns the placeholder before name, skipping whitespace-only
// literal text between them; any other literal breaks the adjacency.
// Suffix copulas attach to that token.
func (t Template) Preceding(name string) (string, bool) {
	for i, token := range t {
		if !token.Placeholder || token.Text != name {
			continue
		}

		for j := i - 1; j >= 0; j-- {
			prev := t[j]
			if prev.Placeholder {
				return prev.Text, true
			}
			if strings.TrimSpace(prev.Text) != "" {
				return "", false
			}
		}

		return "", false
	}

	return "", false
}
