package morfo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestParseTemplate(t *testing.T) {
	table := []struct {
		Label    string
		Raw      string
		Expected Template
	}{
		{
			"Placeholders and literals",
			"{name} {copula} {profession}",
			Template{
				{Text: "name", Placeholder: true},
				{Text: " "},
				{Text: "copula", Placeholder: true},
				{Text: " "},
				{Text: "profession", Placeholder: true},
			},
		},
		{
			"Adjacent placeholders",
			"{profession}{copula}",
			Template{
				{Text: "profession", Placeholder: true},
				{Text: "copula", Placeholder: true},
			},
		},
		{
			"Unterminated brace stays literal",
			"{name} {copula",
			Template{
				{Text: "name", Placeholder: true},
				{Text: " {copula"},
			},
		},
		{
			"No placeholders",
			"plain text",
			Template{{Text: "plain text"}},
		},
		{
			"Empty template",
			"",
			Template{},
		},
	}

	for _, row := range table {
		t.Run(row.Label, func(t *testing.T) {
			res := ParseTemplate(row.Raw)
			if diff := cmp.Diff(row.Expected, res); diff != "" {
				t.Errorf("template mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTemplateRender(t *testing.T) {
	tmpl := ParseTemplate("{name} {copula} {profession}")

	res := tmpl.Render(map[string]string{
		"name":       "Maria",
		"copula":     "è",
		"profession": "un'attrice",
	})
	assert.Equal(t, "Maria è un'attrice", res)

	// A missing value renders empty; normalization cleans up afterwards.
	res = tmpl.Render(map[string]string{"name": "Maria", "profession": "attrice"})
	assert.Equal(t, "Maria  attrice", res)
}

func TestTemplatePreceding(t *testing.T) {
	tmpl := ParseTemplate("{name} {nationality} {profession}{copula}")

	host, ok := tmpl.Preceding("copula")
	assert.True(t, ok)
	assert.Equal(t, "profession", host)

	// Whitespace between the tokens does not break adjacency.
	spaced := ParseTemplate("{name} {profession} {copula}")
	host, ok = spaced.Preceding("copula")
	assert.True(t, ok)
	assert.Equal(t, "profession", host)

	// Any other literal does.
	hyphenated := ParseTemplate("{name} {profession}-{copula}")
	_, ok = hyphenated.Preceding("copula")
	assert.False(t, ok)

	// Nothing before the first token.
	leading := ParseTemplate("{copula} {name}")
	_, ok = leading.Preceding("copula")
	assert.False(t, ok)
}

func TestTemplateQueries(t *testing.T) {
	tmpl := ParseTemplate("{name} {copula} {profession}")

	assert.Equal(t, []string{"name", "copula", "profession"}, tmpl.Placeholders())
	assert.True(t, tmpl.Has("copula"))
	assert.False(t, tmpl.Has("nationality"))
}
