package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatePlaceholders(t *testing.T) {
	g := New()

	got, err := g.Template("# {title}\n\n{content}", nil)
	require.NoError(t, err)

	want := Sequence{Items: []Symbol{
		Literal{Text: "# "},
		NonTerminal{Name: "title"},
		Literal{Text: "\n\n"},
		NonTerminal{Name: "content"},
	}}
	if diff := cmp.Diff(Symbol(want), got); diff != "" {
		t.Errorf("template mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateBindsOverrideLookup(t *testing.T) {
	g := New()

	got, err := g.Template("v{num}", map[string]Symbol{"num": Re("[0-9]+")})
	require.NoError(t, err)

	want := Sequence{Items: []Symbol{
		Literal{Text: "v"},
		Regex{Pattern: "[0-9]+"},
	}}
	if diff := cmp.Diff(Symbol(want), got); diff != "" {
		t.Errorf("template mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateBraceEscapes(t *testing.T) {
	g := New()

	got, err := g.Template("{{x}}", nil)
	require.NoError(t, err)
	assert.Equal(t, Symbol(Literal{Text: "{x}"}), got)
}

func TestTemplateErrors(t *testing.T) {
	g := New()

	for _, format := range []string{"{open", "{}", "lone}"} {
		_, err := g.Template(format, nil)
		assert.Error(t, err, "format %q", format)
	}
}

func TestTemplateCompiles(t *testing.T) {
	g := New()
	g.Define("title", g.Some(Re("[a-z]+"), " "))
	body, err := g.Template("# {title}", nil)
	require.NoError(t, err)
	g.Define("root", body)

	got, err := g.Compile("gbnf")
	require.NoError(t, err)
	assert.Contains(t, got, `root ::= "# " title`)
}
