package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupPrunesEpsilonRule(t *testing.T) {
	g := New()
	g.Define("empty", Epsilon{})
	g.Define("root", Seq("a", g.Ref("empty"), "b"))

	g.Cleanup()

	rules := g.Rules()
	require.Len(t, rules, 1)
	want := Sequence{Items: []Symbol{Literal{Text: "a"}, Literal{Text: "b"}}}
	if diff := cmp.Diff(Symbol(want), rules[0].Body); diff != "" {
		t.Errorf("root body mismatch (-want +got):\n%s", diff)
	}
}

func TestCleanupFollowsReferenceChains(t *testing.T) {
	g := New()
	g.Define("e1", Epsilon{})
	g.Define("e2", g.Ref("e1"))
	g.Define("root", Alt(g.Ref("e2"), "x"))

	g.Cleanup()

	rules := g.Rules()
	require.Len(t, rules, 1)
	// The epsilon alternative survives as an explicit Epsilon, moved to
	// the end.
	want := Choice{Alternatives: []Symbol{Literal{Text: "x"}, Epsilon{}}}
	if diff := cmp.Diff(Symbol(want), rules[0].Body); diff != "" {
		t.Errorf("root body mismatch (-want +got):\n%s", diff)
	}
}

func TestCleanupDropsRulesEmptiedByPruning(t *testing.T) {
	g := New()
	g.Define("empty", Epsilon{})
	g.Define("wrapper", Seq(g.Ref("empty"), g.Ref("empty")))
	g.Define("root", "x")

	g.Cleanup()

	var names []string
	for _, r := range g.Rules() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"root"}, names)
}

func TestCleanupKeepsNonEmptyGrammar(t *testing.T) {
	g := versionGrammar()
	before, err := g.Compile("gbnf")
	require.NoError(t, err)

	g.Cleanup()

	after, err := g.Compile("gbnf")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
