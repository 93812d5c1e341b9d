package grammar

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeqFlattensAtConstruction(t *testing.T) {
	a, b, c := Lit("a"), Lit("b"), Lit("c")

	left := Seq(Seq(a, b), c)
	right := Seq(a, Seq(b, c))
	want := Sequence{Items: []Symbol{a, b, c}}

	if diff := cmp.Diff(want, left); diff != "" {
		t.Errorf("(a b) c mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, right); diff != "" {
		t.Errorf("a (b c) mismatch (-want +got):\n%s", diff)
	}
}

func TestAltFlattensAtConstruction(t *testing.T) {
	a, b, c := Lit("a"), Lit("b"), Lit("c")

	left := Alt(Alt(a, b), c)
	right := Alt(a, Alt(b, c))
	want := Choice{Alternatives: []Symbol{a, b, c}}

	if diff := cmp.Diff(want, left); diff != "" {
		t.Errorf("(a|b)|c mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, right); diff != "" {
		t.Errorf("a|(b|c) mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalization(t *testing.T) {
	x := Lit("x")

	assert.Equal(t, Epsilon{}, Seq())
	assert.Equal(t, x, Seq(x))
	assert.Equal(t, Epsilon{}, Alt())
	assert.Equal(t, x, Alt(x))
}

func TestStringCoercion(t *testing.T) {
	got := Seq("a", Lit("b"))
	want := Sequence{Items: []Symbol{Literal{Text: "a"}, Literal{Text: "b"}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("coerced sequence mismatch (-want +got):\n%s", diff)
	}

	got = Alt("a", Re("[0-9]"))
	want2 := Choice{Alternatives: []Symbol{Literal{Text: "a"}, Regex{Pattern: "[0-9]"}}}
	if diff := cmp.Diff(want2, got); diff != "" {
		t.Errorf("coerced choice mismatch (-want +got):\n%s", diff)
	}
}

func TestCoercionRejectsOtherTypes(t *testing.T) {
	require.Panics(t, func() { Seq(42, "a") })
}
