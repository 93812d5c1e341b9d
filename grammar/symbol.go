package grammar

import "fmt"

// Symbol is one node of a grammar expression tree. The union is closed:
// Literal, Regex, Sequence, Choice, Epsilon and NonTerminal are the only
// implementations.
type Symbol interface {
	symbol()
}

// Literal matches exactly its text.
type Literal struct {
	Text string
}

// Regex is an opaque pattern handed through to the renderer untouched. The
// engine never inspects it, so it must already be valid in the target
// notation.
type Regex struct {
	Pattern string
}

// Sequence is the concatenation of its items, in order. Sequences are never
// nested and never hold fewer than two items; Seq enforces both.
type Sequence struct {
	Items []Symbol
}

// Choice is an ordered alternation. Order decides output layout, not
// grammar meaning. Same construction invariants as Sequence; use Alt.
type Choice struct {
	Alternatives []Symbol
}

// Epsilon matches the empty string.
type Epsilon struct{}

// NonTerminal refers to a named rule, resolved by table lookup at
// validation time rather than by structural embedding. This is what makes
// recursion representable, and it is why a reference may be created before
// its rule is defined.
type NonTerminal struct {
	Name string
}

func (Literal) symbol()     {}
func (Regex) symbol()       {}
func (Sequence) symbol()    {}
func (Choice) symbol()      {}
func (Epsilon) symbol()     {}
func (NonTerminal) symbol() {}

// Lit returns a Literal matching text.
func Lit(text string) Symbol { return Literal{Text: text} }

// Re returns an opaque Regex atom for pattern.
func Re(pattern string) Symbol { return Regex{Pattern: pattern} }

// toSymbol coerces a raw string operand to a Literal. Construction never
// returns an error; an operand that is neither a Symbol nor a string is a
// programming error and panics.
func toSymbol(v any) Symbol {
	switch s := v.(type) {
	case Symbol:
		return s
	case string:
		return Literal{Text: s}
	default:
		panic(fmt.Sprintf("grammar: cannot use %T as a symbol", v))
	}
}

// Seq concatenates parts in order. Raw strings coerce to Literal. Operands
// that are themselves sequences are flattened into the result, so the
// grouping of nested Seq calls is never observable. Zero parts normalize
// to Epsilon, one part to that part.
func Seq(parts ...any) Symbol {
	items := make([]Symbol, 0, len(parts))
	for _, p := range parts {
		switch s := toSymbol(p).(type) {
		case Sequence:
			items = append(items, s.Items...)
		default:
			items = append(items, s)
		}
	}
	switch len(items) {
	case 0:
		return Epsilon{}
	case 1:
		return items[0]
	}
	return Sequence{Items: items}
}

// Alt alternates between parts in order, with the same coercion,
// flattening and normalization as Seq.
func Alt(parts ...any) Symbol {
	alts := make([]Symbol, 0, len(parts))
	for _, p := range parts {
		switch s := toSymbol(p).(type) {
		case Choice:
			alts = append(alts, s.Alternatives...)
		default:
			alts = append(alts, s)
		}
	}
	switch len(alts) {
	case 0:
		return Epsilon{}
	case 1:
		return alts[0]
	}
	return Choice{Alternatives: alts}
}
