// Package grammar assembles context-free grammars from composable symbol
// combinators and compiles them into grammar text through pluggable
// renderers. The reference renderer emits the GBNF constraint format
// consumed by llama.cpp-style text-generation engines.
//
// Symbols form an expression tree; recursion is expressed by name through
// NonTerminal references into the rule table, never by a structurally
// cyclic tree. Everything is synchronous and in-memory: a Grammar is not
// safe for concurrent mutation, and compiling never modifies the table.
package grammar

import "fmt"

// Rule pairs a rule name with the symbol it derives.
type Rule struct {
	Name string
	Body Symbol
}

// Grammar is the rule table: named symbols, a designated root, and the
// counters used to name synthetic rules. The zero value is not usable;
// call New.
type Grammar struct {
	names    []string
	rules    map[string]Symbol
	root     string
	counters map[string]int
}

// New returns an empty grammar whose root rule is named "root".
func New() *Grammar {
	return &Grammar{
		rules:    make(map[string]Symbol),
		root:     "root",
		counters: make(map[string]int),
	}
}

// Define registers name → value, overwriting any previous definition. The
// first definition of a name fixes its position in emission order even if
// the body is later replaced. Raw strings coerce to Literal.
func (g *Grammar) Define(name string, value any) {
	if _, ok := g.rules[name]; !ok {
		g.names = append(g.names, name)
	}
	g.rules[name] = toSymbol(value)
}

// Ref returns a reference to name. The rule need not exist yet; unresolved
// references are reported by Validate, never here.
func (g *Grammar) Ref(name string) Symbol {
	return NonTerminal{Name: name}
}

// SetRoot designates the entry-point rule.
func (g *Grammar) SetRoot(name string) { g.root = name }

// Root returns the entry-point rule name.
func (g *Grammar) Root() string { return g.root }

// Rules returns the table in definition order.
func (g *Grammar) Rules() []Rule {
	rs := make([]Rule, 0, len(g.names))
	for _, name := range g.names {
		rs = append(rs, Rule{Name: name, Body: g.rules[name]})
	}
	return rs
}

// Maybe wraps x as optional: x | "". No rule is added to the table; the
// choice is inlined at the use site.
func (g *Grammar) Maybe(x any) Symbol {
	return Alt(toSymbol(x), Epsilon{})
}

// Some matches one or more x, optionally separated by sep. It registers
// exactly one synthetic right-recursive rule
//
//	_some_N ::= x | x sep _some_N
//
// and returns a reference to it. Repetition needs a named rule because a
// symbol tree cannot embed itself; the name comes from a per-kind counter
// that only ever advances, so synthetic names are never reused.
func (g *Grammar) Some(x any, sep ...any) Symbol {
	if len(sep) > 1 {
		panic("grammar: Some takes at most one separator")
	}
	item := toSymbol(x)
	name := g.nextName("some")
	ref := NonTerminal{Name: name}

	rec := []any{item}
	if len(sep) == 1 && sep[0] != nil {
		rec = append(rec, toSymbol(sep[0]))
	}
	rec = append(rec, ref)

	g.Define(name, Alt(item, Seq(rec...)))
	return ref
}

// Any matches zero or more x, optionally separated by sep. It delegates to
// Some for the repetition rule and inlines the optional wrapper, so the
// only table entry added is Some's.
func (g *Grammar) Any(x any, sep ...any) Symbol {
	return g.Maybe(g.Some(x, sep...))
}

func (g *Grammar) nextName(kind string) string {
	g.counters[kind]++
	return fmt.Sprintf("_%s_%d", kind, g.counters[kind])
}

// Validate resolves every reference in every rule body, including bodies
// of rules unreachable from the root. Rules are walked in definition
// order, bodies depth-first left to right; the first reference to an
// undefined rule fails the walk. Cycles are how recursion is expressed and
// are always legal.
func (g *Grammar) Validate() error {
	if _, ok := g.rules[g.root]; !ok {
		return fmt.Errorf("%w: %q", ErrNoRoot, g.root)
	}
	for _, name := range g.names {
		if err := g.resolve(name, g.rules[name]); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grammar) resolve(referrer string, sym Symbol) error {
	switch s := sym.(type) {
	case NonTerminal:
		if _, ok := g.rules[s.Name]; !ok {
			return &UndefinedRuleError{Rule: s.Name, Referrer: referrer}
		}
	case Sequence:
		for _, item := range s.Items {
			if err := g.resolve(referrer, item); err != nil {
				return err
			}
		}
	case Choice:
		for _, alt := range s.Alternatives {
			if err := g.resolve(referrer, alt); err != nil {
				return err
			}
		}
	}
	return nil
}

// OrderedRules returns the emission order: the root rule first, then every
// other rule in the order it was first defined. Root-first puts the entry
// point where a reader looks for it; definition order afterwards keeps
// recompiles of an unchanged grammar byte-stable.
func (g *Grammar) OrderedRules() []Rule {
	rs := make([]Rule, 0, len(g.names))
	if body, ok := g.rules[g.root]; ok {
		rs = append(rs, Rule{Name: g.root, Body: body})
	}
	for _, name := range g.names {
		if name == g.root {
			continue
		}
		rs = append(rs, Rule{Name: name, Body: g.rules[name]})
	}
	return rs
}

// Compile validates the table and renders it with the renderer registered
// under format. Every failure aborts cleanly with the table untouched, so
// compiling an unchanged grammar twice returns identical text.
func (g *Grammar) Compile(format string) (string, error) {
	r, ok := lookup(format)
	if !ok {
		return "", &UnknownFormatError{Format: format}
	}
	return g.CompileWith(r)
}

// CompileWith is Compile with an explicit renderer, bypassing the
// registry.
func (g *Grammar) CompileWith(r Renderer) (string, error) {
	if err := g.Validate(); err != nil {
		return "", err
	}
	out, err := r.Render(g.OrderedRules(), g.root)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}
	return out, nil
}
