package grammar

import (
	"fmt"
	"strings"
)

func init() {
	Register("gbnf", GBNF{})
}

// GBNF renders the rule table as the BNF-like constraint format used by
// llama.cpp-style inference engines: one "name ::= body" production per
// line, root first.
type GBNF struct {
	// RuleName maps a user rule name to a target identifier. Synthetic
	// names (leading underscore) always pass through unchanged so they
	// stay visually distinct from user rules. Nil means HyphenateRuleName.
	RuleName func(string) string
}

// HyphenateRuleName is the default naming policy: each underscore becomes
// a hyphen.
func HyphenateRuleName(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

func (f GBNF) Render(rules []Rule, root string) (string, error) {
	var b strings.Builder
	for _, r := range rules {
		fmt.Fprintf(&b, "%s ::= %s\n", f.name(r.Name), f.symbol(r.Body, false))
	}
	return b.String(), nil
}

func (f GBNF) name(rule string) string {
	if strings.HasPrefix(rule, "_") {
		return rule
	}
	if f.RuleName != nil {
		return f.RuleName(rule)
	}
	return HyphenateRuleName(rule)
}

var gbnfEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// symbol renders one node. nested reports whether the node sits inside a
// sequence or choice, which is when alternations need parentheses to keep
// their precedence.
func (f GBNF) symbol(sym Symbol, nested bool) string {
	switch s := sym.(type) {
	case Literal:
		return `"` + gbnfEscaper.Replace(s.Text) + `"`
	case Regex:
		return s.Pattern
	case Epsilon:
		return `""`
	case NonTerminal:
		return f.name(s.Name)
	case Sequence:
		parts := make([]string, len(s.Items))
		for i, item := range s.Items {
			parts[i] = f.symbol(item, true)
		}
		return strings.Join(parts, " ")
	case Choice:
		parts := make([]string, len(s.Alternatives))
		for i, alt := range s.Alternatives {
			parts[i] = f.symbol(alt, true)
		}
		if nested {
			return "( " + strings.Join(parts, " | ") + " )"
		}
		return strings.Join(parts, " | ")
	}
	panic(fmt.Sprintf("grammar: unknown symbol %T", sym))
}
