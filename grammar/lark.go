package grammar

import (
	"fmt"
	"strings"
)

func init() {
	Register("lark", Lark{})
}

// Lark renders the rule table as a Lark grammar. Rule names are lowercased
// (uppercase names are tokens in Lark), regex atoms use /pattern/ syntax
// and the entry point is bridged through an explicit "start" rule.
type Lark struct{}

func (f Lark) Render(rules []Rule, root string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "start: %s\n", larkName(root))
	for _, r := range rules {
		fmt.Fprintf(&b, "%s: %s\n", larkName(r.Name), f.symbol(r.Body, false))
	}
	return b.String(), nil
}

func larkName(rule string) string {
	return strings.ToLower(rule)
}

func (f Lark) symbol(sym Symbol, nested bool) string {
	switch s := sym.(type) {
	case Literal:
		return `"` + strings.ReplaceAll(s.Text, `"`, `\"`) + `"`
	case Regex:
		return "/" + strings.ReplaceAll(s.Pattern, "/", `\/`) + "/"
	case Epsilon:
		return `""`
	case NonTerminal:
		return larkName(s.Name)
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
			return "(" + strings.Join(parts, " | ") + ")"
		}
		return strings.Join(parts, " | ")
	}
	panic(fmt.Sprintf("grammar: unknown symbol %T", sym))
}
