package grammar

import (
	"fmt"
	"strings"
)

// Template builds a sequence from a format string. Literal runs become
// Literal atoms; {name} placeholders resolve through binds first and fall
// back to a (possibly forward) rule reference. {{ and }} escape literal
// braces.
//
//	g.Template("# {title}\n\n{content}", nil)
//
// is Seq(Lit("# "), Ref("title"), Lit("\n\n"), Ref("content")).
func (g *Grammar) Template(format string, binds map[string]Symbol) (Symbol, error) {
	var parts []any
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			parts = append(parts, Literal{Text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(format); i++ {
		switch c := format[i]; c {
		case '{':
			if i+1 < len(format) && format[i+1] == '{' {
				lit.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexByte(format[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("template: unclosed placeholder at offset %d", i)
			}
			name := format[i+1 : i+1+end]
			if name == "" {
				return nil, fmt.Errorf("template: empty placeholder at offset %d", i)
			}
			flush()
			if sym, ok := binds[name]; ok {
				parts = append(parts, sym)
			} else {
				parts = append(parts, g.Ref(name))
			}
			i += end + 1
		case '}':
			if i+1 < len(format) && format[i+1] == '}' {
				lit.WriteByte('}')
				i++
				continue
			}
			return nil, fmt.Errorf("template: unmatched '}' at offset %d", i)
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return Seq(parts...), nil
}
