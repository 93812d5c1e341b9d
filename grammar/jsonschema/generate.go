package jsonschema

import (
	"encoding/json"
	"fmt"

	"github.com/grammarkit/grammarkit/grammar"
)

// Generate decodes a JSON schema and defines rules for it on g, with the
// schema itself becoming g's root rule. Child schemas become rules named
// after their path (root_name, root_0, root_item, ...). Shared JSON terms
// (string, number, ...) are defined once and referenced by name.
//
// Generate only builds the table; resolution and rendering stay with
// g.Compile.
func Generate(g *grammar.Grammar, schema []byte) error {
	var s Schema
	if err := json.Unmarshal(schema, &s); err != nil {
		return err
	}
	gen := &generator{g: g, terms: make(map[string]bool)}
	sym, err := gen.symbol(&s, g.Root())
	if err != nil {
		return err
	}
	g.Define(g.Root(), sym)
	return nil
}

type generator struct {
	g     *grammar.Grammar
	terms map[string]bool
}

// symbol builds the grammar symbol for s. name is the rule name s is being
// defined under; rules for child schemas are prefixed with it.
func (gen *generator) symbol(s *Schema, name string) (grammar.Symbol, error) {
	if len(s.Enum) > 0 {
		alts := make([]any, 0, len(s.Enum))
		for _, e := range s.Enum {
			// Enum entries are raw JSON, which is exactly the text the
			// output must contain.
			alts = append(alts, grammar.Lit(string(e)))
		}
		return grammar.Alt(alts...), nil
	}

	switch typ := s.EffectiveType(); typ {
	case "object":
		if len(s.Properties) == 0 {
			return gen.term("object"), nil
		}
		parts := []any{grammar.Lit("{")}
		for i, p := range s.Properties {
			child := name + "_" + p.Name
			sym, err := gen.symbol(p, child)
			if err != nil {
				return nil, err
			}
			gen.g.Define(child, sym)

			if i > 0 {
				parts = append(parts, grammar.Lit(","))
			}
			key, err := json.Marshal(p.Name)
			if err != nil {
				return nil, err
			}
			parts = append(parts, grammar.Lit(string(key)), grammar.Lit(":"), gen.g.Ref(child))
		}
		parts = append(parts, grammar.Lit("}"))
		return grammar.Seq(parts...), nil
	case "array":
		if len(s.PrefixItems) == 0 && s.Items == nil {
			return gen.term("array"), nil
		}
		parts := []any{grammar.Lit("[")}
		for i, p := range s.PrefixItems {
			child := fmt.Sprintf("%s_%d", name, i)
			sym, err := gen.symbol(p, child)
			if err != nil {
				return nil, err
			}
			gen.g.Define(child, sym)

			if i > 0 {
				parts = append(parts, grammar.Lit(","))
			}
			parts = append(parts, gen.g.Ref(child))
		}
		if s.Items != nil {
			child := name + "_item"
			sym, err := gen.symbol(s.Items, child)
			if err != nil {
				return nil, err
			}
			gen.g.Define(child, sym)

			if len(s.PrefixItems) > 0 {
				parts = append(parts, gen.g.Any(grammar.Seq(grammar.Lit(","), gen.g.Ref(child))))
			} else {
				parts = append(parts, gen.g.Any(gen.g.Ref(child), grammar.Lit(",")))
			}
		}
		parts = append(parts, grammar.Lit("]"))
		return grammar.Seq(parts...), nil
	case "string", "number", "integer", "boolean", "null", "value":
		return gen.term(typ), nil
	default:
		return nil, fmt.Errorf("%s: unsupported type %q", name, typ)
	}
}

// term returns a reference to one of the shared JSON term rules, defining
// it and the terms it depends on the first time it is used.
func (gen *generator) term(name string) grammar.Symbol {
	gen.define(name)
	return gen.g.Ref(name)
}

// define adds the named JSON term to the table. The term bodies follow the
// RFC 7159 productions; value/object/array recurse into each other by
// name, which the rule table expresses without cyclic structures.
func (gen *generator) define(name string) {
	if gen.terms[name] {
		return
	}
	// Mark before building the body: object and value reach each other.
	gen.terms[name] = true

	g := gen.g
	var body grammar.Symbol
	switch name {
	case "value":
		body = grammar.Alt(
			gen.term("object"), gen.term("array"), gen.term("string"),
			gen.term("number"), gen.term("boolean"), gen.term("null"),
		)
	case "object":
		body = grammar.Seq(grammar.Lit("{"), g.Any(gen.term("kv"), grammar.Lit(",")), grammar.Lit("}"))
	case "kv":
		body = grammar.Seq(gen.term("string"), grammar.Lit(":"), gen.term("value"))
	case "array":
		body = grammar.Seq(grammar.Lit("["), g.Any(gen.term("value"), grammar.Lit(",")), grammar.Lit("]"))
	case "string":
		body = grammar.Seq(grammar.Lit(`"`), g.Any(gen.term("char")), grammar.Lit(`"`))
	case "char":
		body = grammar.Alt(grammar.Re(`[^"\\]`), grammar.Seq(grammar.Lit(`\`), grammar.Re(`["\\/bfnrt]`)))
	case "number":
		body = grammar.Seq(g.Maybe("-"), gen.term("integer"), g.Maybe(gen.term("frac")), g.Maybe(gen.term("exp")))
	case "integer":
		body = grammar.Alt(grammar.Lit("0"), grammar.Seq(grammar.Re("[1-9]"), grammar.Re("[0-9]*")))
	case "frac":
		body = grammar.Seq(grammar.Lit("."), grammar.Re("[0-9]+"))
	case "exp":
		body = grammar.Seq(grammar.Re("[eE]"), g.Maybe(grammar.Re("[-+]")), grammar.Re("[0-9]+"))
	case "boolean":
		body = grammar.Alt("true", "false")
	case "null":
		body = grammar.Lit("null")
	}
	g.Define(name, body)
}
