// Package jsonschema builds grammar rules from JSON schemas, so a schema
// can constrain generated text to match its shape.
package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Schema holds the subset of JSON Schema the generator understands.
// Unknown fields are ignored during decoding.
type Schema struct {
	// Name is the property name. It is empty for the root schema and set
	// from the object key for child properties.
	Name string `json:"-"`

	// Type is the declared type, if any. See EffectiveType.
	Type string

	// Properties lists object properties in declaration order. The order
	// is load-bearing: it fixes the key order of constrained output.
	Properties []*Schema

	// PrefixItems types each position of a tuple.
	PrefixItems []*Schema

	// Items is the schema for the remaining items of an array. It is nil
	// when absent or explicitly "null"/"false", and the empty Schema when
	// "true".
	Items *Schema

	// Enum restricts the value to one of these JSON literals.
	Enum []json.RawMessage
}

func (s *Schema) UnmarshalJSON(data []byte) error {
	type S Schema
	w := struct {
		Properties props
		Items      items
		*S
	}{
		S: (*S)(s),
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	if w.Items.set {
		s.Items = &w.Items.Schema
	}
	s.Properties = w.Properties
	return nil
}

type items struct {
	Schema
	set bool
}

func (s *items) UnmarshalJSON(data []byte) error {
	switch b := data[0]; b {
	case 't':
		*s = items{set: true}
	case '{':
		type I items
		if err := json.Unmarshal(data, (*I)(s)); err != nil {
			return err
		}
		s.set = true
	case 'n', 'f':
	default:
		return errors.New("invalid Items")
	}
	return nil
}

// EffectiveType returns the type the generator should treat s as: Type
// when declared, otherwise inferred from shape ("object" with Properties,
// "array" with Items or PrefixItems, "value" when bare). Never empty.
func (s *Schema) EffectiveType() string {
	if s.Type == "" {
		if len(s.Properties) > 0 {
			return "object"
		}
		if len(s.PrefixItems) > 0 || s.Items != nil {
			return "array"
		}
		return "value"
	}
	return s.Type
}

// props decodes a JSON object into an ordered property list. A plain
// map[string]*Schema would lose declaration order, so the keys are read
// one at a time off a Decoder.
type props []*Schema

var _ json.Unmarshaler = (*props)(nil)

func (v *props) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if data[0] != '{' {
		return errors.New("expected object")
	}

	d := json.NewDecoder(bytes.NewReader(data))
	t, err := d.Token()
	if err != nil {
		return err
	}
	if t != json.Delim('{') {
		return errors.New("expected object")
	}
	for d.More() {
		t, err := d.Token()
		if err != nil {
			return err
		}
		if t == json.Delim('}') {
			return nil
		}
		s := &Schema{
			Name: t.(string),
		}
		if err := d.Decode(s); err != nil {
			return err
		}
		*v = append(*v, s)
	}
	return nil
}
