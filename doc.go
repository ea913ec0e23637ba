// Package javaprops converts between strongly-typed Go values and the
// flat, line-oriented Java .properties key/value text format.
//
//	field_a: a value
//	field_b: 100
//	field_c: true
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	javaprops/           Root package with Marshal/Unmarshal and Encoder/Decoder
//	├── codec/           Typed encoding/decoding between Go values and flat pairs
//	├── props/           .properties line-syntax scanner and writer
//	├── errors/          Structured error types for diagnostics
//	└── cmd/propview/    CLI for inspecting and converting properties files
//
// The codec and the line syntax meet at a narrow boundary: an ordered
// sequence of raw key/value string pairs. The codec never inspects line
// syntax; the props layer never inspects types.
//
// # Decoding a struct
//
// Integer, float, bool, and string fields are parsed from their canonical
// text forms, giving a typed interface on top of the untyped format:
//
//	type Data struct {
//		FieldA string
//		FieldB uint
//		FieldC bool
//	}
//
//	var data Data
//	err := javaprops.Unmarshal([]byte(text), &data)
//
// Field keys default to the snake_case form of the field name; a
// `properties:"name"` tag overrides, and `properties:"-"` skips a field.
// Keys present in the input but not declared on the struct are ignored.
// Duplicate keys follow the format's load semantics: the last value wins.
//
// # Encoding a struct
//
//	data := Data{FieldA: "value", FieldB: 100, FieldC: true}
//	out, err := javaprops.Marshal(data)
//	// field_a=value\nfield_b=100\nfield_c=true\n
//
// Struct fields encode in declaration order; map entries encode in sorted
// key order, so output is deterministic.
//
// # Optional fields
//
// Pointer fields model optionality: a nil pointer emits no pair, and a
// missing key decodes to nil. Missing keys for non-pointer fields fail
// with a field_missing error.
//
// # Enumerations
//
// Integer-backed types implementing codec.Enum encode as the declared
// variant name and decode by exact name match:
//
//	type Switch int
//
//	const (
//		On Switch = iota
//		Off
//	)
//
//	func (Switch) EnumVariants() []string { return []string{"On", "Off"} }
//
// # Tagged variants
//
// Types implementing codec.Variant carry a struct payload whose fields
// are emitted at document root. The flat format has no structural slot
// for the active tag; configure one explicitly to round-trip it:
//
//	out, _ := javaprops.Marshal(v, javaprops.WithTagKey("type"))
//	// type=Var1\nkey=1000\n
//
// Without a tag key the caller resolves the variant out of band and
// decodes directly into the chosen payload struct.
//
// # Nesting
//
// The format is flat: struct, map, and variant values are only legal as an
// entire document, and fields hold primitives, enums, or options of these.
// Nested compound shapes are rejected with a typed error rather than
// silently flattened.
package javaprops
