// Package codec provides the typed encoding and decoding layer between Go
// values and flat key/value pair sequences.
//
// # Two-Level Grammar
//
// The .properties format has no nesting, so the traversal is not a naive
// recursive visitor. Two distinct grammars are enforced at the type
// boundary:
//
//	Root grammar   struct, map[string]T, variant, option of these
//	Field grammar  bool, int/uint families, float32/64, string, enum,
//	               option of these
//
// Nesting one compound inside another is rejected at compile time rather
// than silently flattened with synthetic key prefixes.
//
// # Key Types
//
//	Encoder       - Walks a value and emits pairs through a PairWriter
//	Decoder       - Fills a value from a flattened key->value mapping
//	Compiler      - Pre-compiles type programs
//	CompiledType  - Cached type representation
//
// # Encoding Flow
//
//  1. Compiler.CompileRoot(goType) → CompiledType  (cached)
//  2. Encoder.Encode(value, pairWriter)
//
// Struct fields are emitted in declaration order and map entries in sorted
// key order, so output is deterministic.
//
// # Decoding Flow
//
//  1. Fold the raw pair sequence into map[string]string (last key wins)
//  2. Decoder.Decode(mapping, &value)
//
// Keys not declared on a struct target are ignored; a map target consumes
// every key.
//
// # Optional Values
//
// Pointers model optionality. A nil pointer field emits no pair; a missing
// key decodes a pointer field to nil and fails a non-pointer field with
// field_missing. A pointer document root encodes absence as empty output.
//
// # Enums and Variants
//
// Integer-backed types implementing Enum encode as the active variant's
// declared name and decode by exact, case-sensitive name match. Types
// implementing Variant carry a struct payload whose fields are emitted at
// root level; the active tag has no structural slot in the flat format and
// is only written under an explicitly configured tag key (see
// Encoder.SetTagKey and Decoder.SetTagKey).
//
// # Field Conversion Rules
//
//	Type      Encoded form
//	───────────────────────────────────────────────
//	bool      "true" or "false" (exact match on decode)
//	integers  canonical base-10, bit-size range checked
//	floats    strconv 'g' shortest round-trip form
//	string    verbatim (escaping belongs to the line syntax layer)
//	enum      declared variant name
//	option    absent ⇒ no pair at all
//
// Conversions are atomic: a value converts fully or the operation fails
// with a structured error; there is no best-effort truncation.
//
// # Thread Safety
//
// Compiler and CompiledType are safe for concurrent use. Encoder and
// Decoder hold no per-call state beyond configuration and may be shared
// across goroutines operating on independent values.
//
// # Error Handling
//
// Errors use the structured types from the errors package:
//
//	[decode] invalid_integer at field_b: expected int64 - "notanumber" is not a valid int64
//	[encode] unsupported_root: Go type int - a document root must be a struct, map, variant, or option of these
package codec
