// Package types defines the compiled type structures for the codec.
//
// CompiledType holds precomputed metadata (kind, bit sizes, field keys,
// enum variant names) so that encoding and decoding avoid repeated
// reflection lookups on hot paths.
//
// # Key Types
//
//   - CompiledType: cached type program with resolved field keys
//   - Kind: type discriminator (primitive, enum, option, struct, map, variant)
//
// This package is internal to the codec.
package types
