package codec

import (
	"github.com/propkit/javaprops/codec/internal/types"
)

type TypeKind = types.Kind

const (
	KindBool    = types.KindBool
	KindInt     = types.KindInt
	KindInt8    = types.KindInt8
	KindInt16   = types.KindInt16
	KindInt32   = types.KindInt32
	KindInt64   = types.KindInt64
	KindUint    = types.KindUint
	KindUint8   = types.KindUint8
	KindUint16  = types.KindUint16
	KindUint32  = types.KindUint32
	KindUint64  = types.KindUint64
	KindFloat32 = types.KindFloat32
	KindFloat64 = types.KindFloat64
	KindString  = types.KindString
	KindEnum    = types.KindEnum
	KindOption  = types.KindOption
	KindStruct  = types.KindStruct
	KindMap     = types.KindMap
	KindVariant = types.KindVariant
)

type CompiledType = types.CompiledType
type CompiledField = types.Field

// PairWriter receives encoded key/value pairs in document order.
// The implementation owns all line-syntax concerns, including escaping.
type PairWriter interface {
	WritePair(key, value string) error
}

// Enum is implemented by unit enumeration types that encode as the name of
// the active variant. The implementing type must have an integer underlying
// kind; the value is the index into EnumVariants.
type Enum interface {
	EnumVariants() []string
}

// Variant is implemented by closed unions whose active case carries a
// struct payload. Encoding emits the payload's fields; the tag itself has
// no structural slot in the flat format and is only written when a tag key
// is configured.
type Variant interface {
	VariantTag() string
	VariantPayload() any
}

// VariantSelector resolves decode targets from a tag read out of the
// document's configured tag key. SelectVariant returns a pointer to the
// payload struct the decoder should fill for the given tag, and records
// the tag on the receiver.
type VariantSelector interface {
	Variant
	SelectVariant(tag string) (any, error)
}
