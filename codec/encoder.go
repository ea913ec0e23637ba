package codec

import (
	"reflect"
	"sort"

	"github.com/propkit/javaprops/errors"
)

// Encoder walks one typed value and emits its flat pair sequence through a
// PairWriter. Struct fields are written in declaration order and map
// entries in sorted key order, so output is deterministic for a given
// value.
type Encoder struct {
	compiler *Compiler
	tagKey   string
}

func NewEncoder() *Encoder {
	return &Encoder{
		compiler: NewCompiler(),
	}
}

func NewEncoderWithCompiler(c *Compiler) *Encoder {
	return &Encoder{compiler: c}
}

// SetTagKey configures the key under which a variant's active tag is
// written before its payload fields. Empty (the default) omits the tag.
func (e *Encoder) SetTagKey(key string) {
	e.tagKey = key
}

func (e *Encoder) Encode(v any, w PairWriter) error {
	if v == nil {
		return errors.New(errors.PhaseEncode, errors.KindNilPointer).
			Detail("cannot encode nil value").
			Build()
	}

	if variant, ok := v.(Variant); ok {
		return e.encodeVariant(variant, w)
	}

	rv := reflect.ValueOf(v)
	ct, err := e.compiler.CompileRoot(rv.Type())
	if err != nil {
		return err
	}

	return e.encodeRoot(ct, rv, w)
}

func (e *Encoder) encodeRoot(ct *CompiledType, rv reflect.Value, w PairWriter) error {
	switch ct.Kind {
	case KindOption:
		// An absent document encodes to an empty pair sequence.
		if rv.IsNil() {
			return nil
		}
		return e.encodeRoot(ct.Elem, rv.Elem(), w)

	case KindStruct:
		return e.encodeStruct(ct, rv, w)

	case KindMap:
		return e.encodeMap(ct, rv, w)

	default:
		return errors.UnsupportedRoot(errors.PhaseEncode, ct.GoType.String(),
			"a document root must be a struct, map, variant, or option of these")
	}
}

func (e *Encoder) encodeStruct(ct *CompiledType, rv reflect.Value, w PairWriter) error {
	for _, f := range ct.Fields {
		value, present, err := formatField(f.Type, rv.Field(f.Index), []string{f.Key})
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		if err := w.WritePair(f.Key, value); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeMap(ct *CompiledType, rv reflect.Value, w PairWriter) error {
	keys := make([]reflect.Value, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key())
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	for _, kv := range keys {
		key := kv.String()
		if key == "" {
			return errors.InvalidKey(errors.PhaseEncode, nil, key)
		}
		value, present, err := formatField(ct.Elem, rv.MapIndex(kv), []string{key})
		if err != nil {
			return err
		}
		if !present {
			continue
		}
		if err := w.WritePair(key, value); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeVariant(variant Variant, w PairWriter) error {
	rv := reflect.ValueOf(variant)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return nil
	}

	payload := variant.VariantPayload()
	if payload == nil {
		return errors.NilPointer(errors.PhaseEncode, nil, rv.Type().String())
	}

	pv := reflect.ValueOf(payload)
	for pv.Kind() == reflect.Ptr {
		if pv.IsNil() {
			return errors.NilPointer(errors.PhaseEncode, nil, pv.Type().String())
		}
		pv = pv.Elem()
	}
	if pv.Kind() != reflect.Struct {
		return errors.UnsupportedRoot(errors.PhaseEncode, pv.Type().String(),
			"variant payload must be a struct")
	}

	ct, err := e.compiler.CompileRoot(pv.Type())
	if err != nil {
		return err
	}

	if e.tagKey != "" {
		if err := w.WritePair(e.tagKey, variant.VariantTag()); err != nil {
			return err
		}
	}

	return e.encodeStruct(ct, pv, w)
}
