package codec

import (
	"reflect"

	"github.com/propkit/javaprops/errors"
)

// Decoder reconstructs a typed value of a statically known shape from a
// flattened key to value mapping. Duplicate keys are resolved upstream
// (last value wins); the decoder only ever sees the folded mapping.
type Decoder struct {
	compiler *Compiler
	tagKey   string
}

func NewDecoder() *Decoder {
	return &Decoder{
		compiler: NewCompiler(),
	}
}

func NewDecoderWithCompiler(c *Compiler) *Decoder {
	return &Decoder{compiler: c}
}

// SetTagKey configures the key that carries a variant's active tag.
// When set, targets implementing VariantSelector are resolved through it.
func (d *Decoder) SetTagKey(key string) {
	d.tagKey = key
}

// Decode fills v, which must be a non-nil pointer, from the mapping.
func (d *Decoder) Decode(doc map[string]string, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.New(errors.PhaseDecode, errors.KindNilPointer).
			Detail("decode target must be a non-nil pointer").
			Build()
	}

	if d.tagKey != "" {
		if sel, ok := v.(VariantSelector); ok {
			return d.decodeSelector(doc, sel)
		}
	}

	elem := rv.Elem()

	// A pointer target is an optional document: absent when no relevant
	// key occurs in the mapping.
	if elem.Kind() == reflect.Ptr {
		return d.decodeOptionalRoot(doc, elem)
	}

	ct, err := d.compiler.CompileRoot(elem.Type())
	if err != nil {
		return err
	}

	return d.decodeRoot(ct, doc, elem)
}

func (d *Decoder) decodeRoot(ct *CompiledType, doc map[string]string, rv reflect.Value) error {
	switch ct.Kind {
	case KindStruct:
		return d.decodeStruct(ct, doc, rv)

	case KindMap:
		return d.decodeMap(ct, doc, rv)

	default:
		return errors.UnsupportedRoot(errors.PhaseDecode, ct.GoType.String(),
			"a decode target must be a struct, map, or option of these")
	}
}

func (d *Decoder) decodeStruct(ct *CompiledType, doc map[string]string, rv reflect.Value) error {
	for _, f := range ct.Fields {
		raw, ok := doc[f.Key]
		if !ok {
			if f.Type.Kind == KindOption {
				continue
			}
			return errors.FieldMissing(errors.PhaseDecode, []string{f.Key}, f.Key)
		}
		if err := parseField(f.Type, raw, rv.Field(f.Index), []string{f.Key}); err != nil {
			return err
		}
	}
	// Keys not declared on the struct are ignored for forward compatibility.
	return nil
}

func (d *Decoder) decodeMap(ct *CompiledType, doc map[string]string, rv reflect.Value) error {
	m := reflect.MakeMapWithSize(ct.GoType, len(doc))
	for key, raw := range doc {
		value := reflect.New(ct.Elem.GoType).Elem()
		if err := parseField(ct.Elem, raw, value, []string{key}); err != nil {
			return err
		}
		m.SetMapIndex(reflect.ValueOf(key).Convert(ct.GoType.Key()), value)
	}
	rv.Set(m)
	return nil
}

func (d *Decoder) decodeOptionalRoot(doc map[string]string, rv reflect.Value) error {
	inner := rv.Type().Elem()
	ct, err := d.compiler.CompileRoot(inner)
	if err != nil {
		return err
	}

	if !d.relevant(ct, doc) {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}

	target := reflect.New(inner)
	if err := d.decodeRoot(ct, doc, target.Elem()); err != nil {
		return err
	}
	rv.Set(target)
	return nil
}

// relevant reports whether the mapping carries any key belonging to the
// wrapped shape: a declared field key for structs, any key at all for maps.
func (d *Decoder) relevant(ct *CompiledType, doc map[string]string) bool {
	switch ct.Kind {
	case KindStruct:
		for key := range doc {
			if _, ok := ct.FieldByKey(key); ok {
				return true
			}
		}
		return false
	case KindMap:
		return len(doc) > 0
	default:
		return false
	}
}

func (d *Decoder) decodeSelector(doc map[string]string, sel VariantSelector) error {
	tag, ok := doc[d.tagKey]
	if !ok {
		return errors.FieldMissing(errors.PhaseDecode, []string{d.tagKey}, d.tagKey)
	}

	payload, err := sel.SelectVariant(tag)
	if err != nil {
		return errors.UnknownVariant(errors.PhaseDecode, []string{d.tagKey}, tag, reflect.TypeOf(sel).String())
	}
	pv := reflect.ValueOf(payload)
	if pv.Kind() != reflect.Ptr || pv.IsNil() {
		return errors.New(errors.PhaseDecode, errors.KindNilPointer).
			Detail("SelectVariant must return a non-nil payload pointer").
			Build()
	}

	ct, err := d.compiler.CompileRoot(pv.Type().Elem())
	if err != nil {
		return err
	}
	if ct.Kind != KindStruct {
		return errors.UnsupportedRoot(errors.PhaseDecode, pv.Type().Elem().String(),
			"variant payload must be a struct")
	}

	return d.decodeStruct(ct, doc, pv.Elem())
}
