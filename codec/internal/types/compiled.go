package types

import (
	"reflect"
)

// CompiledType is a precomputed encode/decode program for one Go type.
type CompiledType struct {
	GoType   reflect.Type
	Elem     *CompiledType // option element or map value type
	Fields   []Field
	Variants []string // declared names for enum kinds
	Bits     int      // integer/float bit size (0 for non-numeric kinds)
	Kind     Kind
}

// Field is one declared struct field with its resolved pair key.
type Field struct {
	Type  *CompiledType
	Name  string // Go field name
	Key   string // flat-pair key
	Index int    // reflect field index
}

// FieldByKey returns the declared field for a pair key, if any.
func (ct *CompiledType) FieldByKey(key string) (Field, bool) {
	for _, f := range ct.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
