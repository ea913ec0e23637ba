package codec

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"go.uber.org/zap"

	"github.com/propkit/javaprops/errors"
)

var (
	enumType    = reflect.TypeOf((*Enum)(nil)).Elem()
	variantType = reflect.TypeOf((*Variant)(nil)).Elem()
)

// Compiler turns Go types into cached encode/decode programs. The root
// grammar (struct, map, variant, option of these) and the field grammar
// (primitive, enum, option of these) are enforced here, so traversal code
// never meets an illegal shape.
type Compiler struct {
	cache sync.Map // cacheKey -> *CompiledType
}

type cacheKey struct {
	goType reflect.Type
	root   bool
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// CompileRoot compiles a type legal as an entire document.
func (c *Compiler) CompileRoot(goType reflect.Type) (*CompiledType, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindNilPointer).
			Detail("Go type cannot be nil").
			Build()
	}

	key := cacheKey{goType: goType, root: true}
	if cached, ok := c.cache.Load(key); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := c.compileRoot(goType)
	if err != nil {
		return nil, err
	}

	c.cache.Store(key, ct)
	Logger().Debug("compiled root type",
		zap.Stringer("type", goType),
		zap.Stringer("kind", ct.Kind))
	return ct, nil
}

// CompileField compiles a type legal as a single field's value.
func (c *Compiler) CompileField(goType reflect.Type) (*CompiledType, error) {
	if goType == nil {
		return nil, errors.New(errors.PhaseCompile, errors.KindNilPointer).
			Detail("Go type cannot be nil").
			Build()
	}

	key := cacheKey{goType: goType}
	if cached, ok := c.cache.Load(key); ok {
		return cached.(*CompiledType), nil
	}

	ct, err := c.compileField(goType, nil)
	if err != nil {
		return nil, err
	}

	c.cache.Store(key, ct)
	Logger().Debug("compiled field type",
		zap.Stringer("type", goType),
		zap.Stringer("kind", ct.Kind))
	return ct, nil
}

func (c *Compiler) compileRoot(goType reflect.Type) (*CompiledType, error) {
	if isVariantType(goType) {
		return &CompiledType{GoType: goType, Kind: KindVariant}, nil
	}

	switch goType.Kind() {
	case reflect.Ptr:
		elem, err := c.compileRoot(goType.Elem())
		if err != nil {
			return nil, err
		}
		if elem.Kind == KindOption {
			return nil, errors.UnsupportedRoot(errors.PhaseCompile, goType.String(),
				"option of option is not supported at document root")
		}
		return &CompiledType{GoType: goType, Elem: elem, Kind: KindOption}, nil

	case reflect.Struct:
		return c.compileStruct(goType)

	case reflect.Map:
		return c.compileMap(goType)

	default:
		return nil, errors.UnsupportedRoot(errors.PhaseCompile, goType.String(),
			"a document root must be a struct, map, variant, or option of these")
	}
}

func (c *Compiler) compileStruct(goType reflect.Type) (*CompiledType, error) {
	fields := make([]CompiledField, 0, goType.NumField())

	for i := 0; i < goType.NumField(); i++ {
		f := goType.Field(i)
		if !f.IsExported() {
			continue
		}

		key := fieldKey(f)
		if key == "" {
			continue
		}

		fieldPath := []string{key}
		ft, err := c.compileField(f.Type, fieldPath)
		if err != nil {
			return nil, err
		}

		fields = append(fields, CompiledField{
			Type:  ft,
			Name:  f.Name,
			Key:   key,
			Index: i,
		})
	}

	return &CompiledType{
		GoType: goType,
		Fields: fields,
		Kind:   KindStruct,
	}, nil
}

func (c *Compiler) compileMap(goType reflect.Type) (*CompiledType, error) {
	if goType.Key().Kind() != reflect.String {
		return nil, errors.TypeMismatch(errors.PhaseCompile, nil, goType.String(), "map with string keys")
	}

	elem, err := c.compileField(goType.Elem(), []string{"[value]"})
	if err != nil {
		return nil, err
	}

	return &CompiledType{
		GoType: goType,
		Elem:   elem,
		Kind:   KindMap,
	}, nil
}

func (c *Compiler) compileField(goType reflect.Type, path []string) (*CompiledType, error) {
	// Enum detection comes first: enums have an integer underlying kind
	// that would otherwise compile as a plain integer.
	if variants, ok := enumVariants(goType); ok {
		switch goType.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		default:
			return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(), "integer-backed enum")
		}
		return &CompiledType{GoType: goType, Variants: variants, Kind: KindEnum}, nil
	}

	switch goType.Kind() {
	case reflect.Ptr:
		elem, err := c.compileField(goType.Elem(), path)
		if err != nil {
			return nil, err
		}
		if elem.Kind == KindOption {
			return nil, errors.New(errors.PhaseCompile, errors.KindUnsupported).
				Path(path...).
				GoType(goType.String()).
				Detail("option of option is not supported").
				Build()
		}
		return &CompiledType{GoType: goType, Elem: elem, Kind: KindOption}, nil

	case reflect.Bool:
		return &CompiledType{GoType: goType, Kind: KindBool}, nil
	case reflect.Int:
		return &CompiledType{GoType: goType, Kind: KindInt, Bits: strconv.IntSize}, nil
	case reflect.Int8:
		return &CompiledType{GoType: goType, Kind: KindInt8, Bits: 8}, nil
	case reflect.Int16:
		return &CompiledType{GoType: goType, Kind: KindInt16, Bits: 16}, nil
	case reflect.Int32:
		return &CompiledType{GoType: goType, Kind: KindInt32, Bits: 32}, nil
	case reflect.Int64:
		return &CompiledType{GoType: goType, Kind: KindInt64, Bits: 64}, nil
	case reflect.Uint:
		return &CompiledType{GoType: goType, Kind: KindUint, Bits: strconv.IntSize}, nil
	case reflect.Uint8:
		return &CompiledType{GoType: goType, Kind: KindUint8, Bits: 8}, nil
	case reflect.Uint16:
		return &CompiledType{GoType: goType, Kind: KindUint16, Bits: 16}, nil
	case reflect.Uint32:
		return &CompiledType{GoType: goType, Kind: KindUint32, Bits: 32}, nil
	case reflect.Uint64:
		return &CompiledType{GoType: goType, Kind: KindUint64, Bits: 64}, nil
	case reflect.Float32:
		return &CompiledType{GoType: goType, Kind: KindFloat32, Bits: 32}, nil
	case reflect.Float64:
		return &CompiledType{GoType: goType, Kind: KindFloat64, Bits: 64}, nil
	case reflect.String:
		return &CompiledType{GoType: goType, Kind: KindString}, nil

	case reflect.Struct, reflect.Map:
		// The flat format has no nesting; reject rather than silently
		// flatten with synthetic key prefixes.
		return nil, errors.New(errors.PhaseCompile, errors.KindUnsupportedRoot).
			Path(path...).
			GoType(goType.String()).
			Detail("nested %s values are not supported as field values", goType.Kind()).
			Build()

	default:
		return nil, errors.TypeMismatch(errors.PhaseCompile, path, goType.String(),
			"primitive, enum, or option of these")
	}
}

// fieldKey resolves the flat-pair key for a struct field: the properties
// tag if present, otherwise the snake_case form of the Go field name.
// A "-" tag skips the field.
func fieldKey(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("properties"); ok {
		if tag == "-" {
			return ""
		}
		if tag != "" {
			return tag
		}
	}
	return toSnakeCase(f.Name)
}

func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteByte('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func isVariantType(goType reflect.Type) bool {
	return goType.Implements(variantType) ||
		(goType.Kind() != reflect.Ptr && reflect.PointerTo(goType).Implements(variantType))
}

// enumVariants returns the declared names of a unit enum type, accepting
// both value and pointer receivers on EnumVariants.
func enumVariants(goType reflect.Type) ([]string, bool) {
	if goType.Implements(enumType) {
		return reflect.Zero(goType).Interface().(Enum).EnumVariants(), true
	}
	if goType.Kind() != reflect.Ptr && reflect.PointerTo(goType).Implements(enumType) {
		return reflect.New(goType).Interface().(Enum).EnumVariants(), true
	}
	return nil, false
}
