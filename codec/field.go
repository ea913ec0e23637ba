package codec

import (
	"reflect"
	"strconv"

	"github.com/propkit/javaprops/errors"
)

// formatField converts one field-grammar value to its single-string form.
// The second return is false when an option value is absent and no pair
// should be emitted at all.
func formatField(ct *CompiledType, v reflect.Value, path []string) (string, bool, error) {
	switch {
	case ct.Kind == KindOption:
		if v.IsNil() {
			return "", false, nil
		}
		return formatField(ct.Elem, v.Elem(), path)

	case ct.Kind == KindBool:
		return strconv.FormatBool(v.Bool()), true, nil

	case ct.Kind.IsSigned():
		return strconv.FormatInt(v.Int(), 10), true, nil

	case ct.Kind.IsInteger():
		return strconv.FormatUint(v.Uint(), 10), true, nil

	case ct.Kind.IsFloat():
		// Shortest form that parses back to the same value.
		return strconv.FormatFloat(v.Float(), 'g', -1, ct.Bits), true, nil

	case ct.Kind == KindString:
		return v.String(), true, nil

	case ct.Kind == KindEnum:
		return formatEnum(ct, v, path)

	default:
		return "", false, errors.Unsupported(errors.PhaseEncode, "field kind: "+ct.Kind.String())
	}
}

func formatEnum(ct *CompiledType, v reflect.Value, path []string) (string, bool, error) {
	var idx int64
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		idx = int64(v.Uint())
	default:
		idx = v.Int()
	}
	if idx < 0 || idx >= int64(len(ct.Variants)) {
		return "", false, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Path(path...).
			GoType(ct.GoType.String()).
			Detail("enum ordinal %d out of range (variants %d)", idx, len(ct.Variants)).
			Build()
	}
	return ct.Variants[idx], true, nil
}

// parseField converts one raw string into the field-grammar value v. The
// key's presence has already been established; option values allocate and
// fill their element.
func parseField(ct *CompiledType, raw string, v reflect.Value, path []string) error {
	switch {
	case ct.Kind == KindOption:
		// An empty value is an absent option, not an empty wrapped value.
		if raw == "" {
			v.Set(reflect.Zero(ct.GoType))
			return nil
		}
		elem := reflect.New(ct.Elem.GoType)
		if err := parseField(ct.Elem, raw, elem.Elem(), path); err != nil {
			return err
		}
		v.Set(elem)
		return nil

	case ct.Kind == KindBool:
		// Exact literal match only; strconv.ParseBool is wider than the format.
		switch raw {
		case "true":
			v.SetBool(true)
		case "false":
			v.SetBool(false)
		default:
			return errors.InvalidBoolean(errors.PhaseDecode, path, raw)
		}
		return nil

	case ct.Kind.IsSigned():
		n, err := strconv.ParseInt(raw, 10, ct.Bits)
		if err != nil {
			return errors.InvalidInteger(errors.PhaseDecode, path, raw, ct.Kind.String(), err)
		}
		v.SetInt(n)
		return nil

	case ct.Kind.IsInteger():
		n, err := strconv.ParseUint(raw, 10, ct.Bits)
		if err != nil {
			return errors.InvalidInteger(errors.PhaseDecode, path, raw, ct.Kind.String(), err)
		}
		v.SetUint(n)
		return nil

	case ct.Kind.IsFloat():
		f, err := strconv.ParseFloat(raw, ct.Bits)
		if err != nil {
			return errors.InvalidFloat(errors.PhaseDecode, path, raw, ct.Kind.String(), err)
		}
		v.SetFloat(f)
		return nil

	case ct.Kind == KindString:
		v.SetString(raw)
		return nil

	case ct.Kind == KindEnum:
		for i, name := range ct.Variants {
			if name == raw {
				switch v.Kind() {
				case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
					v.SetUint(uint64(i))
				default:
					v.SetInt(int64(i))
				}
				return nil
			}
		}
		return errors.UnknownVariant(errors.PhaseDecode, path, raw, ct.GoType.String())

	default:
		return errors.Unsupported(errors.PhaseDecode, "field kind: "+ct.Kind.String())
	}
}
