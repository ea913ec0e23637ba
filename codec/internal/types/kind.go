package types

type Kind uint8

const (
	KindBool Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindString
	KindEnum
	KindOption
	KindStruct
	KindMap
	KindVariant
)

var kindNames = [...]string{
	KindBool:    "bool",
	KindInt:     "int",
	KindInt8:    "int8",
	KindInt16:   "int16",
	KindInt32:   "int32",
	KindInt64:   "int64",
	KindUint:    "uint",
	KindUint8:   "uint8",
	KindUint16:  "uint16",
	KindUint32:  "uint32",
	KindUint64:  "uint64",
	KindFloat32: "float32",
	KindFloat64: "float64",
	KindString:  "string",
	KindEnum:    "enum",
	KindOption:  "option",
	KindStruct:  "struct",
	KindMap:     "map",
	KindVariant: "variant",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsInteger reports whether the kind belongs to the integer families.
func (k Kind) IsInteger() bool {
	return k >= KindInt && k <= KindUint64
}

// IsSigned reports whether an integer kind is signed.
func (k Kind) IsSigned() bool {
	return k >= KindInt && k <= KindInt64
}

// IsFloat reports whether the kind is a float family member.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}
