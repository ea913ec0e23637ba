package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse   Phase = "parse"   // line-syntax scanning
	PhaseCompile Phase = "compile" // type program compilation
	PhaseEncode  Phase = "encode"  // Go value to pairs
	PhaseDecode  Phase = "decode"  // pairs to Go value
	PhaseWrite   Phase = "write"   // line-syntax output
)

// Kind categorizes the error
type Kind string

const (
	KindUnsupportedRoot Kind = "unsupported_root"
	KindFieldMissing    Kind = "field_missing"
	KindInvalidBoolean  Kind = "invalid_boolean"
	KindInvalidInteger  Kind = "invalid_integer"
	KindInvalidFloat    Kind = "invalid_float"
	KindUnknownVariant  Kind = "unknown_variant"
	KindTypeMismatch    Kind = "type_mismatch"
	KindNilPointer      Kind = "nil_pointer"
	KindInvalidKey      Kind = "invalid_key"
	KindInvalidEscape   Kind = "invalid_escape"
	KindInvalidData     Kind = "invalid_data"
	KindUnsupported     Kind = "unsupported"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value    any
	Cause    error
	Phase    Phase
	Kind     Kind
	GoType   string
	Expected string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.Expected != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.Expected != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", expected ")
			b.WriteString(e.Expected)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.Expected != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// Expected sets the expected type or literal form
func (b *Builder) Expected(t string) *Builder {
	b.err.Expected = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// UnsupportedRoot creates an error for a value shape the flat format cannot
// express at document root
func UnsupportedRoot(phase Phase, goType, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedRoot,
		GoType: goType,
		Detail: detail,
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, expected string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		GoType:   goType,
		Expected: expected,
	}
}

// FieldMissing creates a missing field error
func FieldMissing(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// InvalidBoolean creates a field conversion error for boolean fields
func InvalidBoolean(phase Phase, path []string, raw string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidBoolean,
		Path:     path,
		Expected: "bool",
		Detail:   fmt.Sprintf("%q is not \"true\" or \"false\"", raw),
		Value:    raw,
	}
}

// InvalidInteger creates a field conversion error for integer fields
func InvalidInteger(phase Phase, path []string, raw, expected string, cause error) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidInteger,
		Path:     path,
		Expected: expected,
		Detail:   fmt.Sprintf("%q is not a valid %s", raw, expected),
		Value:    raw,
		Cause:    cause,
	}
}

// InvalidFloat creates a field conversion error for float fields
func InvalidFloat(phase Phase, path []string, raw, expected string, cause error) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidFloat,
		Path:     path,
		Expected: expected,
		Detail:   fmt.Sprintf("%q is not a valid %s", raw, expected),
		Value:    raw,
		Cause:    cause,
	}
}

// UnknownVariant creates an error for an enumeration name with no match
func UnknownVariant(phase Phase, path []string, name, enumType string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindUnknownVariant,
		Path:     path,
		Expected: enumType,
		Detail:   fmt.Sprintf("unknown variant %q", name),
		Value:    name,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, path []string, goType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Path:   path,
		GoType: goType,
		Detail: "nil pointer",
	}
}

// InvalidKey creates an error for a key the flat-pair boundary disallows
func InvalidKey(phase Phase, path []string, key string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidKey,
		Path:   path,
		Detail: fmt.Sprintf("invalid key %q", key),
		Value:  key,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// InvalidEscape creates an error for a malformed escape sequence
func InvalidEscape(line int, seq string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidEscape,
		Detail: fmt.Sprintf("line %d: invalid escape sequence %q", line, seq),
		Value:  seq,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
