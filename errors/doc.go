// Package errors provides structured error types for the javaprops library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type and expected form,
// the offending raw value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidInteger).
//		Path("field_b").
//		Expected("int64").
//		Value("notanumber").
//		Detail("cannot parse as base-10 integer").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.FieldMissing(errors.PhaseDecode, nil, "field_b")
//	err := errors.InvalidInteger(errors.PhaseDecode, path, raw, "uint16", cause)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
