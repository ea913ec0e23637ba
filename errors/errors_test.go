package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseDecode,
				Kind:     KindInvalidInteger,
				Path:     []string{"server", "port"},
				GoType:   "string",
				Expected: "uint16",
				Detail:   "cannot convert",
			},
			contains: []string{"[decode]", "invalid_integer", "server.port", "string", "uint16", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseEncode,
				Kind:  KindUnsupportedRoot,
			},
			contains: []string{"[encode]", "unsupported_root"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseParse,
				Kind:   KindInvalidData,
				Detail: "bad line",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[parse]", "invalid_data", "bad line", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDecode,
		Kind:  KindFieldMissing,
		Path:  []string{"foo"},
	}

	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindFieldMissing}) {
		t.Error("Is should match on Phase and Kind")
	}
	if errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindFieldMissing}) {
		t.Error("Is should not match a different Phase")
	}
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindInvalidInteger}) {
		t.Error("Is should not match a different Kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("parse failure")
	err := New(PhaseDecode, KindInvalidFloat).
		Path("ratios", "alpha").
		Expected("float32").
		Value("abc").
		Cause(cause).
		Detail("not numeric").
		Build()

	if err.Phase != PhaseDecode || err.Kind != KindInvalidFloat {
		t.Errorf("unexpected phase/kind: %s/%s", err.Phase, err.Kind)
	}
	if got := strings.Join(err.Path, "."); got != "ratios.alpha" {
		t.Errorf("path = %q, want %q", got, "ratios.alpha")
	}
	if err.Value != "abc" {
		t.Errorf("value = %v, want abc", err.Value)
	}
	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindInvalidFloat}) {
		t.Error("built error did not match by phase/kind")
	}
	if err.Unwrap() != cause {
		t.Error("built error did not carry cause")
	}
}

func TestBuilder_DetailFormatting(t *testing.T) {
	err := New(PhaseEncode, KindInvalidData).
		Detail("value %d out of range for %s", 300, "uint8").
		Build()
	if !strings.Contains(err.Detail, "300") || !strings.Contains(err.Detail, "uint8") {
		t.Errorf("detail not formatted: %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		phase    Phase
		kind     Kind
		contains string
	}{
		{"unsupported_root", UnsupportedRoot(PhaseEncode, "int", "bare primitive"), PhaseEncode, KindUnsupportedRoot, "bare primitive"},
		{"field_missing", FieldMissing(PhaseDecode, nil, "field_b"), PhaseDecode, KindFieldMissing, `"field_b"`},
		{"invalid_boolean", InvalidBoolean(PhaseDecode, nil, "yes"), PhaseDecode, KindInvalidBoolean, `"yes"`},
		{"invalid_integer", InvalidInteger(PhaseDecode, nil, "x", "int32", nil), PhaseDecode, KindInvalidInteger, "int32"},
		{"invalid_float", InvalidFloat(PhaseDecode, nil, "x", "float64", nil), PhaseDecode, KindInvalidFloat, "float64"},
		{"unknown_variant", UnknownVariant(PhaseDecode, nil, "Maybe", "Switch"), PhaseDecode, KindUnknownVariant, `"Maybe"`},
		{"nil_pointer", NilPointer(PhaseEncode, nil, "*main.Conf"), PhaseEncode, KindNilPointer, "nil pointer"},
		{"invalid_key", InvalidKey(PhaseEncode, nil, ""), PhaseEncode, KindInvalidKey, "invalid key"},
		{"invalid_escape", InvalidEscape(3, `\uZZZZ`), PhaseParse, KindInvalidEscape, "line 3"},
		{"invalid_data", InvalidData(PhaseWrite, nil, "separator must be non-empty"), PhaseWrite, KindInvalidData, "separator"},
		{"wrap", Wrap(PhaseParse, KindInvalidData, errors.New("device gone"), "read input"), PhaseParse, KindInvalidData, "device gone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("phase = %s, want %s", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
			}
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("message %q does not contain %q", tt.err.Error(), tt.contains)
			}
		})
	}
}
