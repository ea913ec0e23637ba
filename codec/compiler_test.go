package codec

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/propkit/javaprops/errors"
)

type workload struct {
	RecordCount    uint   `properties:"recordcount"`
	WorkloadClass  string `properties:"workload"`
	ReadAllFields  bool   `properties:"readallfields"`
	ReadProportion float32
	Comment        string `properties:"-"`
	internal       int
}

type light int

const (
	lightOn light = iota
	lightOff
)

func (light) EnumVariants() []string { return []string{"On", "Off"} }

func TestCompileRoot_Struct(t *testing.T) {
	c := NewCompiler()
	ct, err := c.CompileRoot(reflect.TypeOf(workload{}))
	if err != nil {
		t.Fatalf("CompileRoot failed: %v", err)
	}

	if ct.Kind != KindStruct {
		t.Fatalf("kind = %s, want struct", ct.Kind)
	}

	wantKeys := []string{"recordcount", "workload", "readallfields", "read_proportion"}
	if len(ct.Fields) != len(wantKeys) {
		t.Fatalf("compiled %d fields, want %d", len(ct.Fields), len(wantKeys))
	}
	for i, key := range wantKeys {
		if ct.Fields[i].Key != key {
			t.Errorf("field %d key = %q, want %q", i, ct.Fields[i].Key, key)
		}
	}
}

func TestCompileRoot_FieldKinds(t *testing.T) {
	type shapes struct {
		B   bool
		I8  int8
		I16 int16
		I32 int32
		I64 int64
		I   int
		U8  uint8
		U16 uint16
		U32 uint32
		U64 uint64
		U   uint
		F32 float32
		F64 float64
		S   string
		E   light
		O   *string
	}

	wantKinds := []TypeKind{
		KindBool, KindInt8, KindInt16, KindInt32, KindInt64, KindInt,
		KindUint8, KindUint16, KindUint32, KindUint64, KindUint,
		KindFloat32, KindFloat64, KindString, KindEnum, KindOption,
	}

	ct, err := NewCompiler().CompileRoot(reflect.TypeOf(shapes{}))
	if err != nil {
		t.Fatalf("CompileRoot failed: %v", err)
	}
	if len(ct.Fields) != len(wantKinds) {
		t.Fatalf("compiled %d fields, want %d", len(ct.Fields), len(wantKinds))
	}
	for i, want := range wantKinds {
		if got := ct.Fields[i].Type.Kind; got != want {
			t.Errorf("field %s kind = %s, want %s", ct.Fields[i].Name, got, want)
		}
	}
}

func TestCompileRoot_Map(t *testing.T) {
	ct, err := NewCompiler().CompileRoot(reflect.TypeOf(map[string]int{}))
	if err != nil {
		t.Fatalf("CompileRoot failed: %v", err)
	}
	if ct.Kind != KindMap {
		t.Fatalf("kind = %s, want map", ct.Kind)
	}
	if ct.Elem.Kind != KindInt {
		t.Errorf("value kind = %s, want int", ct.Elem.Kind)
	}
}

func TestCompileRoot_OptionOfStruct(t *testing.T) {
	ct, err := NewCompiler().CompileRoot(reflect.TypeOf(&workload{}))
	if err != nil {
		t.Fatalf("CompileRoot failed: %v", err)
	}
	if ct.Kind != KindOption || ct.Elem.Kind != KindStruct {
		t.Fatalf("kind = %s/%s, want option/struct", ct.Kind, ct.Elem.Kind)
	}
}

func TestCompileRoot_Enum(t *testing.T) {
	ct, err := NewCompiler().CompileRoot(reflect.TypeOf(struct{ Light light }{}))
	if err != nil {
		t.Fatalf("CompileRoot failed: %v", err)
	}
	f := ct.Fields[0]
	if f.Type.Kind != KindEnum {
		t.Fatalf("kind = %s, want enum", f.Type.Kind)
	}
	if got := f.Type.Variants; len(got) != 2 || got[0] != "On" || got[1] != "Off" {
		t.Errorf("variants = %v, want [On Off]", got)
	}
}

func TestCompileRoot_Rejections(t *testing.T) {
	type nestedStruct struct {
		Inner workload
	}
	type nestedMap struct {
		Inner map[string]string
	}
	type sliceField struct {
		Items []int
	}
	type doubleOption struct {
		V **int
	}

	tests := []struct {
		name   string
		goType reflect.Type
		kind   errors.Kind
	}{
		{"bare int root", reflect.TypeOf(0), errors.KindUnsupportedRoot},
		{"bare string root", reflect.TypeOf(""), errors.KindUnsupportedRoot},
		{"bare enum root", reflect.TypeOf(lightOn), errors.KindUnsupportedRoot},
		{"option of int root", reflect.TypeOf(new(int)), errors.KindUnsupportedRoot},
		{"nested struct field", reflect.TypeOf(nestedStruct{}), errors.KindUnsupportedRoot},
		{"nested map field", reflect.TypeOf(nestedMap{}), errors.KindUnsupportedRoot},
		{"slice field", reflect.TypeOf(sliceField{}), errors.KindTypeMismatch},
		{"option of option field", reflect.TypeOf(doubleOption{}), errors.KindUnsupported},
		{"non-string map keys", reflect.TypeOf(map[int]string{}), errors.KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCompiler().CompileRoot(tt.goType)
			if err == nil {
				t.Fatal("CompileRoot should have failed")
			}
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseCompile, Kind: tt.kind}) {
				t.Errorf("error = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestCompileRoot_Cached(t *testing.T) {
	c := NewCompiler()
	first, err := c.CompileRoot(reflect.TypeOf(workload{}))
	if err != nil {
		t.Fatalf("CompileRoot failed: %v", err)
	}
	second, err := c.CompileRoot(reflect.TypeOf(workload{}))
	if err != nil {
		t.Fatalf("CompileRoot failed: %v", err)
	}
	if first != second {
		t.Error("repeated compilation should return the cached program")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FieldA", "field_a"},
		{"RecordCount", "record_count"},
		{"URL", "u_r_l"},
		{"Simple", "simple"},
	}
	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
