package abi

import (
	"reflect"
	"testing"

	"github.com/weaveffi/weaveffi/ir"
)

func TestSymbolName(t *testing.T) {
	if got := SymbolName("calculator", "add"); got != "weaveffi_calculator_add" {
		t.Errorf("got %q", got)
	}
}

func TestParamFragment_Primitive(t *testing.T) {
	frag := ParamFragment(ir.Param{Name: "a", Ty: ir.I32})
	if !reflect.DeepEqual(frag.Signature, []string{"int32_t a"}) {
		t.Errorf("signature = %v", frag.Signature)
	}
	if !reflect.DeepEqual(frag.Args, []string{"a"}) {
		t.Errorf("args = %v", frag.Args)
	}
}

func TestParamFragment_String(t *testing.T) {
	frag := ParamFragment(ir.Param{Name: "s", Ty: ir.StringUtf8})
	want := []string{"const uint8_t* s_ptr", "size_t s_len"}
	if !reflect.DeepEqual(frag.Signature, want) {
		t.Errorf("signature = %v, want %v", frag.Signature, want)
	}
	if !reflect.DeepEqual(frag.Args, []string{"s_ptr", "s_len"}) {
		t.Errorf("args = %v", frag.Args)
	}
}

func TestReturn(t *testing.T) {
	i32 := ir.I32
	bytes := ir.Bytes
	str := ir.StringUtf8

	if shape := Return(nil); shape.CType != "void" || shape.NeedsOutLen {
		t.Errorf("nil return = %+v", shape)
	}
	if shape := Return(&i32); shape.CType != "int32_t" || shape.NeedsOutLen {
		t.Errorf("i32 return = %+v", shape)
	}
	if shape := Return(&str); shape.CType != "const char*" || shape.NeedsOutLen {
		t.Errorf("string return = %+v", shape)
	}
	if shape := Return(&bytes); shape.CType != "const uint8_t*" || !shape.NeedsOutLen {
		t.Errorf("bytes return = %+v", shape)
	}
}

func TestFunctionSignature_Scenarios(t *testing.T) {
	i32 := ir.I32
	add := ir.Function{
		Name:    "add",
		Params:  []ir.Param{{Name: "a", Ty: ir.I32}, {Name: "b", Ty: ir.I32}},
		Returns: &i32,
	}
	want := []string{"int32_t a", "int32_t b", "weaveffi_error* out_err"}
	if got := FunctionSignature(add); !reflect.DeepEqual(got, want) {
		t.Errorf("add signature = %v, want %v", got, want)
	}

	str := ir.StringUtf8
	echo := ir.Function{
		Name:    "echo",
		Params:  []ir.Param{{Name: "s", Ty: ir.StringUtf8}},
		Returns: &str,
	}
	wantEcho := []string{"const uint8_t* s_ptr", "size_t s_len", "weaveffi_error* out_err"}
	if got := FunctionSignature(echo); !reflect.DeepEqual(got, wantEcho) {
		t.Errorf("echo signature = %v, want %v", got, wantEcho)
	}

	bytes := ir.Bytes
	digest := ir.Function{
		Name:    "digest",
		Params:  []ir.Param{{Name: "data", Ty: ir.Bytes}},
		Returns: &bytes,
	}
	wantDigest := []string{"const uint8_t* data_ptr", "size_t data_len", "size_t* out_len", "weaveffi_error* out_err"}
	if got := FunctionSignature(digest); !reflect.DeepEqual(got, wantDigest) {
		t.Errorf("digest signature = %v, want %v", got, wantDigest)
	}
}

func TestUpperCamelCase(t *testing.T) {
	cases := map[string]string{
		"calculator":  "Calculator",
		"audio_mixer": "AudioMixer",
		"m":           "M",
	}
	for in, want := range cases {
		if got := UpperCamelCase(in); got != want {
			t.Errorf("UpperCamelCase(%q) = %q, want %q", in, got, want)
		}
	}
}
