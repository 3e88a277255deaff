package codegen

import (
	"strings"
	"testing"

	"github.com/weaveffi/weaveffi/ir"
)

func TestRenderCHeader_Scenario1_Add(t *testing.T) {
	i32 := ir.I32
	api := &ir.Api{
		Version: "0.1.0",
		Modules: []ir.Module{{
			Name: "calculator",
			Functions: []ir.Function{{
				Name:    "add",
				Params:  []ir.Param{{Name: "a", Ty: ir.I32}, {Name: "b", Ty: ir.I32}},
				Returns: &i32,
			}},
		}},
	}
	got := renderCHeader(api)
	want := "int32_t weaveffi_calculator_add(int32_t a, int32_t b, weaveffi_error* out_err);"
	if !strings.Contains(got, want) {
		t.Errorf("header does not contain %q:\n%s", want, got)
	}
}

func TestRenderCHeader_Scenario2_Echo(t *testing.T) {
	str := ir.StringUtf8
	api := &ir.Api{Modules: []ir.Module{{
		Name: "m",
		Functions: []ir.Function{{
			Name:    "echo",
			Params:  []ir.Param{{Name: "s", Ty: ir.StringUtf8}},
			Returns: &str,
		}},
	}}}
	got := renderCHeader(api)
	want := "const char* weaveffi_m_echo(const uint8_t* s_ptr, size_t s_len, weaveffi_error* out_err);"
	if !strings.Contains(got, want) {
		t.Errorf("header does not contain %q:\n%s", want, got)
	}
}

func TestRenderCHeader_Scenario3_Digest(t *testing.T) {
	bytes := ir.Bytes
	api := &ir.Api{Modules: []ir.Module{{
		Name: "m",
		Functions: []ir.Function{{
			Name:    "digest",
			Params:  []ir.Param{{Name: "data", Ty: ir.Bytes}},
			Returns: &bytes,
		}},
	}}}
	got := renderCHeader(api)
	want := "const uint8_t* weaveffi_m_digest(const uint8_t* data_ptr, size_t data_len, size_t* out_len, weaveffi_error* out_err);"
	if !strings.Contains(got, want) {
		t.Errorf("header does not contain %q:\n%s", want, got)
	}
}

func TestRenderCHeader_VoidReturn(t *testing.T) {
	api := &ir.Api{Modules: []ir.Module{{
		Name: "m",
		Functions: []ir.Function{{
			Name:   "noop",
			Params: nil,
		}},
	}}}
	got := renderCHeader(api)
	want := "void weaveffi_m_noop(weaveffi_error* out_err);"
	if !strings.Contains(got, want) {
		t.Errorf("header does not contain %q:\n%s", want, got)
	}
}

func TestRenderCHeader_StructuralParts(t *testing.T) {
	api := &ir.Api{Modules: []ir.Module{{Name: "m"}}}
	got := renderCHeader(api)
	for _, want := range []string{
		"#ifndef WEAVEFFI_H",
		"#include <stdint.h>",
		"#include <stddef.h>",
		"#include <stdbool.h>",
		"extern \"C\"",
		"typedef uint64_t weaveffi_handle_t;",
		"int32_t code;",
		"const char* message;",
		"void weaveffi_error_clear(weaveffi_error* err);",
		"void weaveffi_free_string(const char* ptr);",
		"void weaveffi_free_bytes(uint8_t* ptr, size_t len);",
		"// Module: m",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderCHeader_UniqueSymbolPerFunction(t *testing.T) {
	i32 := ir.I32
	api := &ir.Api{Modules: []ir.Module{
		{Name: "a", Functions: []ir.Function{{Name: "f", Returns: &i32}}},
		{Name: "b", Functions: []ir.Function{{Name: "f", Returns: &i32}}},
	}}
	got := renderCHeader(api)
	if strings.Count(got, "weaveffi_a_f(") != 1 {
		t.Errorf("expected exactly one weaveffi_a_f prototype:\n%s", got)
	}
	if strings.Count(got, "weaveffi_b_f(") != 1 {
		t.Errorf("expected exactly one weaveffi_b_f prototype:\n%s", got)
	}
}
