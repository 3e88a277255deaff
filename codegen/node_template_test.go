package codegen

import (
	"strings"
	"testing"

	"github.com/weaveffi/weaveffi/ir"
)

func TestRenderNodeIndexTS(t *testing.T) {
	bytes := ir.Bytes
	api := &ir.Api{Modules: []ir.Module{{
		Name: "m",
		Functions: []ir.Function{{
			Name:    "digest",
			Params:  []ir.Param{{Name: "data", Ty: ir.Bytes}},
			Returns: &bytes,
		}},
	}}}
	got := renderNodeIndexTS(api)
	if !strings.Contains(got, "WEAVEFFI_LIB") {
		t.Errorf("expected WEAVEFFI_LIB env var reference:\n%s", got)
	}
	if !strings.Contains(got, "'weaveffi_free_string': ['void', [CString]]") {
		t.Errorf("expected free_string declaration:\n%s", got)
	}
	if !strings.Contains(got, "'weaveffi_m_digest': [pointer, [pointer, size_t, pointer, pointer]]") {
		t.Errorf("expected digest binding with trailing out_len+out_err pointers:\n%s", got)
	}
}

func TestRenderNodeDts(t *testing.T) {
	i32 := ir.I32
	api := &ir.Api{Modules: []ir.Module{{
		Name: "calculator",
		Functions: []ir.Function{{
			Name:    "add",
			Params:  []ir.Param{{Name: "a", Ty: ir.I32}, {Name: "b", Ty: ir.I32}},
			Returns: &i32,
		}},
	}}}
	got := renderNodeDts(api)
	if !strings.Contains(got, "export function add(a: number, b: number): number") {
		t.Errorf("unexpected dts:\n%s", got)
	}
}
