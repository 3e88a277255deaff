package codegen

import (
	"strings"
	"testing"
)

func TestRenderWasmReadme(t *testing.T) {
	got := renderWasmReadme()
	if !strings.Contains(got, "loadWeaveFFI") {
		t.Errorf("expected README to reference loadWeaveFFI:\n%s", got)
	}
	if !strings.Contains(got, "does not execute or validate") {
		t.Errorf("expected README to disclaim execution/validation:\n%s", got)
	}
}

func TestRenderWasmLoader(t *testing.T) {
	got := renderWasmLoader()
	if !strings.Contains(got, "export async function loadWeaveFFI(url)") {
		t.Errorf("expected exported loader function:\n%s", got)
	}
	if !strings.Contains(got, "WebAssembly.instantiate(bytes, {})") {
		t.Errorf("expected no-imports instantiate call:\n%s", got)
	}
	if !strings.Contains(got, "return instance.exports") {
		t.Errorf("expected exports to be returned:\n%s", got)
	}
}
