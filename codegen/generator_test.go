package codegen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/weaveffi/weaveffi/ir"
)

func sampleAPI() *ir.Api {
	i32 := ir.I32
	return &ir.Api{
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
}

func TestOrchestrator_Run_WritesExpectedTree(t *testing.T) {
	dir := t.TempDir()
	o := Default()
	if err := o.Run(sampleAPI(), dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"c/weaveffi.h", "c/weaveffi.c",
		"swift/Package.swift", "swift/WeaveFFI/module.modulemap", "swift/Sources/WeaveFFI/WeaveFFI.swift",
		"android/settings.gradle", "android/build.gradle",
		"android/src/main/java/com/weaveffi/WeaveFFI.kt",
		"android/src/main/cpp/CMakeLists.txt", "android/src/main/cpp/weaveffi_jni.c",
		"node/index.ts", "node/types.d.ts", "node/package.json",
		"wasm/README.md", "wasm/weaveffi_wasm.js",
	}
	for _, rel := range want {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if _, err := os.Stat(p); err != nil {
			t.Errorf("expected file %s to exist: %v", rel, err)
		}
	}
}

func TestOrchestrator_RunOrder(t *testing.T) {
	o := Default()
	names := make([]string, 0)
	for _, g := range o.Generators() {
		names = append(names, g.Name())
	}
	want := []string{"c", "swift", "android", "node", "wasm"}
	for i, n := range want {
		if names[i] != n {
			t.Fatalf("generator order[%d] = %s, want %s", i, names[i], n)
		}
	}
}

type failingGenerator struct{ calls *[]string }

func (f failingGenerator) Name() string { return "failing" }
func (f failingGenerator) Generate(_ *ir.Api, _ string) error {
	*f.calls = append(*f.calls, "failing")
	return errors.New("boom")
}

type trackingGenerator struct {
	name  string
	calls *[]string
}

func (t trackingGenerator) Name() string { return t.name }
func (t trackingGenerator) Generate(_ *ir.Api, _ string) error {
	*t.calls = append(*t.calls, t.name)
	return nil
}

func TestOrchestrator_FailFast(t *testing.T) {
	var calls []string
	o := NewOrchestrator(
		trackingGenerator{name: "first", calls: &calls},
		failingGenerator{calls: &calls},
		trackingGenerator{name: "never", calls: &calls},
	)

	dir := t.TempDir()
	err := o.Run(sampleAPI(), dir)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "boom" {
		t.Errorf("got %v, want boom", err)
	}
	want := []string{"first", "failing"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", calls, want)
		}
	}
}

func TestOrchestrator_CreatesOutRoot(t *testing.T) {
	parent := t.TempDir()
	dir := filepath.Join(parent, "nested", "out")
	o := Default()
	if err := o.Run(sampleAPI(), dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Fatalf("expected out root to be created: %v", err)
	}
}
