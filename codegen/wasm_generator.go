package codegen

import "github.com/weaveffi/weaveffi/ir"

// WasmGenerator emits the WASM loader stub: a README and a tiny JS
// module that fetches and instantiates a .wasm build with no imports.
// api is accepted for interface symmetry but unused (spec §4.4.5).
type WasmGenerator struct{}

func (WasmGenerator) Name() string { return "wasm" }

func (WasmGenerator) Generate(_ *ir.Api, outDir string) error {
	if err := writeFile(outDir, "README.md", renderWasmReadme()); err != nil {
		return err
	}
	return writeFile(outDir, "weaveffi_wasm.js", renderWasmLoader())
}
