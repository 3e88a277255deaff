package codegen

import "github.com/weaveffi/weaveffi/ir"

// CGenerator emits the C ABI header and a minimal source stub under c/.
type CGenerator struct{}

func (CGenerator) Name() string { return "c" }

func (CGenerator) Generate(api *ir.Api, outDir string) error {
	if err := writeFile(outDir, "weaveffi.h", renderCHeader(api)); err != nil {
		return err
	}
	return writeFile(outDir, "weaveffi.c", renderCSourceStub())
}
