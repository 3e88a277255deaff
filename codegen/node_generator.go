package codegen

import "github.com/weaveffi/weaveffi/ir"

// NodeGenerator emits a Node/TypeScript binding package: a dynamic FFI
// bridge (index.ts), ambient type declarations (types.d.ts), and a
// package.json declaring its runtime dependencies. This is the canonical
// FFI-loader path; spec's design notes call out that an alternative
// native-addon `require` path existed in the original source with
// divergent output and was dropped (spec §9, Open Questions).
type NodeGenerator struct{}

func (NodeGenerator) Name() string { return "node" }

func (NodeGenerator) Generate(api *ir.Api, outDir string) error {
	if err := writeFile(outDir, "index.ts", renderNodeIndexTS(api)); err != nil {
		return err
	}
	if err := writeFile(outDir, "types.d.ts", renderNodeDts(api)); err != nil {
		return err
	}
	return writeFile(outDir, "package.json", renderNodePackageJSON())
}
