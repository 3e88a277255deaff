package codegen

import (
	"path/filepath"

	"github.com/weaveffi/weaveffi/ir"
)

// SwiftGenerator emits a SwiftPM package wrapping the C ABI: a system
// library target exposing weaveffi.h, and a Swift target with one
// throwing static method per function (spec §4.4.2).
type SwiftGenerator struct{}

func (SwiftGenerator) Name() string { return "swift" }

func (SwiftGenerator) Generate(api *ir.Api, outDir string) error {
	if err := writeFile(outDir, "Package.swift", renderSwiftPackage()); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "WeaveFFI"), "module.modulemap", renderModuleMap()); err != nil {
		return err
	}
	return writeFile(filepath.Join(outDir, "Sources", "WeaveFFI"), "WeaveFFI.swift", renderSwiftWrapper(api))
}
