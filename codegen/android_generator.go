package codegen

import (
	"path/filepath"

	"github.com/weaveffi/weaveffi/ir"
)

// AndroidGenerator emits a Gradle Android library module: a Kotlin class
// declaring one external method per function, and a JNI C shim
// implementing the native bridge to the C ABI (spec §4.4.3).
type AndroidGenerator struct{}

func (AndroidGenerator) Name() string { return "android" }

func (AndroidGenerator) Generate(api *ir.Api, outDir string) error {
	if err := writeFile(outDir, "settings.gradle", renderSettingsGradle()); err != nil {
		return err
	}
	if err := writeFile(outDir, "build.gradle", renderBuildGradle()); err != nil {
		return err
	}
	javaDir := filepath.Join(outDir, "src", "main", "java", "com", "weaveffi")
	if err := writeFile(javaDir, "WeaveFFI.kt", renderKotlinClass(api)); err != nil {
		return err
	}
	cppDir := filepath.Join(outDir, "src", "main", "cpp")
	if err := writeFile(cppDir, "CMakeLists.txt", renderCMakeLists()); err != nil {
		return err
	}
	return writeFile(cppDir, "weaveffi_jni.c", renderJNIShim(api))
}
