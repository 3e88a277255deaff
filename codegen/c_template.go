package codegen

import (
	"strings"

	"github.com/weaveffi/weaveffi/abi"
	"github.com/weaveffi/weaveffi/ir"
)

// renderCHeader renders the single weaveffi.h header: include guards, the
// extern "C" guard, the handle typedef, the weaveffi_error struct, the
// three lifetime functions, and one prototype per function in IR order
// (spec §4.4.1).
func renderCHeader(api *ir.Api) string {
	var b strings.Builder

	b.WriteString("#ifndef WEAVEFFI_H\n")
	b.WriteString("#define WEAVEFFI_H\n\n")
	b.WriteString("#include <stdint.h>\n")
	b.WriteString("#include <stddef.h>\n")
	b.WriteString("#include <stdbool.h>\n\n")
	b.WriteString("#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")

	b.WriteString("typedef uint64_t weaveffi_handle_t;\n\n")
	b.WriteString("typedef struct weaveffi_error {\n    int32_t code;\n    const char* message;\n} weaveffi_error;\n\n")
	b.WriteString("void weaveffi_error_clear(weaveffi_error* err);\n")
	b.WriteString("void weaveffi_free_string(const char* ptr);\n")
	b.WriteString("void weaveffi_free_bytes(uint8_t* ptr, size_t len);\n\n")

	for _, m := range api.Modules {
		renderModulePrototypes(&b, m)
	}

	b.WriteString("#ifdef __cplusplus\n}\n#endif\n\n")
	b.WriteString("#endif // WEAVEFFI_H\n")
	return b.String()
}

func renderModulePrototypes(b *strings.Builder, m ir.Module) {
	b.WriteString("// Module: " + m.Name + "\n")
	for _, f := range m.Functions {
		sig := abi.FunctionSignature(f)
		ret := abi.Return(f.Returns).CType
		sym := abi.SymbolName(m.Name, f.Name)
		b.WriteString(ret)
		b.WriteByte(' ')
		b.WriteString(sym)
		b.WriteByte('(')
		b.WriteString(strings.Join(sig, ", "))
		b.WriteString(");\n")
	}
	b.WriteString("\n")
}

// renderCSourceStub renders weaveffi.c, a translation-unit placeholder
// for native libraries that want a single compiled object pulling in the
// header; the ABI implementation itself lives in the native library, not
// in generated code.
func renderCSourceStub() string {
	return "#include \"weaveffi.h\"\n\n" +
		"// The native library provides the implementation of every prototype\n" +
		"// declared in weaveffi.h. This translation unit exists so build systems\n" +
		"// that expect a .c file alongside the header have one to compile.\n"
}
