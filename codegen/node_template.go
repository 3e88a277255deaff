package codegen

import (
	"fmt"
	"strings"

	"github.com/weaveffi/weaveffi/abi"
	"github.com/weaveffi/weaveffi/ir"
)

// ffiNapiType returns the ffi-napi/ref-napi scalar type name for a
// by-value parameter. StringUtf8/Bytes params are handled separately
// since they expand to a (pointer, size_t) pair.
func ffiNapiType(t ir.TypeRef) string {
	switch t {
	case ir.I32:
		return "int"
	case ir.U32:
		return "uint"
	case ir.I64:
		return "int64"
	case ir.F64:
		return "double"
	case ir.Bool:
		return "bool"
	case ir.Handle:
		return "uint64"
	default:
		panic(fmt.Sprintf("node: unhandled scalar type %q", t))
	}
}

func tsType(t ir.TypeRef) string {
	switch t {
	case ir.I32, ir.U32, ir.I64, ir.F64, ir.Handle:
		return "number"
	case ir.Bool:
		return "boolean"
	case ir.StringUtf8:
		return "string"
	case ir.Bytes:
		return "Buffer"
	default:
		panic(fmt.Sprintf("node: unhandled TS type %q", t))
	}
}

func tsReturnType(t *ir.TypeRef) string {
	if t == nil {
		return "void"
	}
	return tsType(*t)
}

// renderNodeIndexTS renders node/index.ts: a dynamic FFI bridge opened
// from WEAVEFFI_LIB, declaring every function and the three memory
// helpers with the exact argument shapes §4.3 mandates (spec §4.4.4).
func renderNodeIndexTS(api *ir.Api) string {
	var b strings.Builder
	b.WriteString("import ffi from 'ffi-napi'\n")
	b.WriteString("import ref from 'ref-napi'\n\n")
	b.WriteString("const libPath = process.env.WEAVEFFI_LIB || defaultLibPath()\n\n")
	b.WriteString("function defaultLibPath(): string {\n")
	b.WriteString("  switch (process.platform) {\n")
	b.WriteString("    case 'darwin': return './libweaveffi.dylib'\n")
	b.WriteString("    case 'win32': return './weaveffi.dll'\n")
	b.WriteString("    default: return './libweaveffi.so'\n")
	b.WriteString("  }\n}\n\n")
	b.WriteString("const CString = ref.types.CString\n")
	b.WriteString("const bool = ref.types.bool\n")
	b.WriteString("const uint = ref.types.uint\n")
	b.WriteString("const int = ref.types.int\n")
	b.WriteString("const int64 = ref.types.int64\n")
	b.WriteString("const uint64 = ref.types.uint64\n")
	b.WriteString("const double = ref.types.double\n")
	b.WriteString("const size_t = ref.types.size_t\n")
	b.WriteString("const pointer = ref.refType(ref.types.void)\n\n")

	b.WriteString("export const lib = ffi.Library(libPath, {\n")
	b.WriteString("  'weaveffi_free_string': ['void', [CString]],\n")
	b.WriteString("  'weaveffi_free_bytes': ['void', [pointer, size_t]],\n")
	b.WriteString("  'weaveffi_error_clear': ['void', [pointer]],\n")

	for _, m := range api.Modules {
		for _, f := range m.Functions {
			renderNodeBinding(&b, m.Name, f)
		}
	}
	b.WriteString("})\n\n")
	b.WriteString("export default lib\n")
	return b.String()
}

func renderNodeBinding(b *strings.Builder, module string, f ir.Function) {
	sym := abi.SymbolName(module, f.Name)
	shape := abi.Return(f.Returns)

	var ffiRet string
	switch shape.CType {
	case "void":
		ffiRet = "void"
	case "const char*":
		ffiRet = "CString"
	case "const uint8_t*":
		ffiRet = "pointer"
	default:
		ffiRet = ffiNapiType(*f.Returns)
	}

	var args []string
	for _, p := range f.Params {
		switch p.Ty {
		case ir.StringUtf8, ir.Bytes:
			args = append(args, "pointer", "size_t")
		default:
			args = append(args, ffiNapiType(p.Ty))
		}
	}
	if shape.NeedsOutLen {
		args = append(args, "pointer")
	}
	args = append(args, "pointer") // out_err

	fmt.Fprintf(b, "  '%s': [%s, [%s]],\n", sym, ffiRet, strings.Join(args, ", "))
}

// renderNodeDts renders node/types.d.ts: JavaScript-idiomatic signatures
// (number/boolean/string/Buffer) per function.
func renderNodeDts(api *ir.Api) string {
	var b strings.Builder
	b.WriteString("// Generated TypeScript signatures for WeaveFFI functions.\n")
	for _, m := range api.Modules {
		fmt.Fprintf(&b, "// module %s\n", m.Name)
		for _, f := range m.Functions {
			var params []string
			for _, p := range f.Params {
				params = append(params, fmt.Sprintf("%s: %s", p.Name, tsType(p.Ty)))
			}
			fmt.Fprintf(&b, "export function %s(%s): %s\n", f.Name, strings.Join(params, ", "), tsReturnType(f.Returns))
		}
	}
	return b.String()
}

// renderNodePackageJSON renders node/package.json declaring the runtime
// dependencies the generated index.ts requires.
func renderNodePackageJSON() string {
	return `{
  "name": "@weaveffi/generated",
  "version": "0.1.0",
  "private": true,
  "main": "index.js",
  "types": "types.d.ts",
  "dependencies": {
    "ffi-napi": "^4.0.3",
    "ref-napi": "^3.0.3"
  }
}
`
}
