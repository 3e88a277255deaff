package codegen

import (
	"fmt"
	"strings"

	"github.com/weaveffi/weaveffi/abi"
	"github.com/weaveffi/weaveffi/ir"
)

func swiftType(t ir.TypeRef) string {
	switch t {
	case ir.I32:
		return "Int32"
	case ir.U32:
		return "UInt32"
	case ir.I64:
		return "Int64"
	case ir.F64:
		return "Double"
	case ir.Bool:
		return "Bool"
	case ir.StringUtf8:
		return "String"
	case ir.Bytes:
		return "Data"
	case ir.Handle:
		return "UInt64"
	default:
		panic(fmt.Sprintf("swift: unhandled type %q", t))
	}
}

func swiftReturnType(t *ir.TypeRef) string {
	if t == nil {
		return "Void"
	}
	return swiftType(*t)
}

// renderSwiftPackage renders swift/Package.swift: a SwiftPM manifest with
// a C system-library target (CWeaveFFI, backed by the modulemap) and a
// Sources/WeaveFFI target that depends on it.
func renderSwiftPackage() string {
	return `// swift-tools-version:5.7
import PackageDescription

let package = Package(
    name: "WeaveFFI",
    products: [
        .library(name: "WeaveFFI", targets: ["WeaveFFI"]),
    ],
    targets: [
        .systemLibrary(name: "CWeaveFFI", path: "WeaveFFI"),
        .target(name: "WeaveFFI", dependencies: ["CWeaveFFI"], path: "Sources/WeaveFFI"),
    ]
)
`
}

// renderModuleMap renders swift/WeaveFFI/module.modulemap, which exposes
// the native weaveffi.h header (produced by the C generator) to Swift as
// the CWeaveFFI system library target.
func renderModuleMap() string {
	return `module CWeaveFFI [system] {
    header "weaveffi.h"
    export *
}
`
}

// swiftBorrowParams renders the Array(...) copies String/Data params need
// before their bytes can be borrowed via withUnsafeBufferPointer.
func swiftBorrowParams(params []ir.Param) string {
	var b strings.Builder
	for _, p := range params {
		switch p.Ty {
		case ir.StringUtf8:
			fmt.Fprintf(&b, "        let %s_bytes = Array(%s.utf8)\n", p.Name, p.Name)
		case ir.Bytes:
			fmt.Fprintf(&b, "        let %s_bytes = [UInt8](%s)\n", p.Name, p.Name)
		}
	}
	return b.String()
}

func swiftArgName(p ir.Param) string {
	switch p.Ty {
	case ir.StringUtf8, ir.Bytes:
		return p.Name + "_buf.baseAddress, " + p.Name + "_buf.count"
	default:
		return p.Name
	}
}

// swiftBorrowingParams returns the params needing a withUnsafeBufferPointer
// borrow, in order.
func swiftBorrowingParams(params []ir.Param) []ir.Param {
	var out []ir.Param
	for _, p := range params {
		if p.Ty == ir.StringUtf8 || p.Ty == ir.Bytes {
			out = append(out, p)
		}
	}
	return out
}

// renderSwiftWrapper renders Sources/WeaveFFI/WeaveFFI.swift: one
// throwing static method per function, grouped into an enum namespace
// per module (spec §4.4.2).
func renderSwiftWrapper(api *ir.Api) string {
	var b strings.Builder
	b.WriteString("import CWeaveFFI\nimport Foundation\n\n")
	b.WriteString("public enum WeaveFFIError: Error, CustomStringConvertible {\n")
	b.WriteString("    case error(code: Int32, message: String)\n")
	b.WriteString("    public var description: String {\n")
	b.WriteString("        switch self { case let .error(code, message): return \"(\\(code)) \\(message)\" }\n")
	b.WriteString("    }\n}\n\n")
	b.WriteString("@inline(__always)\nfunc weaveffiCheck(_ err: inout weaveffi_error) throws {\n")
	b.WriteString("    if err.code != 0 {\n")
	b.WriteString("        let message = err.message.flatMap { String(cString: $0) } ?? \"\"\n")
	b.WriteString("        let code = err.code\n")
	b.WriteString("        weaveffi_error_clear(&err)\n")
	b.WriteString("        throw WeaveFFIError.error(code: code, message: message)\n")
	b.WriteString("    }\n}\n\n")

	for _, m := range api.Modules {
		renderSwiftModule(&b, m)
	}
	return b.String()
}

func renderSwiftModule(b *strings.Builder, m ir.Module) {
	typeName := abi.UpperCamelCase(m.Name)
	fmt.Fprintf(b, "public enum %s {\n", typeName)
	for _, f := range m.Functions {
		renderSwiftFunction(b, m.Name, f)
	}
	b.WriteString("}\n\n")
}

// renderSwiftCallBody renders the actual C call plus error-check plus
// return-value marshalling, assuming all borrowed buffer names
// (`<param>_buf`) are already in scope at the given indentation.
func renderSwiftCallBody(indent, symbol string, f ir.Function) string {
	var callArgs []string
	for _, p := range f.Params {
		callArgs = append(callArgs, swiftArgName(p))
	}

	var b strings.Builder
	switch {
	case f.Returns == nil:
		fmt.Fprintf(&b, "%s%s(%s)\n", indent, symbol, strings.Join(append(callArgs, "&err"), ", "))
		fmt.Fprintf(&b, "%stry weaveffiCheck(&err)\n", indent)
	case *f.Returns == ir.StringUtf8:
		fmt.Fprintf(&b, "%slet rv = %s(%s)\n", indent, symbol, strings.Join(append(callArgs, "&err"), ", "))
		fmt.Fprintf(&b, "%stry weaveffiCheck(&err)\n", indent)
		fmt.Fprintf(&b, "%sdefer { weaveffi_free_string(rv) }\n", indent)
		fmt.Fprintf(&b, "%sreturn rv.map { String(cString: $0) } ?? \"\"\n", indent)
	case *f.Returns == ir.Bytes:
		fmt.Fprintf(&b, "%svar outLen = 0\n", indent)
		fmt.Fprintf(&b, "%slet rv = %s(%s)\n", indent, symbol, strings.Join(append(callArgs, "&outLen", "&err"), ", "))
		fmt.Fprintf(&b, "%stry weaveffiCheck(&err)\n", indent)
		fmt.Fprintf(&b, "%sguard let base = rv else { return Data() }\n", indent)
		fmt.Fprintf(&b, "%sdefer { weaveffi_free_bytes(UnsafeMutablePointer(mutating: base), outLen) }\n", indent)
		fmt.Fprintf(&b, "%sreturn Data(bytes: base, count: outLen)\n", indent)
	default:
		fmt.Fprintf(&b, "%slet rv = %s(%s)\n", indent, symbol, strings.Join(append(callArgs, "&err"), ", "))
		fmt.Fprintf(&b, "%stry weaveffiCheck(&err)\n", indent)
		fmt.Fprintf(&b, "%sreturn rv\n", indent)
	}
	return b.String()
}

func renderSwiftFunction(b *strings.Builder, module string, f ir.Function) {
	var params []string
	for _, p := range f.Params {
		params = append(params, fmt.Sprintf("_ %s: %s", p.Name, swiftType(p.Ty)))
	}
	retType := swiftReturnType(f.Returns)
	fmt.Fprintf(b, "    public static func %s(%s) throws -> %s {\n", f.Name, strings.Join(params, ", "), retType)
	b.WriteString("        var err = weaveffi_error(code: 0, message: nil)\n")
	b.WriteString(swiftBorrowParams(f.Params))

	symbol := abi.SymbolName(module, f.Name)
	borrowing := swiftBorrowingParams(f.Params)
	b.WriteString(renderSwiftClosureNest(borrowing, 0, "        ", symbol, f))
	b.WriteString("    }\n")
}

// renderSwiftClosureNest recursively wraps each borrowed buffer in its
// own withUnsafeBufferPointer closure so every buffer stays valid for the
// whole C call, bottoming out at the actual call + marshalling.
func renderSwiftClosureNest(borrowing []ir.Param, idx int, indent, symbol string, f ir.Function) string {
	if idx == len(borrowing) {
		return renderSwiftCallBody(indent, symbol, f)
	}
	p := borrowing[idx]
	inner := renderSwiftClosureNest(borrowing, idx+1, indent+"    ", symbol, f)
	return fmt.Sprintf("%sreturn try %s_bytes.withUnsafeBufferPointer { %s_buf in\n%s%s}\n",
		indent, p.Name, p.Name, inner, indent)
}
