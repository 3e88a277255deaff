package abi

import (
	"fmt"

	"github.com/weaveffi/weaveffi/ir"
)

// SymbolName returns the C symbol a function compiles to: weaveffi_<module>_<function>.
func SymbolName(module, function string) string {
	return fmt.Sprintf("weaveffi_%s_%s", module, function)
}

// CParam is the C-signature and call-argument fragments a single IR
// parameter expands to. Primitives and Handle expand to one fragment of
// each; StringUtf8 and Bytes expand to the two-parameter pointer+length
// pair described in spec §4.3.
type CParam struct {
	// Signature holds one "<ctype> <name>" fragment per underlying C
	// parameter this Param introduces.
	Signature []string
	// Args holds the bare argument names in the same order, for use at
	// call sites.
	Args []string
}

// CValueType returns the C type used to pass t by value. It is not valid
// for StringUtf8 or Bytes, which are never passed by value.
func CValueType(t ir.TypeRef) string {
	switch t {
	case ir.I32:
		return "int32_t"
	case ir.U32:
		return "uint32_t"
	case ir.I64:
		return "int64_t"
	case ir.F64:
		return "double"
	case ir.Bool:
		return "bool"
	case ir.Handle:
		return "weaveffi_handle_t"
	default:
		panic(fmt.Sprintf("abi: %q has no by-value C type", t))
	}
}

// ParamFragment expands one IR parameter into its C signature and
// argument-list fragments per spec §4.3.
func ParamFragment(p ir.Param) CParam {
	switch p.Ty {
	case ir.StringUtf8, ir.Bytes:
		ptr := p.Name + "_ptr"
		length := p.Name + "_len"
		return CParam{
			Signature: []string{"const uint8_t* " + ptr, "size_t " + length},
			Args:      []string{ptr, length},
		}
	default:
		ctype := CValueType(p.Ty)
		return CParam{
			Signature: []string{ctype + " " + p.Name},
			Args:      []string{p.Name},
		}
	}
}

// ReturnShape describes how a function's return value crosses the C ABI.
type ReturnShape struct {
	// CType is "void" when returns is nil.
	CType string
	// NeedsOutLen is true for Bytes returns, which append a
	// "size_t* out_len" parameter immediately before out_err.
	NeedsOutLen bool
}

// Return computes the ReturnShape for an optional return type.
func Return(returns *ir.TypeRef) ReturnShape {
	if returns == nil {
		return ReturnShape{CType: "void"}
	}
	switch *returns {
	case ir.StringUtf8:
		return ReturnShape{CType: "const char*"}
	case ir.Bytes:
		return ReturnShape{CType: "const uint8_t*", NeedsOutLen: true}
	default:
		return ReturnShape{CType: CValueType(*returns)}
	}
}

// FunctionSignature holds every positional C parameter of a function's
// emitted prototype, in order: each Param's fragment, then
// "size_t* out_len" iff the return is Bytes, then "weaveffi_error* out_err".
func FunctionSignature(f ir.Function) []string {
	var sig []string
	for _, p := range f.Params {
		sig = append(sig, ParamFragment(p).Signature...)
	}
	shape := Return(f.Returns)
	if shape.NeedsOutLen {
		sig = append(sig, "size_t* out_len")
	}
	sig = append(sig, "weaveffi_error* out_err")
	return sig
}

// CallArgs holds the bare argument names a caller passes for f's
// parameters, in order, not including out_len/out_err.
func CallArgs(f ir.Function) []string {
	var args []string
	for _, p := range f.Params {
		args = append(args, ParamFragment(p).Args...)
	}
	return args
}
