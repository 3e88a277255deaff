// Package weaveerr provides the structured error type shared by the parse,
// validate and codegen packages.
//
// Errors are categorized by Phase (where the error occurred) and Kind (the
// closed taxonomy of failure categories). Use the Builder for structured
// construction:
//
//	err := weaveerr.New(weaveerr.PhaseValidate, weaveerr.KindDuplicateModuleName).
//		Module("calculator").
//		Detail("module name %q already used", "calculator").
//		Build()
//
// Or use the convenience constructors that mirror spec's named error
// variants directly, e.g. weaveerr.DuplicateModuleName("calculator").
//
// All errors implement the standard error interface and support
// errors.Is/As.
package weaveerr
