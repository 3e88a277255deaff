// Package ir defines WeaveFFI's in-memory schema for APIs: modules,
// functions, parameters, error domains, and the closed set of primitive
// types that may cross the FFI boundary.
//
// Values are created by the parse package, frozen by a successful call
// to validate.Validate, and read-only thereafter: codegen templates and
// generators never mutate an Api.
package ir
