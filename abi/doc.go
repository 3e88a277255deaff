// Package abi centralizes the C ABI conventions (spec §4.3) that every
// code generator must agree on: symbol naming, the pointer+length
// expansion for StringUtf8/Bytes parameters, and the by-value/by-return
// marshalling rules for each TypeRef.
//
// These are pure, IR-in-text-fragment-out helpers with no file I/O, so
// every generator derives its signatures from the same source instead of
// re-deriving the convention and risking drift (spec §9, "Pointer+length
// convention").
package abi
