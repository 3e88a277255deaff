// Package validate enforces the structural and semantic invariants of
// spec §3 on an ir.Api. Validate walks the Api deterministically and
// returns the first violation it finds as a *weaveerr.Error drawn from
// the closed taxonomy in spec §7.
//
// Validation is total: once Validate returns nil, every codegen
// generator may assume all invariants hold and must not re-check them.
package validate
