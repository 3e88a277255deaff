// Package codegen turns a validated ir.Api into source trees for each
// WeaveFFI target: a C header (the shared ABI contract), a Swift
// wrapper package, a Kotlin+JNI Android library module, Node/TypeScript
// bindings, and a WASM loader stub.
//
// Each target is a Generator: a stable Name() plus a pure-data
// Generate(api, outDir) operation. An Orchestrator holds an ordered list
// of Generators and runs them against one output root, creating a
// dedicated subdirectory per target and failing fast on the first error
// (spec §4.5).
//
// The template functions (render*) underneath each generator are pure
// IR-in, text-out functions with no file I/O, so they can be golden-file
// tested by comparing rendered strings directly (spec §9, "Template
// composition").
package codegen
