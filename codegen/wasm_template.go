package codegen

// renderWasmReadme renders wasm/README.md: build and loading
// instructions for a wasm32 build of the native library. No IR
// inspection is required (spec §4.4.5).
func renderWasmReadme() string {
	return `# WeaveFFI WASM loader

This folder contains a minimal stub for loading a WebAssembly build of
your WeaveFFI native library in a browser or other WASM host.

Build the native library for a wasm32 target, then serve the resulting
` + "`.wasm`" + ` file and load it with ` + "`weaveffi_wasm.js`" + `:

` + "```js" + `
import { loadWeaveFFI } from './weaveffi_wasm.js'

const exports = await loadWeaveFFI('/weaveffi.wasm')
` + "```" + `

WeaveFFI does not execute or validate the resulting module: this loader
only performs instantiation and hands back the raw exports object.
`
}

// renderWasmLoader renders wasm/weaveffi_wasm.js: a tiny loader that
// fetches, instantiates, and returns the exports of a WASM module with
// no imports (spec §4.4.5).
func renderWasmLoader() string {
	return `// Minimal loader for a WeaveFFI WASM build.
export async function loadWeaveFFI(url) {
  const response = await fetch(url)
  const bytes = await response.arrayBuffer()
  const { instance } = await WebAssembly.instantiate(bytes, {})
  return instance.exports
}
`
}
