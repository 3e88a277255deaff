// Package parse decodes IDL text in YAML, JSON or TOML into an ir.Api.
//
// Format is selected explicitly by the caller via a format tag
// ("yaml", "yml", "json", "toml"); inferring it from a file extension is
// the job of the out-of-scope CLI front-end. Every decode failure is
// returned as a *weaveerr.Error from the closed {UnsupportedFormat, Yaml,
// Json, Toml} taxonomy, carrying line/column information when the
// underlying decoder exposes it (TOML position reporting is coarser than
// JSON's, so its Column is frequently 0 — see spec §4.1/§7).
package parse
