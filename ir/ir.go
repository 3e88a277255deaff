package ir

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TypeRef is the closed, tagged set of primitive types that may cross the
// FFI boundary. The string value is the exact wire tag used by every IDL
// format (always lowercase).
type TypeRef string

const (
	I32        TypeRef = "i32"
	U32        TypeRef = "u32"
	I64        TypeRef = "i64"
	F64        TypeRef = "f64"
	Bool       TypeRef = "bool"
	StringUtf8 TypeRef = "string"
	Bytes      TypeRef = "bytes"
	Handle     TypeRef = "handle"
)

// Valid reports whether t is one of the eight known TypeRef tags.
func (t TypeRef) Valid() bool {
	switch t {
	case I32, U32, I64, F64, Bool, StringUtf8, Bytes, Handle:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler, used by encoding/json and
// github.com/pelletier/go-toml.
func (t TypeRef) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("ir: invalid type tag %q", string(t))
	}
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypeRef) UnmarshalText(data []byte) error {
	v := TypeRef(data)
	if !v.Valid() {
		return fmt.Errorf("ir: unknown type tag %q", string(data))
	}
	*t = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (t TypeRef) MarshalYAML() (any, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("ir: invalid type tag %q", string(t))
	}
	return string(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *TypeRef) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v := TypeRef(s)
	if !v.Valid() {
		return fmt.Errorf("ir: unknown type tag %q", s)
	}
	*t = v
	return nil
}

// Param is a single function parameter.
type Param struct {
	Name string  `yaml:"name" json:"name" toml:"name"`
	Ty   TypeRef `yaml:"type" json:"type" toml:"type"`
}

// Function describes one callable entry point in a Module.
type Function struct {
	Doc     *string `yaml:"doc,omitempty" json:"doc,omitempty" toml:"doc,omitempty"`
	Name    string  `yaml:"name" json:"name" toml:"name"`
	Params  []Param `yaml:"params" json:"params" toml:"params"`
	Returns *TypeRef `yaml:"return,omitempty" json:"return,omitempty" toml:"return,omitempty"`
	IsAsync bool    `yaml:"async,omitempty" json:"async,omitempty" toml:"async,omitempty"`
}

// ErrorCode is a single named, non-zero error value within an ErrorDomain.
type ErrorCode struct {
	Name    string `yaml:"name" json:"name" toml:"name"`
	Message string `yaml:"message" json:"message" toml:"message"`
	Code    int32  `yaml:"code" json:"code" toml:"code"`
}

// ErrorDomain groups the error codes a module's functions may report.
type ErrorDomain struct {
	Name  string      `yaml:"name" json:"name" toml:"name"`
	Codes []ErrorCode `yaml:"codes" json:"codes" toml:"codes"`
}

// Module is a named group of functions with an optional shared error domain.
type Module struct {
	Errors    *ErrorDomain `yaml:"errors,omitempty" json:"errors,omitempty" toml:"errors,omitempty"`
	Name      string       `yaml:"name" json:"name" toml:"name"`
	Functions []Function   `yaml:"functions" json:"functions" toml:"functions"`
}

// Api is the top-level IR value: a versioned collection of modules.
type Api struct {
	Version string   `yaml:"version" json:"version" toml:"version"`
	Modules []Module `yaml:"modules" json:"modules" toml:"modules"`
}

// ReservedWords is the union of keywords reserved across every target
// language WeaveFFI emits to. No module, function, or parameter identifier
// may collide with one of these. Extending this set is a versioned,
// backward-incompatible change (see spec design notes).
var ReservedWords = map[string]bool{
	"if": true, "else": true, "for": true, "while": true, "loop": true,
	"match": true, "type": true, "return": true, "async": true, "await": true,
	"break": true, "continue": true, "fn": true, "struct": true, "enum": true,
	"mod": true, "use": true,
}

// IsReserved reports whether name collides with the reserved identifier set.
func IsReserved(name string) bool {
	return ReservedWords[name]
}
