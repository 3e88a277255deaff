package weaveerr

import (
	"fmt"
	"strings"
)

// Phase indicates which pipeline stage raised the error.
type Phase string

const (
	PhaseParse    Phase = "parse"
	PhaseValidate Phase = "validate"
	PhaseGenerate Phase = "generate"
)

// Kind is the closed taxonomy of failure categories described in spec §7.
type Kind string

const (
	// parse
	KindUnsupportedFormat Kind = "unsupported_format"
	KindYaml              Kind = "yaml"
	KindJson              Kind = "json"
	KindToml              Kind = "toml"

	// validate
	KindNoModuleName              Kind = "no_module_name"
	KindDuplicateModuleName       Kind = "duplicate_module_name"
	KindInvalidModuleName         Kind = "invalid_module_name"
	KindDuplicateFunctionName     Kind = "duplicate_function_name"
	KindDuplicateParamName        Kind = "duplicate_param_name"
	KindReservedKeyword           Kind = "reserved_keyword"
	KindAsyncNotSupported         Kind = "async_not_supported"
	KindErrorDomainMissingName    Kind = "error_domain_missing_name"
	KindDuplicateErrorName        Kind = "duplicate_error_name"
	KindDuplicateErrorCode        Kind = "duplicate_error_code"
	KindInvalidErrorCode          Kind = "invalid_error_code"
	KindNameCollisionWithErrDomain Kind = "name_collision_with_error_domain"

	// generate
	KindFilesystem Kind = "filesystem"
)

// Error is the structured error type used throughout the compiler.
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Module   string
	Function string
	Param    string
	Name     string
	FilePath string
	Detail   string
	Code     int32
	Line     int
	Column   int
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	var loc []string
	if e.Module != "" {
		loc = append(loc, "module="+e.Module)
	}
	if e.Function != "" {
		loc = append(loc, "function="+e.Function)
	}
	if e.Param != "" {
		loc = append(loc, "param="+e.Param)
	}
	if e.Name != "" {
		loc = append(loc, "name="+e.Name)
	}
	if e.FilePath != "" {
		loc = append(loc, "path="+e.FilePath)
	}
	if e.Line != 0 || e.Column != 0 {
		loc = append(loc, fmt.Sprintf("line=%d", e.Line), fmt.Sprintf("column=%d", e.Column))
	}
	if len(loc) > 0 {
		b.WriteString(" (")
		b.WriteString(strings.Join(loc, ", "))
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (cause: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by Phase and Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Phase == t.Phase && e.Kind == t.Kind
}

// Builder provides structured error construction.
type Builder struct {
	err Error
}

// New starts building an error for the given phase and kind.
func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: Error{Phase: phase, Kind: kind}}
}

func (b *Builder) Module(name string) *Builder   { b.err.Module = name; return b }
func (b *Builder) Function(name string) *Builder { b.err.Function = name; return b }
func (b *Builder) Param(name string) *Builder    { b.err.Param = name; return b }
func (b *Builder) Name(name string) *Builder     { b.err.Name = name; return b }
func (b *Builder) FilePath(p string) *Builder    { b.err.FilePath = p; return b }
func (b *Builder) Code(code int32) *Builder      { b.err.Code = code; return b }
func (b *Builder) Line(line int) *Builder        { b.err.Line = line; return b }
func (b *Builder) Column(col int) *Builder       { b.err.Column = col; return b }
func (b *Builder) Cause(err error) *Builder      { b.err.Cause = err; return b }

func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error.
func (b *Builder) Build() *Error {
	return &b.err
}

// --- Convenience constructors mirroring spec §7 named variants ---

func UnsupportedFormat(tag string) *Error {
	return New(PhaseParse, KindUnsupportedFormat).Detail("unsupported format: %s", tag).Build()
}

func Yaml(line, column int, message string) *Error {
	return New(PhaseParse, KindYaml).Line(line).Column(column).Detail("%s", message).Build()
}

func Json(line, column int, message string) *Error {
	return New(PhaseParse, KindJson).Line(line).Column(column).Detail("%s", message).Build()
}

func Toml(line, column int, message string) *Error {
	return New(PhaseParse, KindToml).Line(line).Column(column).Detail("%s", message).Build()
}

func NoModuleName() *Error {
	return New(PhaseValidate, KindNoModuleName).Build()
}

func DuplicateModuleName(name string) *Error {
	return New(PhaseValidate, KindDuplicateModuleName).Module(name).Build()
}

func InvalidModuleName(name, reason string) *Error {
	return New(PhaseValidate, KindInvalidModuleName).Module(name).Detail("%s", reason).Build()
}

func DuplicateFunctionName(module, function string) *Error {
	return New(PhaseValidate, KindDuplicateFunctionName).Module(module).Function(function).Build()
}

func DuplicateParamName(module, function, param string) *Error {
	return New(PhaseValidate, KindDuplicateParamName).Module(module).Function(function).Param(param).Build()
}

func ReservedKeyword(identifier string) *Error {
	return New(PhaseValidate, KindReservedKeyword).Name(identifier).Build()
}

func AsyncNotSupported(module, function string) *Error {
	return New(PhaseValidate, KindAsyncNotSupported).Module(module).Function(function).Build()
}

func ErrorDomainMissingName(module string) *Error {
	return New(PhaseValidate, KindErrorDomainMissingName).Module(module).Build()
}

func DuplicateErrorName(module, name string) *Error {
	return New(PhaseValidate, KindDuplicateErrorName).Module(module).Name(name).Build()
}

func DuplicateErrorCode(module string, code int32) *Error {
	return New(PhaseValidate, KindDuplicateErrorCode).Module(module).Code(code).Build()
}

func InvalidErrorCode(module, name string) *Error {
	return New(PhaseValidate, KindInvalidErrorCode).Module(module).Name(name).Build()
}

func NameCollisionWithErrorDomain(module, name string) *Error {
	return New(PhaseValidate, KindNameCollisionWithErrDomain).Module(module).Name(name).Build()
}

func Filesystem(path string, cause error) *Error {
	return New(PhaseGenerate, KindFilesystem).FilePath(path).Cause(cause).Build()
}
