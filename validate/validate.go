package validate

import (
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/weaveffi/weaveffi/ir"
	"github.com/weaveffi/weaveffi/weaveerr"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the validate package's logger, defaulting to a no-op logger.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the validate package's logger. Call before Validate.
func SetLogger(l *zap.Logger) {
	logger = l
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate walks api and returns the first invariant violation found, or
// nil if api satisfies every invariant in spec §3. The walk order is
// deterministic: modules, then (per module) the module name itself, then
// its functions in order, then its error domain.
func Validate(api *ir.Api) error {
	seenModules := make(map[string]bool, len(api.Modules))

	for _, m := range api.Modules {
		if err := validateModuleName(m.Name); err != nil {
			return err
		}
		if seenModules[m.Name] {
			return weaveerr.DuplicateModuleName(m.Name)
		}
		seenModules[m.Name] = true

		if err := validateModule(m); err != nil {
			return err
		}
	}

	Logger().Debug("validated api", zap.Int("modules", len(api.Modules)))
	return nil
}

func validateModuleName(name string) error {
	if strings.TrimSpace(name) == "" {
		return weaveerr.NoModuleName()
	}
	if !identifierRe.MatchString(name) {
		return weaveerr.InvalidModuleName(name, "not a valid identifier")
	}
	if ir.IsReserved(name) {
		return weaveerr.ReservedKeyword(name)
	}
	return nil
}

func validateModule(m ir.Module) error {
	seenFuncs := make(map[string]bool, len(m.Functions))

	for _, f := range m.Functions {
		if ir.IsReserved(f.Name) {
			return weaveerr.ReservedKeyword(f.Name)
		}
		if seenFuncs[f.Name] {
			return weaveerr.DuplicateFunctionName(m.Name, f.Name)
		}
		seenFuncs[f.Name] = true

		if m.Errors != nil && f.Name == m.Errors.Name {
			return weaveerr.NameCollisionWithErrorDomain(m.Name, f.Name)
		}

		if f.IsAsync {
			return weaveerr.AsyncNotSupported(m.Name, f.Name)
		}

		if err := validateParams(m.Name, f); err != nil {
			return err
		}
	}

	if m.Errors != nil {
		if err := validateErrorDomain(m.Name, *m.Errors); err != nil {
			return err
		}
	}

	return nil
}

func validateParams(module string, f ir.Function) error {
	seen := make(map[string]bool, len(f.Params))
	for _, p := range f.Params {
		if ir.IsReserved(p.Name) {
			return weaveerr.ReservedKeyword(p.Name)
		}
		if seen[p.Name] {
			return weaveerr.DuplicateParamName(module, f.Name, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func validateErrorDomain(module string, d ir.ErrorDomain) error {
	if strings.TrimSpace(d.Name) == "" {
		return weaveerr.ErrorDomainMissingName(module)
	}

	seenNames := make(map[string]bool, len(d.Codes))
	seenCodes := make(map[int32]bool, len(d.Codes))

	for _, c := range d.Codes {
		if c.Code == 0 {
			return weaveerr.InvalidErrorCode(module, c.Name)
		}
		if seenNames[c.Name] {
			return weaveerr.DuplicateErrorName(module, c.Name)
		}
		seenNames[c.Name] = true

		if seenCodes[c.Code] {
			return weaveerr.DuplicateErrorCode(module, c.Code)
		}
		seenCodes[c.Code] = true
	}

	return nil
}
