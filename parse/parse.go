package parse

import (
	"encoding/json"
	"reflect"
	"regexp"
	"sync"

	toml "github.com/pelletier/go-toml"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/weaveffi/weaveffi/ir"
	"github.com/weaveffi/weaveffi/weaveerr"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the parse package's logger, defaulting to a no-op logger.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger configures the parse package's logger. Call before Parse.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Parse decodes data in the given format into an Api. format must be one
// of "yaml", "yml", "json", or "toml"; any other value yields an
// UnsupportedFormat error.
func Parse(data []byte, format string) (*ir.Api, error) {
	Logger().Debug("parsing IDL", zap.String("format", format), zap.Int("bytes", len(data)))

	switch format {
	case "yaml", "yml":
		return parseYAML(data)
	case "json":
		return parseJSON(data)
	case "toml":
		return parseTOML(data)
	default:
		return nil, weaveerr.UnsupportedFormat(format)
	}
}

func parseYAML(data []byte) (*ir.Api, error) {
	var api ir.Api
	if err := yaml.Unmarshal(data, &api); err != nil {
		line, col := yamlLineCol(err)
		return nil, weaveerr.Yaml(line, col, err.Error())
	}
	return &api, nil
}

func parseJSON(data []byte) (*ir.Api, error) {
	var api ir.Api
	if err := json.Unmarshal(data, &api); err != nil {
		line, col := jsonLineCol(data, err)
		return nil, weaveerr.Json(line, col, err.Error())
	}
	return &api, nil
}

func parseTOML(data []byte) (*ir.Api, error) {
	var api ir.Api
	if err := toml.Unmarshal(data, &api); err != nil {
		line, col := tomlLineCol(err)
		return nil, weaveerr.Toml(line, col, err.Error())
	}
	return &api, nil
}

var yamlLineRe = regexp.MustCompile(`line (\d+)`)

// yamlLineCol best-effort extracts a 1-based line number from a yaml.v3
// error message. yaml.v3 does not surface a column for scalar decode
// errors, so column is always 0.
func yamlLineCol(err error) (int, int) {
	if m := yamlLineRe.FindStringSubmatch(err.Error()); m != nil {
		line := 0
		for _, c := range m[1] {
			line = line*10 + int(c-'0')
		}
		return line, 0
	}
	return 0, 0
}

// jsonLineCol converts the byte offset encoding/json attaches to syntax and
// type errors into a 1-based line and column.
func jsonLineCol(data []byte, err error) (int, int) {
	var offset int64
	switch e := err.(type) {
	case *json.SyntaxError:
		offset = e.Offset
	case *json.UnmarshalTypeError:
		offset = e.Offset
	default:
		return 0, 0
	}
	return offsetToLineCol(data, offset)
}

func offsetToLineCol(data []byte, offset int64) (int, int) {
	if offset <= 0 {
		return 0, 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := 1, 1
	for i := int64(0); i < offset; i++ {
		if data[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// tomlLineCol reflects over the decoder's error type looking for exported
// Line/Column fields. go-toml's position reporting varies across error
// paths, so this degrades gracefully to 0 (matching spec's allowance that
// TOML position info "may be 0 when the decoder does not expose them").
func tomlLineCol(err error) (int, int) {
	rv := reflect.ValueOf(err)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return 0, 0
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return 0, 0
	}
	line, col := 0, 0
	if f := rv.FieldByName("Line"); f.IsValid() && f.CanInt() {
		line = int(f.Int())
	}
	if f := rv.FieldByName("Column"); f.IsValid() && f.CanInt() {
		col = int(f.Int())
	}
	return line, col
}
