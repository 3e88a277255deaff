package parse

import (
	"encoding/json"

	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/weaveffi/weaveffi/ir"
	"github.com/weaveffi/weaveffi/weaveerr"
)

// Serialize encodes an Api back to IDL text in the given format. It exists
// primarily to exercise the parser round-trip property (spec §8): for
// every valid Api and format, Parse(Serialize(api, format), format) must
// yield a structurally equal Api.
func Serialize(api *ir.Api, format string) ([]byte, error) {
	switch format {
	case "yaml", "yml":
		out, err := yaml.Marshal(api)
		if err != nil {
			return nil, weaveerr.Yaml(0, 0, err.Error())
		}
		return out, nil
	case "json":
		out, err := json.Marshal(api)
		if err != nil {
			return nil, weaveerr.Json(0, 0, err.Error())
		}
		return out, nil
	case "toml":
		out, err := toml.Marshal(*api)
		if err != nil {
			return nil, weaveerr.Toml(0, 0, err.Error())
		}
		return out, nil
	default:
		return nil, weaveerr.UnsupportedFormat(format)
	}
}
