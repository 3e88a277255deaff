package codegen

import (
	"os"
	"path/filepath"

	"github.com/weaveffi/weaveffi/weaveerr"
)

// writeFile writes content to dir/name, creating dir if necessary. Writes
// overwrite existing files without locking (spec §5, "Filesystem resource
// policy"); callers are expected to hold the output tree exclusively.
func writeFile(dir, name, content string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return weaveerr.Filesystem(dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return weaveerr.Filesystem(path, err)
	}
	return nil
}
