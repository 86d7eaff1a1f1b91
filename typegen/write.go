package typegen

import (
	"os"
	"path/filepath"

	"github.com/teranos/tsgen/errors"
)

// WriteFiles writes every file of the result below dir, creating directories as needed
func WriteFiles(dir string, result *Result) error {
	for _, f := range result.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return errors.Wrapf(err, "failed to create directory for %s", f.Path)
		}
		if err := os.WriteFile(path, []byte(f.Content), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
	}
	return nil
}
