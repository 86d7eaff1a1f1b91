package typegen

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/teranos/tsgen/errors"
)

// CheckResult holds the result of comparing a fresh generation with files on disk
type CheckResult struct {
	UpToDate bool

	// Differences maps relative file paths to a line diff (-on disk +generated)
	Differences map[string]string

	// Missing lists generated files that do not exist on disk
	Missing []string
}

// Files returns every out-of-date path, sorted
func (c *CheckResult) Files() []string {
	paths := append([]string(nil), c.Missing...)
	for path := range c.Differences {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Err returns ErrOutOfDate with the affected files as detail, or nil
func (c *CheckResult) Err() error {
	if c.UpToDate {
		return nil
	}
	err := errors.WithDetail(errors.ErrOutOfDate, strings.Join(c.Files(), "\n"))
	return errors.WithHint(err, "run 'tsgen generate' to refresh the output")
}

// Check compares the result with the files already written below dir.
// Line endings are compared exactly; a CRLF/LF switch counts as a difference.
func Check(dir string, result *Result) (*CheckResult, error) {
	check := &CheckResult{Differences: make(map[string]string)}

	for _, f := range result.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		existing, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			check.Missing = append(check.Missing, f.Path)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}

		if string(existing) == f.Content {
			continue
		}
		check.Differences[f.Path] = cmp.Diff(splitLines(string(existing)), splitLines(f.Content))
	}

	check.UpToDate = len(check.Differences) == 0 && len(check.Missing) == 0
	return check, nil
}

// splitLines keeps line terminators attached so newline changes show in the diff
func splitLines(s string) []string {
	return strings.SplitAfter(s, "\n")
}
