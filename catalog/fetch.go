package catalog

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-getter"

	"github.com/teranos/tsgen/errors"
)

// IsRemote reports whether src names a catalog that has to be downloaded:
// http(s) URLs, git repositories (github.com/org/repo//types.yaml), s3 or gcs
// objects. Local paths, relative ones resolved against pwd, are not remote.
func IsRemote(src, pwd string) bool {
	detected, err := getter.Detect(src, pwd, getter.Detectors)
	if err != nil {
		return false
	}
	_, rest := splitForced(detected)
	u, err := url.Parse(rest)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Scheme != "file"
}

// Fetch downloads a remote catalog into dir and returns the local path.
// The file keeps the source's base name so its format can still be detected.
func Fetch(ctx context.Context, src, pwd, dir string) (string, error) {
	detected, err := getter.Detect(src, pwd, getter.Detectors)
	if err != nil {
		return "", errors.Wrapf(err, "failed to detect catalog source %s", src)
	}

	name := remoteBaseName(detected)
	if _, err := FormatFor(name); err != nil {
		return "", errors.Wrapf(err, "catalog source %s", src)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.Wrap(err, "failed to create catalog cache directory")
	}
	dst := filepath.Join(dir, name)

	client := &getter.Client{
		Ctx:     ctx,
		Src:     detected,
		Dst:     dst,
		Pwd:     pwd,
		Mode:    getter.ClientModeFile,
		Getters: getter.Getters,
	}
	if err := client.Get(); err != nil {
		return "", errors.WithHint(
			errors.Wrapf(err, "failed to fetch catalog %s", src),
			"remote catalogs are fetched on every run; check the URL and your network")
	}
	return dst, nil
}

// splitForced separates a forced getter prefix such as "git::"
func splitForced(src string) (forced, rest string) {
	if i := strings.Index(src, "::"); i > 0 && !strings.Contains(src[:i], "/") {
		return src[:i], src[i+2:]
	}
	return "", src
}

// remoteBaseName is the file name at the end of a detected source, ignoring
// the query string and the forced getter
func remoteBaseName(detected string) string {
	_, rest := splitForced(detected)
	if u, err := url.Parse(rest); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(rest)
}
