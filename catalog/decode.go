package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/teranos/tsgen/errors"
)

// SupportedVersions is the semver constraint catalog files must satisfy
const SupportedVersions = "^1"

// Format of a catalog file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the format from a file extension
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.WithHint(
		errors.Newf("unsupported catalog file %s", path),
		"catalog files end in .yaml, .yml or .toml")
}

// Decode parses a catalog document. Unknown keys are rejected so typos in
// hand-written files surface instead of silently dropping settings.
func Decode(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid YAML catalog"), errors.ErrInvalidCatalog)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid TOML catalog"), errors.ErrInvalidCatalog)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.NewInvalidCatalogError("unknown key %s", undecoded[0].String())
		}
	default:
		return nil, errors.Newf("unknown catalog format %q", format)
	}

	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadFile reads and decodes one catalog file
func LoadFile(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read catalog %s", path)
	}

	doc, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	doc.source = path
	return doc, nil
}

func checkVersion(version string) error {
	if version == "" {
		return errors.WithHint(
			errors.NewInvalidCatalogError("catalog has no version"),
			`add version: "1" at the top of the file`)
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return errors.NewInvalidCatalogError("invalid catalog version %q: %v", version, err)
	}

	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return errors.AssertionFailedf("bad version constraint %q: %v", SupportedVersions, err)
	}
	if !constraint.Check(v) {
		return errors.NewInvalidCatalogError("catalog version %s is not supported (want %s)", v, SupportedVersions)
	}
	return nil
}
