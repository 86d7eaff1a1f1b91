// Package catalog reads type catalogs written by hand in YAML or TOML.
//
// A catalog file looks like:
//
//	version: "1"
//	namespace: geo
//	types:
//	  - name: Point
//	    members:
//	      - {name: X, type: int32}
//	      - {name: Tags, type: "map<string, string>?"}
//	  - name: Color
//	    kind: enum
//	    literals:
//	      - {name: Red, value: 0}
//
// Member types use the compact expressions of descriptor.ParseTypeExpr.
package catalog

// Document is one decoded catalog file
type Document struct {
	// Version of the file format; must satisfy SupportedVersions
	Version string `yaml:"version" toml:"version"`

	// Namespace applies to types that do not name their own
	Namespace string `yaml:"namespace" toml:"namespace"`

	Types []TypeEntry `yaml:"types" toml:"types"`

	// source is the file the document came from, for error messages
	source string
}

// TypeEntry declares one type
type TypeEntry struct {
	Name       string         `yaml:"name" toml:"name"`
	Namespace  string         `yaml:"namespace" toml:"namespace"`
	Kind       string         `yaml:"kind" toml:"kind"` // plain (default), enum, configured
	Doc        string         `yaml:"doc" toml:"doc"`
	Override   string         `yaml:"override" toml:"override"`
	Base       string         `yaml:"base" toml:"base"`
	TypeParams []string       `yaml:"type_params" toml:"type_params"`
	Members    []MemberEntry  `yaml:"members" toml:"members"`
	Literals   []LiteralEntry `yaml:"literals" toml:"literals"`
}

// MemberEntry declares one member of a plain type
type MemberEntry struct {
	Name        string            `yaml:"name" toml:"name"`
	Type        string            `yaml:"type" toml:"type"`
	Kind        string            `yaml:"kind" toml:"kind"` // field (default), property
	Nullable    bool              `yaml:"nullable" toml:"nullable"`
	Static      bool              `yaml:"static" toml:"static"`
	Annotations []AnnotationEntry `yaml:"annotations" toml:"annotations"`
}

// AnnotationEntry is a serialization annotation, e.g. {id: json.name, arg: x}
type AnnotationEntry struct {
	ID  string `yaml:"id" toml:"id"`
	Arg any    `yaml:"arg" toml:"arg"`
}

// LiteralEntry is one enumeration member. Strings become string literals,
// numbers numeric literals.
type LiteralEntry struct {
	Name  string `yaml:"name" toml:"name"`
	Value any    `yaml:"value" toml:"value"`
}
