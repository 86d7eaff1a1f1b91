// Package config loads tsgen settings from tsgen.toml and TSGEN_* environment variables.
package config

// FileName is the project config file searched for from the working directory upwards
const FileName = "tsgen.toml"

// Config represents the tsgen configuration
type Config struct {
	Source      SourceConfig      `mapstructure:"source" toml:"source" json:"source" yaml:"source"`
	Output      OutputConfig      `mapstructure:"output" toml:"output" json:"output" yaml:"output"`
	Translation TranslationConfig `mapstructure:"translation" toml:"translation" json:"translation" yaml:"translation"`
	Annotations AnnotationsConfig `mapstructure:"annotations" toml:"annotations" json:"annotations" yaml:"annotations"`
	Watch       WatchConfig       `mapstructure:"watch" toml:"watch" json:"watch" yaml:"watch"`

	// Root is the directory relative paths resolve against: the directory of
	// the config file, or the working directory when there is none
	Root string `mapstructure:"-" toml:"-" json:"-" yaml:"-"`
}

// SourceConfig selects where types are discovered
type SourceConfig struct {
	// Go package patterns, e.g. "./models/..."
	Packages []string `mapstructure:"packages" toml:"packages" json:"packages" yaml:"packages"`
	// YAML/TOML catalog files
	Catalogs []string `mapstructure:"catalogs" toml:"catalogs" json:"catalogs" yaml:"catalogs"`
	// passed to the Go loader
	BuildTags []string `mapstructure:"build_tags" toml:"build_tags" json:"build_tags" yaml:"build_tags"`
	// extra go command flags as one shell-quoted string, e.g. "-mod=mod -ldflags='-s'"
	GoFlags string `mapstructure:"go_flags" toml:"go_flags" json:"go_flags" yaml:"go_flags"`
}

// OutputConfig configures generated files
type OutputConfig struct {
	Dir string `mapstructure:"dir" toml:"dir" json:"dir" yaml:"dir"`
	// also write index.ts
	Index bool `mapstructure:"index" toml:"index" json:"index" yaml:"index"`
	// namespace, last-segment, lowercase
	ModulePath string `mapstructure:"module_path" toml:"module_path" json:"module_path" yaml:"module_path"`
	Indent     int    `mapstructure:"indent" toml:"indent" json:"indent" yaml:"indent"`
	// lf, crlf
	NewLine string `mapstructure:"newline" toml:"newline" json:"newline" yaml:"newline"`
}

// TranslationConfig configures how types are rendered
type TranslationConfig struct {
	// none, camel, pascal, snake
	NamingStyle string `mapstructure:"naming_style" toml:"naming_style" json:"naming_style" yaml:"naming_style"`
	// json, msgpack, none
	Serializer         string `mapstructure:"serializer" toml:"serializer" json:"serializer" yaml:"serializer"`
	DateType           string `mapstructure:"date_type" toml:"date_type,omitempty" json:"date_type,omitempty" yaml:"date_type,omitempty"`
	DedupeEnumLiterals bool   `mapstructure:"dedupe_enum_literals" toml:"dedupe_enum_literals" json:"dedupe_enum_literals" yaml:"dedupe_enum_literals"`
	// 0 = GOMAXPROCS
	Parallelism int               `mapstructure:"parallelism" toml:"parallelism" json:"parallelism" yaml:"parallelism"`
	Primitives  map[string]string `mapstructure:"primitives" toml:"primitives,omitempty" json:"primitives,omitempty" yaml:"primitives,omitempty"`
}

// AnnotationsConfig adds annotation IDs to the built-in vocabulary, keyed by serializer
type AnnotationsConfig struct {
	Ignore map[string][]string `mapstructure:"ignore" toml:"ignore,omitempty" json:"ignore,omitempty" yaml:"ignore,omitempty"`
	Name   map[string][]string `mapstructure:"name" toml:"name,omitempty" json:"name,omitempty" yaml:"name,omitempty"`
}

// WatchConfig configures `tsgen generate --watch`
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms" json:"debounce_ms" yaml:"debounce_ms"`
	// 0 = unlimited
	MaxRunsPerMinute int `mapstructure:"max_runs_per_minute" toml:"max_runs_per_minute" json:"max_runs_per_minute" yaml:"max_runs_per_minute"`
}
