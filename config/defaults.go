package config

import (
	"github.com/spf13/viper"
)

// Default values
const (
	DefaultOutputDir  = "generated"
	DefaultDebounceMS = 500
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("source.packages", []string{})
	v.SetDefault("source.catalogs", []string{})
	v.SetDefault("source.build_tags", []string{})
	v.SetDefault("source.go_flags", "")

	v.SetDefault("output.dir", DefaultOutputDir)
	v.SetDefault("output.index", false)
	v.SetDefault("output.module_path", "namespace")
	v.SetDefault("output.indent", 2)
	v.SetDefault("output.newline", "lf")

	v.SetDefault("translation.naming_style", "none")
	v.SetDefault("translation.serializer", "json")
	v.SetDefault("translation.date_type", "")
	v.SetDefault("translation.dedupe_enum_literals", false)
	v.SetDefault("translation.parallelism", 0)

	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
	v.SetDefault("watch.max_runs_per_minute", 0)
}

// Default returns the configuration made of defaults only
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always decode
		panic(err)
	}
	return cfg
}
