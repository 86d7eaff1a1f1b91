package config

import (
	"github.com/kballard/go-shellquote"

	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/typegen"
)

// Validate checks that the configuration is valid.
// All failures are errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return errors.NewInvalidConfigError("output.dir cannot be empty")
	}

	// Watch debounce: 0 = regenerate on every event, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.NewInvalidConfigError("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	if c.Watch.MaxRunsPerMinute < 0 {
		return errors.NewInvalidConfigError("watch.max_runs_per_minute must be >= 0, got %d", c.Watch.MaxRunsPerMinute)
	}

	if _, err := c.GoFlags(); err != nil {
		return err
	}

	if _, err := c.Options(); err != nil {
		return err
	}
	return nil
}

// Settings returns the translation settings in typegen's textual form
func (c *Config) Settings() typegen.Settings {
	return typegen.Settings{
		NamingStyle:        c.Translation.NamingStyle,
		Serializer:         c.Translation.Serializer,
		Indent:             c.Output.Indent,
		NewLine:            c.Output.NewLine,
		ModulePath:         c.Output.ModulePath,
		DateType:           c.Translation.DateType,
		Primitives:         c.Translation.Primitives,
		DedupeEnumLiterals: c.Translation.DedupeEnumLiterals,
		Parallelism:        c.Translation.Parallelism,
		IgnoreAnnotations:  c.Annotations.Ignore,
		NameAnnotations:    c.Annotations.Name,
	}
}

// Options converts the configuration into engine options
func (c *Config) Options() (typegen.Options, error) {
	opts, err := typegen.NewOptions(c.Settings())
	if err != nil {
		return typegen.Options{}, errors.WithHintf(err, "check %s or the TSGEN_* environment", FileName)
	}
	return opts, nil
}

// GoFlags splits source.go_flags the way a shell would
func (c *Config) GoFlags() ([]string, error) {
	if c.Source.GoFlags == "" {
		return nil, nil
	}
	flags, err := shellquote.Split(c.Source.GoFlags)
	if err != nil {
		return nil, errors.NewInvalidConfigError("source.go_flags: %v", err)
	}
	return flags, nil
}
