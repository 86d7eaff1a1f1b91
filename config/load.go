package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/tsgen/errors"
)

var (
	mu           sync.Mutex
	globalConfig *Config
)

// Load reads tsgen.toml (searched upwards from the working directory) merged
// with TSGEN_* environment variables. The result is cached; see Reset.
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	v, path, err := newViper()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	cfg.Root = rootFor(path)

	globalConfig = cfg
	return cfg, nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path.
// Environment variables are not consulted.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	cfg.Root = rootFor(path)
	return cfg, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
}

// FindProjectConfig searches for tsgen.toml by walking up from dir.
// Returns the empty string when none is found.
func FindProjectConfig(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// newViper initializes Viper with defaults, the project config and the environment
func newViper() (*viper.Viper, string, error) {
	v := viper.New()

	v.SetEnvPrefix("TSGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	wd, err := os.Getwd()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get working directory")
	}

	path := FindProjectConfig(wd)
	if path == "" {
		return v, "", nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return nil, "", errors.Wrapf(err, "failed to read config file %s", path)
	}
	return v, path, nil
}

func rootFor(configPath string) string {
	if configPath != "" {
		if abs, err := filepath.Abs(filepath.Dir(configPath)); err == nil {
			return abs
		}
		return filepath.Dir(configPath)
	}
	wd, _ := os.Getwd()
	return wd
}

// Resolve makes a config-relative path absolute against Root
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Root == "" {
		return path
	}
	return filepath.Join(c.Root, path)
}
