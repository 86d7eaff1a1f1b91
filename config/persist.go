package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/teranos/tsgen/errors"
)

// createBackup copies an existing config to <path>.back before it is replaced
func createBackup(path string) error {
	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to read config for backup")
	}

	if err := os.WriteFile(path+".back", content, 0644); err != nil {
		return errors.Wrap(err, "failed to create .back")
	}
	return nil
}

// Save writes cfg as TOML, keeping the previous file as <path>.back
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "failed to marshal config")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}
	if err := createBackup(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
