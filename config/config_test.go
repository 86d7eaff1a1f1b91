package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/typegen"
)

const sampleTOML = `
[source]
packages = ["./models/..."]
catalogs = ["types.yaml"]

[output]
dir = "web/src/generated"
index = true
module_path = "last-segment"
indent = 4
newline = "crlf"

[translation]
naming_style = "camel"
serializer = "msgpack"
date_type = "Date"
parallelism = 2

[translation.primitives]
int64 = "bigint"

[annotations.name]
json = ["yaml.name"]
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultOutputDir, cfg.Output.Dir)
	assert.Equal(t, 2, cfg.Output.Indent)
	assert.Equal(t, "lf", cfg.Output.NewLine)
	assert.Equal(t, "namespace", cfg.Output.ModulePath)
	assert.Equal(t, "json", cfg.Translation.Serializer)
	assert.Equal(t, "none", cfg.Translation.NamingStyle)
	assert.Equal(t, DefaultDebounceMS, cfg.Watch.DebounceMS)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, sampleTOML)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"./models/..."}, cfg.Source.Packages)
	assert.Equal(t, []string{"types.yaml"}, cfg.Source.Catalogs)
	assert.Equal(t, "web/src/generated", cfg.Output.Dir)
	assert.True(t, cfg.Output.Index)
	assert.Equal(t, 4, cfg.Output.Indent)
	assert.Equal(t, "camel", cfg.Translation.NamingStyle)
	assert.Equal(t, "bigint", cfg.Translation.Primitives["int64"])
	assert.Equal(t, []string{"yaml.name"}, cfg.Annotations.Name["json"])
	assert.Equal(t, DefaultDebounceMS, cfg.Watch.DebounceMS)

	absDir, err := filepath.Abs(dir)
	require.NoError(t, err)
	assert.Equal(t, absDir, cfg.Root)
	assert.Equal(t, filepath.Join(absDir, "types.yaml"), cfg.Resolve("types.yaml"))
	assert.Equal(t, "/abs/path", cfg.Resolve("/abs/path"))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, t.TempDir(), sampleTOML))
	require.NoError(t, err)

	opts, err := cfg.Options()
	require.NoError(t, err)

	assert.Equal(t, typegen.NamingCamel, opts.NamingStyle)
	assert.Equal(t, typegen.SerializerMessagePack, opts.Serializer)
	assert.Equal(t, 4, opts.Indent)
	assert.Equal(t, typegen.NewLineCRLF, opts.NewLine)
	assert.Equal(t, "geo", opts.ModulePath("github.com/acme/geo"))
	assert.Equal(t, "Date", opts.DateType)
	assert.Equal(t, 2, opts.Parallelism)
	assert.True(t, opts.Vocabulary.IsName(typegen.SerializerJSON, "yaml.name"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"empty output dir", func(c *Config) { c.Output.Dir = "" }, "output.dir"},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMS = -1 }, "debounce_ms"},
		{"negative indent", func(c *Config) { c.Output.Indent = -2 }, "indent"},
		{"bad newline", func(c *Config) { c.Output.NewLine = "cr" }, "newline"},
		{"bad naming", func(c *Config) { c.Translation.NamingStyle = "kebab" }, "naming style"},
		{"bad serializer", func(c *Config) { c.Translation.Serializer = "xml" }, "serializer"},
		{"bad module path", func(c *Config) { c.Output.ModulePath = "flat" }, "module path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfigError(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)

	cfg := Default()
	cfg.Source.Packages = []string{"./api/..."}
	cfg.Translation.NamingStyle = "snake"
	cfg.Translation.Primitives = map[string]string{"uint64": "bigint"}
	require.NoError(t, Save(path, cfg))

	_, err := os.Stat(path + ".back")
	assert.True(t, os.IsNotExist(err), "first save has nothing to back up")

	loaded, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"./api/..."}, loaded.Source.Packages)
	assert.Equal(t, "snake", loaded.Translation.NamingStyle)
	assert.Equal(t, "bigint", loaded.Translation.Primitives["uint64"])

	first, err := os.ReadFile(path)
	require.NoError(t, err)

	cfg.Output.Dir = "other"
	require.NoError(t, Save(path, cfg))

	backup, err := os.ReadFile(path + ".back")
	require.NoError(t, err)
	assert.Equal(t, string(first), string(backup))
}

func TestSaveRejectsInvalid(t *testing.T) {
	cfg := Default()
	cfg.Output.Indent = -1

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	assert.True(t, errors.IsInvalidConfigError(err))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestFindProjectConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	assert.Equal(t, "", FindProjectConfig(nested))

	path := writeConfig(t, root, "[output]\ndir = \"out\"\n")
	assert.Equal(t, path, FindProjectConfig(nested))
}

func TestLoadUsesProjectConfigAndEnv(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[output]\ndir = \"from-file\"\nindent = 3\n")
	nested := filepath.Join(root, "pkg")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Chdir(nested)
	t.Setenv("TSGEN_TRANSLATION_NAMING_STYLE", "pascal")
	Reset()
	t.Cleanup(Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Output.Dir)
	assert.Equal(t, 3, cfg.Output.Indent)
	assert.Equal(t, "pascal", cfg.Translation.NamingStyle)

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}

func TestLoadWithViper(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("output.dir", "custom")

	cfg, err := LoadWithViper(v)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Output.Dir)
}

func TestGoFlags(t *testing.T) {
	cfg := Default()

	flags, err := cfg.GoFlags()
	require.NoError(t, err)
	assert.Nil(t, flags)

	cfg.Source.GoFlags = `-mod=mod -ldflags='-s -w'`
	flags, err = cfg.GoFlags()
	require.NoError(t, err)
	assert.Equal(t, []string{"-mod=mod", "-ldflags=-s -w"}, flags)

	cfg.Source.GoFlags = `-ldflags='unterminated`
	_, err = cfg.GoFlags()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
	assert.True(t, errors.IsInvalidConfigError(cfg.Validate()))
}

func TestValidateWatchLimits(t *testing.T) {
	cfg := Default()
	cfg.Watch.MaxRunsPerMinute = -1
	assert.True(t, errors.IsInvalidConfigError(cfg.Validate()))

	cfg.Watch.MaxRunsPerMinute = 30
	assert.NoError(t, cfg.Validate())
}
