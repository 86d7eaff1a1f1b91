package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/errors"
)

func TestNamingStyleTransform(t *testing.T) {
	tests := []struct {
		style NamingStyle
		in    string
		want  string
	}{
		{NamingNone, "FirstName", "FirstName"},
		{NamingCamel, "FirstName", "firstName"},
		{NamingCamel, "ID", "iD"},
		{NamingPascal, "firstName", "FirstName"},
		{NamingSnake, "FirstName", "first_name"},
		{NamingSnake, "UserID", "user_id"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.style.Transform(tt.in), "%s(%s)", tt.style, tt.in)
	}
}

func TestParseEnums(t *testing.T) {
	style, err := ParseNamingStyle("Camel")
	require.NoError(t, err)
	assert.Equal(t, NamingCamel, style)

	s, err := ParseSerializer("messagepack")
	require.NoError(t, err)
	assert.Equal(t, SerializerMessagePack, s)

	nl, err := ParseNewLine("CRLF")
	require.NoError(t, err)
	assert.Equal(t, NewLineCRLF, nl)

	for _, err := range []error{
		func() error { _, err := ParseNamingStyle("kebab"); return err }(),
		func() error { _, err := ParseSerializer("protobuf"); return err }(),
		func() error { _, err := ParseNewLine("cr"); return err }(),
		func() error { _, err := ParseModulePath("flat"); return err }(),
	} {
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfigError(err), err.Error())
	}
}

func TestModulePathStrategies(t *testing.T) {
	assert.Equal(t, []string{"last-segment", "lowercase", "namespace"}, ModulePathStrategies())

	tests := map[string]map[string]string{
		"namespace":    {"Acme.Geo": "Acme.Geo", "": ""},
		"last-segment": {"Acme.Geo": "Geo", "github.com/acme/geo": "geo", "geo": "geo"},
		"lowercase":    {"Acme.Geo": "acme.geo"},
	}
	for name, cases := range tests {
		fn, err := ParseModulePath(name)
		require.NoError(t, err)
		for in, want := range cases {
			assert.Equal(t, want, fn(in), "%s(%q)", name, in)
		}
	}
}

func TestNewOptions(t *testing.T) {
	opts, err := NewOptions(Settings{
		NamingStyle:        "snake",
		Serializer:         "msgpack",
		Indent:             4,
		NewLine:            "crlf",
		ModulePath:         "lowercase",
		DateType:           "Date",
		Primitives:         map[string]string{"int64": "bigint"},
		DedupeEnumLiterals: true,
		Parallelism:        3,
	})
	require.NoError(t, err)

	assert.Equal(t, NamingSnake, opts.NamingStyle)
	assert.Equal(t, SerializerMessagePack, opts.Serializer)
	assert.Equal(t, "    ", opts.IndentString())
	assert.Equal(t, NewLineCRLF, opts.NewLine)
	assert.Equal(t, "acme.geo", opts.ModulePath("Acme.Geo"))
	assert.Equal(t, "Date", opts.DateType)
	assert.Equal(t, "bigint", opts.Primitives["int64"])
	assert.True(t, opts.DedupeEnumLiterals)
	assert.Equal(t, 3, opts.Parallelism)
	assert.NoError(t, opts.Validate())
}

func TestNewOptionsDefaults(t *testing.T) {
	opts, err := NewOptions(Settings{Indent: 2})
	require.NoError(t, err)

	def := DefaultOptions()
	assert.Equal(t, def.NamingStyle, opts.NamingStyle)
	assert.Equal(t, def.Serializer, opts.Serializer)
	assert.Equal(t, def.NewLine, opts.NewLine)
	assert.Equal(t, "Acme.Geo", opts.ModulePath("Acme.Geo"))
	assert.True(t, opts.Vocabulary.IsIgnore(SerializerJSON, descriptor.AnnotationJSONIgnore))
}

func TestNewOptionsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
	}{
		{"negative indent", Settings{Indent: -1}},
		{"negative parallelism", Settings{Parallelism: -2}},
		{"unknown naming", Settings{NamingStyle: "kebab"}},
		{"unknown serializer", Settings{Serializer: "xml"}},
		{"unknown newline", Settings{NewLine: "cr"}},
		{"unknown module path", Settings{ModulePath: "flat"}},
		{"empty primitive", Settings{Primitives: map[string]string{"int64": " "}}},
		{"unknown annotation serializer", Settings{IgnoreAnnotations: map[string][]string{"xml": {"xml.ignore"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewOptions(tt.settings)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidConfigError(err))
		})
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())

	opts := DefaultOptions()
	opts.Indent = -1
	assert.True(t, errors.IsInvalidConfigError(opts.Validate()))

	opts = DefaultOptions()
	opts.NewLine = "\r"
	assert.True(t, errors.IsInvalidConfigError(opts.Validate()))

	opts = DefaultOptions()
	opts.ModulePath = nil
	assert.True(t, errors.IsInvalidConfigError(opts.Validate()))

	opts = DefaultOptions()
	opts.Serializer = Serializer(7)
	assert.True(t, errors.IsInvalidConfigError(opts.Validate()))
}

func TestVocabulary(t *testing.T) {
	v := DefaultVocabulary()
	assert.True(t, v.IsIgnore(SerializerJSON, descriptor.AnnotationJSONIgnore))
	assert.True(t, v.IsName(SerializerJSON, descriptor.AnnotationJSONName))
	assert.True(t, v.IsIgnore(SerializerMessagePack, descriptor.AnnotationMsgpackIgnore))
	assert.True(t, v.IsName(SerializerMessagePack, descriptor.AnnotationMsgpackKey))
	assert.False(t, v.IsName(SerializerJSON, descriptor.AnnotationMsgpackKey))
	assert.False(t, v.IsIgnore(SerializerNone, descriptor.AnnotationJSONIgnore))

	extended := v.With(map[Serializer][]string{SerializerJSON: {"bson.ignore"}}, nil)
	assert.True(t, extended.IsIgnore(SerializerJSON, "bson.ignore"))
	assert.True(t, extended.IsIgnore(SerializerJSON, descriptor.AnnotationJSONIgnore))
	assert.False(t, v.IsIgnore(SerializerJSON, "bson.ignore"))
}
