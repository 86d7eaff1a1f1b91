package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindRoundTrip(t *testing.T) {
	for _, k := range []Kind{PlainData, Enumeration, ExternallyConfigured} {
		parsed, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseKind("class")
	assert.False(t, ok)
	assert.Equal(t, "invalid", Kind(0).String())
}

func TestParseKindIgnoresCase(t *testing.T) {
	k, ok := ParseKind("Enum")
	assert.True(t, ok)
	assert.Equal(t, Enumeration, k)
}

func TestQualifiedName(t *testing.T) {
	assert.Equal(t, "geo.Point", TypeDescriptor{Name: "Point", Namespace: "geo"}.QualifiedName())
	assert.Equal(t, "Point", TypeDescriptor{Name: "Point"}.QualifiedName())
}

func TestAnnotationStringArg(t *testing.T) {
	s, ok := Annotation{ID: "json.name", Arg: "x"}.StringArg()
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	_, ok = Annotation{ID: "msgpack.key", Arg: 3}.StringArg()
	assert.False(t, ok)

	_, ok = Annotation{ID: "json.ignore"}.StringArg()
	assert.False(t, ok)
}

func TestMemberKindString(t *testing.T) {
	assert.Equal(t, "field", Field.String())
	assert.Equal(t, "property", Property.String())
	assert.Equal(t, "method", Method.String())
	assert.Equal(t, "invalid", MemberKind(9).String())
}
