package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReferenceString(t *testing.T) {
	tests := []struct {
		name string
		ref  TypeReference
		want string
	}{
		{"primitive", Primitive("int32"), "int32"},
		{"collection", CollectionOf(UserType("Point", "geo")), "[]geo.Point"},
		{"map", MapOf(Primitive("string"), Primitive("float64")), "map[string]float64"},
		{"nullable", NullableOf(Primitive("int64")), "*int64"},
		{"generic", GenericOf("Page", "api", UserType("Point", "geo"), Primitive("string")), "api.Page[geo.Point, string]"},
		{"enum without namespace", EnumType("Color", ""), "Color"},
		{"type param", TypeParam("T"), "T"},
		{"zero value", TypeReference{}, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ref.String())
		})
	}
}

func TestIsNamed(t *testing.T) {
	assert.True(t, UserType("A", "x").IsNamed())
	assert.True(t, EnumType("A", "x").IsNamed())
	assert.True(t, GenericOf("A", "x").IsNamed())
	assert.False(t, Primitive("int").IsNamed())
	assert.False(t, TypeParam("T").IsNamed())
	assert.False(t, CollectionOf(UserType("A", "x")).IsNamed())
}

func TestWalkVisitsAllNamedLeaves(t *testing.T) {
	ref := MapOf(
		Primitive("string"),
		CollectionOf(GenericOf("Page", "api", NullableOf(UserType("Point", "geo")), EnumType("Color", "paint"))),
	)

	var names []string
	ref.Walk(func(r TypeReference) bool {
		if r.IsNamed() {
			names = append(names, QualifiedName(r.Namespace, r.Name))
		}
		return true
	})

	assert.Equal(t, []string{"api.Page", "geo.Point", "paint.Color"}, names)
}

func TestWalkSkipsChildren(t *testing.T) {
	ref := CollectionOf(CollectionOf(UserType("Point", "geo")))

	visited := 0
	ref.Walk(func(r TypeReference) bool {
		visited++
		return r.Kind != RefCollection
	})

	assert.Equal(t, 1, visited)
}
