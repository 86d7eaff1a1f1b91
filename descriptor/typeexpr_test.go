package descriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTypeExpr(t *testing.T) {
	tests := []struct {
		expr string
		want TypeReference
	}{
		{"int32", Primitive("int32")},
		{"  string ", Primitive("string")},
		{"Point", UserType("Point", "")},
		{"geo.Point", UserType("Point", "geo")},
		{"Other.Ns.Bar", UserType("Bar", "Other.Ns")},
		{"github.com/acme/geo.Point", UserType("Point", "github.com/acme/geo")},
		{"Point[]", CollectionOf(UserType("Point", ""))},
		{"int32?", NullableOf(Primitive("int32"))},
		{"int32?[]", CollectionOf(NullableOf(Primitive("int32")))},
		{"(int32?)[]", CollectionOf(NullableOf(Primitive("int32")))},
		{"int32[][]", CollectionOf(CollectionOf(Primitive("int32")))},
		{"map<string, Point>", MapOf(Primitive("string"), UserType("Point", ""))},
		{"map<string,map<string,int>>", MapOf(Primitive("string"), MapOf(Primitive("string"), Primitive("int")))},
		{"Page<Point>", GenericOf("Page", "", UserType("Point", ""))},
		{"api.Pair<string, geo.Point[]>", GenericOf("Pair", "api", Primitive("string"), CollectionOf(UserType("Point", "geo")))},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseTypeExpr(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTypeExprErrors(t *testing.T) {
	for _, expr := range []string{
		"",
		"[]",
		"map<string>",
		"Page<Point",
		"(int32",
		"int32 extra",
		"Page<,>",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := ParseTypeExpr(expr)
			assert.Error(t, err)
		})
	}
}
