package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"FirstName":       "first_name",
		"firstName":       "first_name",
		"HTTPSConnection": "https_connection",
		"UserID":          "user_id",
		"X":               "x",
		"already_snake":   "already_snake",
		"Snake_Case":      "snake_case",
		"":                "",
	}
	for in, want := range tests {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}

func TestFirstRune(t *testing.T) {
	assert.Equal(t, "éclair", LowerFirst("Éclair"))
	assert.Equal(t, "Éclair", UpperFirst("éclair"))
	assert.Equal(t, "", UpperFirst(""))
}
