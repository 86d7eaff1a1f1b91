package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleGeneric(t *testing.T) {
	assert.Equal(t, "Page<Point, string>", AngleGeneric("Page", []string{"Point", "string"}))
	assert.Equal(t, "Page<T>", AngleGeneric("Page", []string{"T"}))
	assert.Equal(t, "Page", AngleGeneric("Page", nil))
}
