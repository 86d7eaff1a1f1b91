package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	d "github.com/teranos/tsgen/descriptor"
)

func TestDiagnosticString(t *testing.T) {
	typ := d.TypeDescriptor{Name: "Point", Namespace: "geo"}

	assert.Equal(t, "warning: geo.Point.X: odd", Warnf(typ, "X", "odd").String())
	assert.Equal(t, "warning: geo.Point: 2 problems", Warnf(typ, "", "%d problems", 2).String())
	assert.Equal(t, "info: done", Diagnostic{Message: "done"}.String())
}
