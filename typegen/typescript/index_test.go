package typescript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tsgen/typegen"
)

func TestGenerateIndex(t *testing.T) {
	result := &typegen.Result{Files: []typegen.File{
		{Namespace: "geo", ModulePath: "geo", Types: []string{"Point", "Line"}},
		{Namespace: "api", ModulePath: "api", Types: []string{"Page"}},
		{Namespace: "empty", ModulePath: "empty"},
	}}

	file, diags := NewGenerator(plainOptions()).GenerateIndex(result)
	assert.Empty(t, diags)
	assert.Equal(t, IndexPath, file.Path)

	want := "/* eslint-disable */\n/* tslint:disable */\n\n" +
		"export type { Page } from './api';\n" +
		"export type { Line, Point } from './geo';\n"
	assert.Equal(t, want, file.Content)
}

func TestGenerateIndexNameCollision(t *testing.T) {
	result := &typegen.Result{Files: []typegen.File{
		{Namespace: "A", ModulePath: "A", Types: []string{"Foo"}},
		{Namespace: "B", ModulePath: "B", Types: []string{"Foo", "Bar"}},
	}}

	file, diags := NewGenerator(plainOptions()).GenerateIndex(result)
	require.Len(t, diags, 1)
	assert.Equal(t, "B", diags[0].Namespace)
	assert.Equal(t, "Foo", diags[0].Type)
	assert.Contains(t, file.Content, "export type { Foo } from './A';\n")
	assert.Contains(t, file.Content, "export type { Bar } from './B';\n")
}
