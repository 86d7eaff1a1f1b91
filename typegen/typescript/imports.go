package typescript

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/teranos/tsgen/typegen"
)

// writeHeader writes the lint preamble and one import statement per
// referenced namespace, then a blank line
func (g *Generator) writeHeader(w *codeWriter, group typegen.Group) {
	w.Line(0, "/* eslint-disable */")
	w.Line(0, "/* tslint:disable */")

	from := g.opts.ModulePath(group.Namespace)
	for _, ns := range group.ImportNamespaces(g.opts.NamespaceLess) {
		names := group.Imports[ns]
		w.Line(0, fmt.Sprintf("import { %s } from '%s';", strings.Join(names, ", "), importPath(from, g.opts.ModulePath(ns))))
	}

	w.Blank()
}

// importPath returns the specifier that reaches module to from a file written
// at module from. Module paths are slash separated and relative to the output dir.
func importPath(from, to string) string {
	rel, err := filepath.Rel(filepath.Dir(filepath.FromSlash(from)), filepath.FromSlash(to))
	if err != nil {
		return "./" + to
	}
	rel = filepath.ToSlash(rel)
	if strings.HasPrefix(rel, "../") {
		return rel
	}
	return "./" + rel
}
