package typescript

import (
	"fmt"
	"sort"
	"strings"

	"github.com/teranos/tsgen/typegen"
)

// IndexPath is the file name of the barrel export
const IndexPath = "index.ts"

// GenerateIndex creates a barrel export file re-exporting every declaration of
// the result from one module. TypeScript cannot re-export two bindings with the
// same name, so when namespaces collide the first file in result order keeps
// the name and the others are reported.
func (g *Generator) GenerateIndex(result *typegen.Result) (typegen.File, []typegen.Diagnostic) {
	var diags []typegen.Diagnostic
	owner := make(map[string]string)

	type export struct {
		modulePath string
		names      []string
	}
	var exports []export

	for _, f := range result.Files {
		var names []string
		for _, name := range f.Types {
			if first, dup := owner[name]; dup {
				diags = append(diags, typegen.Diagnostic{
					Severity:  typegen.SeverityWarning,
					Namespace: f.Namespace,
					Type:      name,
					Message:   fmt.Sprintf("not re-exported from %s: name already exported from namespace %q", IndexPath, first),
				})
				continue
			}
			owner[name] = f.Namespace
			names = append(names, name)
		}
		if len(names) == 0 {
			continue
		}
		sort.Strings(names)
		exports = append(exports, export{modulePath: f.ModulePath, names: names})
	}

	sort.Slice(exports, func(i, j int) bool {
		return exports[i].modulePath < exports[j].modulePath
	})

	w := newCodeWriter(g.opts)
	w.Line(0, "/* eslint-disable */")
	w.Line(0, "/* tslint:disable */")
	w.Blank()
	for _, exp := range exports {
		w.Line(0, fmt.Sprintf("export type { %s } from './%s';", strings.Join(exp.names, ", "), exp.modulePath))
	}

	return typegen.File{
		Path:    IndexPath,
		Content: w.String(),
	}, diags
}
