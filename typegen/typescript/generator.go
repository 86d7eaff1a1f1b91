// Package typescript renders namespace groups as TypeScript type declarations.
package typescript

import (
	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/typegen"
)

// Generator implements typegen.Generator for TypeScript
type Generator struct {
	opts     typegen.Options
	mapper   *Mapper
	resolver *MemberResolver
}

// NewGenerator creates a TypeScript generator. opts are read-only afterwards.
func NewGenerator(opts typegen.Options) *Generator {
	return &Generator{
		opts:     opts,
		mapper:   NewMapper(opts),
		resolver: NewMemberResolver(opts),
	}
}

// Language returns "typescript"
func (g *Generator) Language() string {
	return "typescript"
}

// FileExtension returns "ts"
func (g *Generator) FileExtension() string {
	return "ts"
}

// GenerateFile renders the header and every declaration of the group,
// separated by blank lines, in discovery order.
func (g *Generator) GenerateFile(catalog *descriptor.Catalog, group typegen.Group) (string, []typegen.Diagnostic, error) {
	w := newCodeWriter(g.opts)
	g.writeHeader(w, group)

	var diags []typegen.Diagnostic
	for i, t := range group.Types {
		if i > 0 {
			w.Blank()
		}
		d, err := g.translate(w, catalog, t)
		if err != nil {
			return "", nil, err
		}
		diags = append(diags, d...)
	}

	return w.String(), diags, nil
}
