package typescript

import (
	"fmt"
	"strings"

	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/typegen"
)

// translate writes the declaration for t. Dispatch is a closed switch over
// descriptor.Kind; an override always wins over the kind.
func (g *Generator) translate(w *codeWriter, catalog *descriptor.Catalog, t descriptor.TypeDescriptor) ([]typegen.Diagnostic, error) {
	w.Line(0, fmt.Sprintf("/** Transpiled from %s */", t.QualifiedName()))

	if t.Override != "" {
		g.translateConfigured(w, t)
		return nil, nil
	}

	switch t.Kind {
	case descriptor.PlainData:
		return g.translatePlain(w, catalog, t)
	case descriptor.Enumeration:
		return g.translateEnum(w, t), nil
	case descriptor.ExternallyConfigured:
		// NewCatalog rejects configured types without an override
		return nil, errors.AssertionFailedf("type %s is externally configured but has no override", t.QualifiedName())
	default:
		return nil, errors.AssertionFailedf("type %s has unknown kind %d", t.QualifiedName(), int(t.Kind))
	}
}

func (g *Generator) translateConfigured(w *codeWriter, t descriptor.TypeDescriptor) {
	w.Line(0, fmt.Sprintf("export type %s = %s;", t.Name, t.Override))
}

func (g *Generator) translatePlain(w *codeWriter, catalog *descriptor.Catalog, t descriptor.TypeDescriptor) ([]typegen.Diagnostic, error) {
	var diags []typegen.Diagnostic

	w.Line(0, fmt.Sprintf("export type %s%s = {", t.Name, typeParams(t.TypeParams)))

	for _, m := range t.Members {
		if m.Static {
			continue
		}

		res, err := g.resolver.Resolve(m)
		if err != nil {
			return nil, errors.Wrapf(err, "type %s", t.QualifiedName())
		}
		if !res.Include {
			continue
		}

		for _, kind := range g.mapper.UnknownPrimitives(m.Type) {
			diags = append(diags, typegen.Warnf(t, m.Name, "unknown primitive kind %q mapped to unknown", kind))
		}

		optional := ""
		if res.Optional {
			optional = "?"
		}
		w.Line(1, fmt.Sprintf("/** Transpiled from %s */", sourceType(m.Type)))
		w.Line(1, fmt.Sprintf("%s%s: %s;", propertyName(res.Name), optional, g.mapper.Map(m.Type)))
	}

	if catalog.Contains(t.Base) {
		w.Line(0, fmt.Sprintf("} & %s;", g.mapper.Map(*t.Base)))
	} else {
		w.Line(0, "};")
	}
	return diags, nil
}

func (g *Generator) translateEnum(w *codeWriter, t descriptor.TypeDescriptor) []typegen.Diagnostic {
	var diags []typegen.Diagnostic
	var values []string
	seen := make(map[string]string)

	for _, lit := range t.Literals {
		v := lit.Value
		if lit.IsString {
			v = quote(v)
		}
		if g.opts.DedupeEnumLiterals {
			if first, dup := seen[v]; dup {
				diags = append(diags, typegen.Warnf(t, lit.Name, "duplicate value %s (same as %s) dropped", v, first))
				continue
			}
			seen[v] = lit.Name
		}
		values = append(values, v)
	}

	union := "never"
	if len(values) > 0 {
		union = strings.Join(values, " | ")
	}
	w.Line(0, fmt.Sprintf("export type %s = %s;", t.Name, union))
	return diags
}

func typeParams(params []string) string {
	if len(params) == 0 {
		return ""
	}
	return "<" + strings.Join(params, ", ") + ">"
}

// sourceType is the source notation shown in member doc comments.
// Nullable values show their inner type; the ? carries the nullability.
func sourceType(ref descriptor.TypeReference) string {
	if ref.Kind == descriptor.RefNullable && ref.Elem != nil {
		return ref.Elem.String()
	}
	return ref.String()
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`'`, `\'`,
	"\n", `\n`,
	"\r", `\r`,
)

// quote renders s as a single-quoted string literal
func quote(s string) string {
	return "'" + quoteReplacer.Replace(s) + "'"
}
