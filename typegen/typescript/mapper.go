package typescript

import (
	"strings"

	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/typegen"
	"github.com/teranos/tsgen/typegen/util"
)

// primitiveTable maps primitive kinds to TypeScript types.
// New kinds are added here; Options.Primitives overrides entries per run.
var primitiveTable = map[string]string{
	"bool":   "boolean",
	"string": "string",
	"char":   "string",

	"int":     "number",
	"int8":    "number",
	"int16":   "number",
	"int32":   "number",
	"int64":   "number",
	"uint":    "number",
	"uint8":   "number",
	"uint16":  "number",
	"uint32":  "number",
	"uint64":  "number",
	"uintptr": "number",
	"float32": "number",
	"float64": "number",
	"decimal": "number",

	"datetime": "string",
	"date":     "string",
	"time":     "string",
	"duration": "number",

	"guid":  "string",
	"uri":   "string",
	"bytes": "Uint8Array",
	"json":  "unknown",
	"any":   "unknown",
}

// dateKinds take Options.DateType when one is configured
var dateKinds = map[string]bool{
	"datetime": true,
	"date":     true,
	"time":     true,
}

var syntax = util.TargetSyntax{
	ArrayFormat: func(elem string) string {
		if needsParens(elem) {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	},
	MapFormat: func(key, value string) string {
		return "Record<" + key + ", " + value + ">"
	},
	GenericFormat: util.AngleGeneric,
	UnknownType:   "unknown",
}

// Mapper turns type references into TypeScript type expressions.
// It is stateless after construction and safe for concurrent use.
type Mapper struct {
	primitives map[string]string
}

// NewMapper builds the primitive table for opts
func NewMapper(opts typegen.Options) *Mapper {
	prims := make(map[string]string, len(primitiveTable))
	for kind, ts := range primitiveTable {
		prims[kind] = ts
	}
	if opts.DateType != "" {
		for kind := range dateKinds {
			prims[kind] = opts.DateType
		}
	}
	// JSON carries binary as base64 text
	if opts.Serializer == typegen.SerializerJSON {
		prims["bytes"] = "string"
	}
	for kind, ts := range opts.Primitives {
		prims[kind] = ts
	}
	return &Mapper{primitives: prims}
}

// Map returns the TypeScript expression for ref. It never fails: unknown
// primitive kinds become "unknown" (see UnknownPrimitives).
func (m *Mapper) Map(ref descriptor.TypeReference) string {
	switch ref.Kind {
	case descriptor.RefNullable:
		// optionality is expressed at the member site
		return m.mapPtr(ref.Elem)
	case descriptor.RefPrimitive:
		if ts, ok := m.primitives[ref.Name]; ok {
			return ts
		}
		return syntax.UnknownType
	case descriptor.RefCollection:
		return syntax.ArrayFormat(m.mapPtr(ref.Elem))
	case descriptor.RefMap:
		return syntax.MapFormat(m.mapPtr(ref.Key), m.mapPtr(ref.Value))
	case descriptor.RefGeneric:
		args := make([]string, len(ref.Args))
		for i, arg := range ref.Args {
			args[i] = m.Map(arg)
		}
		return syntax.GenericFormat(ref.Name, args)
	case descriptor.RefUser, descriptor.RefEnum, descriptor.RefTypeParam:
		return ref.Name
	default:
		return syntax.UnknownType
	}
}

func (m *Mapper) mapPtr(ref *descriptor.TypeReference) string {
	if ref == nil {
		return syntax.UnknownType
	}
	return m.Map(*ref)
}

// UnknownPrimitives lists primitive kinds inside ref that have no table entry
func (m *Mapper) UnknownPrimitives(ref descriptor.TypeReference) []string {
	var unknown []string
	ref.Walk(func(r descriptor.TypeReference) bool {
		if r.Kind == descriptor.RefPrimitive {
			if _, ok := m.primitives[r.Name]; !ok {
				unknown = append(unknown, r.Name)
			}
		}
		return true
	})
	return unknown
}

// needsParens reports whether a type expression has a space outside of
// brackets, e.g. a union coming from an override: "'a' | 'b'"
func needsParens(expr string) bool {
	depth := 0
	inQuote := false
	for _, r := range expr {
		switch {
		case r == '\'':
			inQuote = !inQuote
		case inQuote:
		case strings.ContainsRune("<([{", r):
			depth++
		case strings.ContainsRune(">)]}", r):
			depth--
		case r == ' ' && depth == 0:
			return true
		}
	}
	return false
}
