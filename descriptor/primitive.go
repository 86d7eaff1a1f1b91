package descriptor

// Primitive kinds produced by the bundled front ends. The TypeScript mapping for
// each kind is table data in typegen/typescript; kinds outside this list are still
// legal references and map to the unknown type with a diagnostic.
var primitiveKinds = map[string]bool{
	"bool":   true,
	"string": true,
	"char":   true,

	"int":     true,
	"int8":    true,
	"int16":   true,
	"int32":   true,
	"int64":   true,
	"uint":    true,
	"uint8":   true,
	"uint16":  true,
	"uint32":  true,
	"uint64":  true,
	"uintptr": true,
	"float32": true,
	"float64": true,
	"decimal": true,

	"datetime": true,
	"date":     true,
	"time":     true,
	"duration": true,

	"guid":  true,
	"uri":   true,
	"bytes": true,
	"json":  true,
	"any":   true,
}

// IsPrimitiveKind reports whether name is one of the known primitive kinds
func IsPrimitiveKind(name string) bool {
	return primitiveKinds[name]
}
