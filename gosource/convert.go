package gosource

import (
	"go/types"

	"github.com/teranos/tsgen/descriptor"
)

// wellKnown maps standard library named types to primitive kinds
var wellKnown = map[string]string{
	"time.Time":                   "datetime",
	"time.Duration":               "duration",
	"encoding/json.RawMessage":    "json",
	"net/url.URL":                 "uri",
	"github.com/google/uuid.UUID": "guid",
	"math/big.Int":                "decimal",
	"math/big.Float":              "decimal",
}

var basicKinds = map[types.BasicKind]string{
	types.Bool:    "bool",
	types.String:  "string",
	types.Int:     "int",
	types.Int8:    "int8",
	types.Int16:   "int16",
	types.Int32:   "int32",
	types.Int64:   "int64",
	types.Uint:    "uint",
	types.Uint8:   "uint8",
	types.Uint16:  "uint16",
	types.Uint32:  "uint32",
	types.Uint64:  "uint64",
	types.Uintptr: "uintptr",
	types.Float32: "float32",
	types.Float64: "float64",

	types.UntypedBool:   "bool",
	types.UntypedInt:    "int",
	types.UntypedRune:   "int32",
	types.UntypedFloat:  "float64",
	types.UntypedString: "string",
}

// converter turns go/types types into descriptor references
type converter struct {
	enums map[*types.TypeName]bool

	// expanding guards transparent named types such as `type Tree []Tree`
	expanding map[*types.Named]bool
}

func newConverter(enums map[*types.TypeName]bool) *converter {
	return &converter{
		enums:     enums,
		expanding: make(map[*types.Named]bool),
	}
}

// convert returns the reference for t. ok is false for types that cannot be
// serialized at all (functions, channels, unsafe pointers).
func (c *converter) convert(t types.Type) (descriptor.TypeReference, bool) {
	switch t := types.Unalias(t).(type) {
	case *types.Basic:
		if t.Kind() == types.UnsafePointer || t.Kind() == types.Invalid {
			return descriptor.TypeReference{}, false
		}
		if name, ok := basicKinds[t.Kind()]; ok {
			return descriptor.Primitive(name), true
		}
		// complex64/complex128 and friends: left for the mapper to flag
		return descriptor.Primitive(t.Name()), true

	case *types.Pointer:
		elem, ok := c.convert(t.Elem())
		if !ok {
			return elem, false
		}
		return descriptor.NullableOf(elem), true

	case *types.Slice:
		if isByte(t.Elem()) {
			return descriptor.Primitive("bytes"), true
		}
		elem, ok := c.convert(t.Elem())
		if !ok {
			return elem, false
		}
		return descriptor.CollectionOf(elem), true

	case *types.Array:
		elem, ok := c.convert(t.Elem())
		if !ok {
			return elem, false
		}
		return descriptor.CollectionOf(elem), true

	case *types.Map:
		key, ok := c.convert(t.Key())
		if !ok {
			return key, false
		}
		value, ok := c.convert(t.Elem())
		if !ok {
			return value, false
		}
		return descriptor.MapOf(key, value), true

	case *types.Interface:
		return descriptor.Primitive("any"), true

	case *types.Struct:
		// anonymous structs have no name to reference
		return descriptor.Primitive("any"), true

	case *types.TypeParam:
		return descriptor.TypeParam(t.Obj().Name()), true

	case *types.Named:
		return c.convertNamed(t)

	default:
		// *types.Signature, *types.Chan, *types.Tuple
		return descriptor.TypeReference{}, false
	}
}

func (c *converter) convertNamed(t *types.Named) (descriptor.TypeReference, bool) {
	obj := t.Origin().Obj()
	ns := namespaceOf(obj)

	if kind, ok := wellKnown[ns+"."+obj.Name()]; ok {
		return descriptor.Primitive(kind), true
	}
	if obj.Pkg() == nil {
		// predeclared `error`
		return descriptor.Primitive("string"), true
	}

	if c.enums[obj] {
		return descriptor.EnumType(obj.Name(), ns), true
	}

	if _, isStruct := t.Underlying().(*types.Struct); isStruct {
		if args := t.TypeArgs(); args.Len() > 0 {
			refs := make([]descriptor.TypeReference, 0, args.Len())
			for i := range args.Len() {
				ref, ok := c.convert(args.At(i))
				if !ok {
					ref = descriptor.Primitive("any")
				}
				refs = append(refs, ref)
			}
			return descriptor.GenericOf(obj.Name(), ns, refs...), true
		}
		return descriptor.UserType(obj.Name(), ns), true
	}

	// Other named types (type IDs []string, type Score float64) are transparent
	if c.expanding[t] {
		return descriptor.Primitive("any"), true
	}
	c.expanding[t] = true
	defer delete(c.expanding, t)
	return c.convert(t.Underlying())
}

func isByte(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)
	return ok && b.Kind() == types.Uint8
}

func namespaceOf(obj types.Object) string {
	if obj.Pkg() == nil {
		return ""
	}
	return obj.Pkg().Path()
}
