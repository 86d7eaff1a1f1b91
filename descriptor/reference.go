package descriptor

import (
	"strings"
)

// RefKind tags the variant held by a TypeReference
type RefKind int

const (
	RefPrimitive RefKind = iota + 1
	RefCollection
	RefMap
	RefNullable
	RefGeneric
	RefUser
	RefEnum
	RefTypeParam
)

// TypeReference is a recursive description of a member's type.
//
// Named leaves (RefUser, RefEnum, RefGeneric) carry only a name and namespace,
// never the referenced descriptor, so self-referential and mutually recursive
// types need no special handling.
type TypeReference struct {
	Kind RefKind

	// Name is the primitive kind for RefPrimitive, otherwise the type or parameter name
	Name      string
	Namespace string

	// Elem is the element of a collection or the inner type of a nullable value
	Elem *TypeReference

	Key   *TypeReference
	Value *TypeReference

	// Args are the type arguments of a generic user type
	Args []TypeReference

	// Literals optionally mirror the enumeration's values for RefEnum
	Literals []EnumLiteral
}

// Primitive returns a reference to a primitive kind such as "int32" or "string"
func Primitive(kind string) TypeReference {
	return TypeReference{Kind: RefPrimitive, Name: kind}
}

// CollectionOf returns a reference to a sequence of elem
func CollectionOf(elem TypeReference) TypeReference {
	return TypeReference{Kind: RefCollection, Elem: &elem}
}

// MapOf returns a reference to a dictionary from key to value
func MapOf(key, value TypeReference) TypeReference {
	return TypeReference{Kind: RefMap, Key: &key, Value: &value}
}

// NullableOf wraps inner as a nullable value
func NullableOf(inner TypeReference) TypeReference {
	return TypeReference{Kind: RefNullable, Elem: &inner}
}

// GenericOf returns a reference to an instantiated generic user type
func GenericOf(name, namespace string, args ...TypeReference) TypeReference {
	return TypeReference{Kind: RefGeneric, Name: name, Namespace: namespace, Args: args}
}

// UserType returns a reference to a user-declared type
func UserType(name, namespace string) TypeReference {
	return TypeReference{Kind: RefUser, Name: name, Namespace: namespace}
}

// EnumType returns a reference to an enumeration
func EnumType(name, namespace string, literals ...EnumLiteral) TypeReference {
	return TypeReference{Kind: RefEnum, Name: name, Namespace: namespace, Literals: literals}
}

// TypeParam returns a reference to a type parameter of the enclosing declaration
func TypeParam(name string) TypeReference {
	return TypeReference{Kind: RefTypeParam, Name: name}
}

// IsNamed reports whether the reference points at a declaration by name
// (and therefore may need an import).
func (r TypeReference) IsNamed() bool {
	return r.Kind == RefUser || r.Kind == RefEnum || r.Kind == RefGeneric
}

// Walk visits r and every nested reference in pre-order.
// Returning false from fn skips the children of that reference.
func (r TypeReference) Walk(fn func(TypeReference) bool) {
	if !fn(r) {
		return
	}
	if r.Elem != nil {
		r.Elem.Walk(fn)
	}
	if r.Key != nil {
		r.Key.Walk(fn)
	}
	if r.Value != nil {
		r.Value.Walk(fn)
	}
	for _, arg := range r.Args {
		arg.Walk(fn)
	}
}

// String renders the reference in source notation, used in generated doc comments
func (r TypeReference) String() string {
	var sb strings.Builder
	r.writeTo(&sb)
	return sb.String()
}

func (r TypeReference) writeTo(sb *strings.Builder) {
	switch r.Kind {
	case RefPrimitive, RefTypeParam:
		sb.WriteString(r.Name)
	case RefCollection:
		sb.WriteString("[]")
		writeRef(sb, r.Elem)
	case RefMap:
		sb.WriteString("map[")
		writeRef(sb, r.Key)
		sb.WriteString("]")
		writeRef(sb, r.Value)
	case RefNullable:
		sb.WriteString("*")
		writeRef(sb, r.Elem)
	case RefGeneric:
		sb.WriteString(QualifiedName(r.Namespace, r.Name))
		sb.WriteString("[")
		for i, arg := range r.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			arg.writeTo(sb)
		}
		sb.WriteString("]")
	case RefUser, RefEnum:
		sb.WriteString(QualifiedName(r.Namespace, r.Name))
	default:
		sb.WriteString("invalid")
	}
}

func writeRef(sb *strings.Builder, r *TypeReference) {
	if r == nil {
		sb.WriteString("invalid")
		return
	}
	r.writeTo(sb)
}
