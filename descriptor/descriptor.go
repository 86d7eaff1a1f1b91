// Package descriptor defines the language-independent description of source types
// that front ends produce and the typegen engine consumes.
//
// Descriptors are plain values. Once handed to NewCatalog they are treated as
// immutable: nothing in the engine mutates them, and callers must not either.
package descriptor

import "strings"

// Kind selects the translation strategy for a type
type Kind int

const (
	// PlainData is a struct/class rendered as an object literal type
	PlainData Kind = iota + 1
	// Enumeration is rendered as a union of its literal values
	Enumeration
	// ExternallyConfigured types are rendered from Override verbatim
	ExternallyConfigured
)

var kindNames = map[Kind]string{
	PlainData:            "plain",
	Enumeration:          "enum",
	ExternallyConfigured: "configured",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "invalid"
}

// ParseKind maps a kind name ("plain", "enum", "configured") to a Kind
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if strings.EqualFold(name, s) {
			return k, true
		}
	}
	return 0, false
}

// TypeDescriptor describes one discovered source type
type TypeDescriptor struct {
	Name      string
	Namespace string
	Kind      Kind

	// Override is the explicit target type expression; when set, members are never visited
	Override string

	// Base is the base type reference, nil when the type has none
	Base *TypeReference

	// TypeParams names the parameters of a generic declaration, in order
	TypeParams []string

	Members  []MemberDescriptor
	Literals []EnumLiteral

	// Doc is the source documentation, informational only
	Doc string
}

// QualifiedName returns "Namespace.Name", or Name for the empty namespace
func (t TypeDescriptor) QualifiedName() string {
	return QualifiedName(t.Namespace, t.Name)
}

// QualifiedName joins a namespace and a type name
func QualifiedName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + "." + name
}

// MemberKind distinguishes the symbol kinds a member can originate from
type MemberKind int

const (
	// Field is a data field
	Field MemberKind = iota + 1
	// Property is an accessor-backed property
	Property
	// Method never reaches translation; front ends that emit it violate the contract
	Method
)

func (k MemberKind) String() string {
	switch k {
	case Field:
		return "field"
	case Property:
		return "property"
	case Method:
		return "method"
	default:
		return "invalid"
	}
}

// MemberDescriptor describes one field or property of a PlainData type
type MemberDescriptor struct {
	Name string
	Kind MemberKind
	Type TypeReference

	// Nullable marks reference-nullable members (the value may be absent on the wire)
	Nullable bool
	Static   bool

	// Annotations in source declaration order
	Annotations []Annotation
}

// Annotation is a serialization annotation attached to a member, identified by a
// well-known ID such as "json.name". Arg holds the first argument, if any.
type Annotation struct {
	ID  string
	Arg any
}

// StringArg returns Arg when it is a string
func (a Annotation) StringArg() (string, bool) {
	s, ok := a.Arg.(string)
	return s, ok
}

// EnumLiteral is one member of an enumeration with its underlying value.
// Value holds the literal's source text: digits for numeric values, the raw
// (unquoted) text for string values.
type EnumLiteral struct {
	Name     string
	Value    string
	IsString bool
}

// Well-known annotation IDs emitted by the bundled front ends
const (
	AnnotationJSONIgnore    = "json.ignore"
	AnnotationJSONName      = "json.name"
	AnnotationMsgpackIgnore = "msgpack.ignore"
	AnnotationMsgpackKey    = "msgpack.key"
)
