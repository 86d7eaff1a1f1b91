package util

import "strings"

// TargetSyntax configures how composite type expressions are spelled in a
// target language. Generators fill one in and hand it to their type mapper.
type TargetSyntax struct {
	// ArrayFormat formats a sequence given the element type, e.g. "%s[]"
	ArrayFormat func(elem string) string

	// MapFormat formats a dictionary given key and value types
	MapFormat func(key, value string) string

	// GenericFormat formats an instantiated generic type
	GenericFormat func(name string, args []string) string

	// UnknownType is returned for dynamic values and unrecognized primitives
	UnknownType string
}

// AngleGeneric formats generics the way TypeScript, Java and C# spell them: Name<A, B>
func AngleGeneric(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + "<" + strings.Join(args, ", ") + ">"
}
