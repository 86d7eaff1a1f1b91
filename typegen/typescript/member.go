package typescript

import (
	"regexp"

	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/typegen"
)

// Resolution is the member resolver's decision for one member
type Resolution struct {
	// Include is false when a serializer ignore annotation excludes the member
	Include bool

	// Name is the serialized property name
	Name string

	// Optional renders the member as name?: T
	Optional bool
}

// MemberResolver decides whether a member is emitted and under which name
type MemberResolver struct {
	style      typegen.NamingStyle
	serializer typegen.Serializer
	vocab      typegen.AnnotationVocabulary
}

// NewMemberResolver returns a resolver for the naming and serializer settings of opts
func NewMemberResolver(opts typegen.Options) *MemberResolver {
	return &MemberResolver{
		style:      opts.NamingStyle,
		serializer: opts.Serializer,
		vocab:      opts.Vocabulary,
	}
}

// Resolve applies, in order: the first ignore annotation of the active
// serializer, the first name annotation of the active serializer, the naming
// style. With SerializerNone annotations are not consulted.
func (r *MemberResolver) Resolve(m descriptor.MemberDescriptor) (Resolution, error) {
	if m.Kind != descriptor.Field && m.Kind != descriptor.Property {
		return Resolution{}, errors.Wrapf(errors.ErrUnmappableMember, "member %s has kind %s", m.Name, m.Kind)
	}

	optional := m.Nullable || m.Type.Kind == descriptor.RefNullable

	if r.serializer != typegen.SerializerNone {
		for _, a := range m.Annotations {
			if r.vocab.IsIgnore(r.serializer, a.ID) {
				return Resolution{Include: false}, nil
			}
			if r.vocab.IsName(r.serializer, a.ID) {
				// Integer MessagePack keys are positional; they do not name the member
				if name, ok := a.StringArg(); ok {
					return Resolution{Include: true, Name: name, Optional: optional}, nil
				}
			}
		}
	}

	return Resolution{Include: true, Name: r.style.Transform(m.Name), Optional: optional}, nil
}

var identifierRe = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// propertyName quotes serialized names that are not valid identifiers,
// e.g. json:"first-name"
func propertyName(name string) string {
	if identifierRe.MatchString(name) {
		return name
	}
	return quote(name)
}
