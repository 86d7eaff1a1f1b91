package catalog

import (
	"fmt"
	"math"
	"strconv"

	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/errors"
)

// Build turns decoded documents into descriptors, in document then
// declaration order. Type expressions are resolved against every document
// passed in, so types may reference each other across files.
func Build(docs ...*Document) ([]descriptor.TypeDescriptor, error) {
	var types []descriptor.TypeDescriptor
	for _, doc := range docs {
		for i, entry := range doc.Types {
			t, err := entry.declare(doc.Namespace)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: type #%d", doc.origin(), i+1)
			}
			types = append(types, t)
		}
	}

	r := newResolver(types)
	for i := range types {
		r.resolveType(&types[i])
	}
	return types, nil
}

// LoadFiles reads every catalog file and builds one descriptor list
func LoadFiles(paths ...string) ([]descriptor.TypeDescriptor, error) {
	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		doc, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return Build(docs...)
}

func (d *Document) origin() string {
	if d.source != "" {
		return d.source
	}
	return "catalog"
}

// declare converts the entry with member types parsed but not yet resolved
func (e TypeEntry) declare(defaultNamespace string) (descriptor.TypeDescriptor, error) {
	t := descriptor.TypeDescriptor{
		Name:       e.Name,
		Namespace:  e.Namespace,
		Override:   e.Override,
		TypeParams: e.TypeParams,
		Doc:        e.Doc,
	}
	if t.Namespace == "" {
		t.Namespace = defaultNamespace
	}
	if t.Name == "" {
		return t, errors.NewInvalidCatalogError("type has no name")
	}

	switch {
	case e.Kind != "":
		kind, ok := descriptor.ParseKind(e.Kind)
		if !ok {
			return t, errors.NewInvalidCatalogError("%s: unknown kind %q", t.Name, e.Kind)
		}
		t.Kind = kind
	case e.Override != "":
		t.Kind = descriptor.ExternallyConfigured
	case len(e.Literals) > 0:
		t.Kind = descriptor.Enumeration
	default:
		t.Kind = descriptor.PlainData
	}

	if e.Base != "" {
		base, err := descriptor.ParseTypeExpr(e.Base)
		if err != nil {
			return t, errors.Wrapf(err, "%s: base", t.Name)
		}
		t.Base = &base
	}

	for _, m := range e.Members {
		member, err := m.declare()
		if err != nil {
			return t, errors.Wrapf(err, "%s.%s", t.Name, m.Name)
		}
		t.Members = append(t.Members, member)
	}

	for i, l := range e.Literals {
		literal, err := l.declare(i)
		if err != nil {
			return t, errors.Wrapf(err, "%s.%s", t.Name, l.Name)
		}
		t.Literals = append(t.Literals, literal)
	}

	return t, nil
}

func (m MemberEntry) declare() (descriptor.MemberDescriptor, error) {
	member := descriptor.MemberDescriptor{
		Name:     m.Name,
		Kind:     descriptor.Field,
		Nullable: m.Nullable,
		Static:   m.Static,
	}

	switch m.Kind {
	case "", "field":
	case "property":
		member.Kind = descriptor.Property
	default:
		return member, errors.NewInvalidCatalogError("unknown member kind %q", m.Kind)
	}

	if m.Type == "" {
		return member, errors.NewInvalidCatalogError("member has no type")
	}
	ref, err := descriptor.ParseTypeExpr(m.Type)
	if err != nil {
		return member, err
	}
	member.Type = ref

	for _, a := range m.Annotations {
		if a.ID == "" {
			return member, errors.NewInvalidCatalogError("annotation without id")
		}
		member.Annotations = append(member.Annotations, descriptor.Annotation{ID: a.ID, Arg: a.Arg})
	}
	return member, nil
}

// declare converts a literal; an omitted value takes the literal's position
func (l LiteralEntry) declare(position int) (descriptor.EnumLiteral, error) {
	literal := descriptor.EnumLiteral{Name: l.Name}
	if l.Name == "" {
		return literal, errors.NewInvalidCatalogError("literal #%d has no name", position+1)
	}

	switch v := l.Value.(type) {
	case nil:
		literal.Value = strconv.Itoa(position)
	case string:
		literal.Value = v
		literal.IsString = true
	case int:
		literal.Value = strconv.Itoa(v)
	case int64:
		literal.Value = strconv.FormatInt(v, 10)
	case uint64:
		literal.Value = strconv.FormatUint(v, 10)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return literal, errors.NewInvalidCatalogError("value %v is not a valid literal", v)
		}
		literal.Value = strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return literal, errors.NewInvalidCatalogError("unsupported literal value %s", fmt.Sprintf("%T", v))
	}
	return literal, nil
}
