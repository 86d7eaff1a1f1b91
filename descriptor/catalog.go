package descriptor

import (
	"github.com/teranos/tsgen/errors"
)

// Catalog is the fully materialized, read-only set of types to translate.
// Import resolution needs the namespace of every referenced type up front,
// so the catalog is built once before any translation starts.
type Catalog struct {
	types []TypeDescriptor
	index map[string]int
}

// NewCatalog validates the descriptors and indexes them by qualified name.
// Discovery order is preserved.
func NewCatalog(types []TypeDescriptor) (*Catalog, error) {
	c := &Catalog{
		types: types,
		index: make(map[string]int, len(types)),
	}

	for i, t := range types {
		if err := validateDescriptor(t); err != nil {
			return nil, err
		}
		qn := t.QualifiedName()
		if prev, dup := c.index[qn]; dup {
			return nil, errors.NewInvalidCatalogError("duplicate type %s (entries %d and %d)", qn, prev, i)
		}
		c.index[qn] = i
	}

	return c, nil
}

func validateDescriptor(t TypeDescriptor) error {
	if t.Name == "" {
		return errors.NewInvalidCatalogError("type in namespace %q has no name", t.Namespace)
	}

	switch t.Kind {
	case PlainData, Enumeration:
	case ExternallyConfigured:
		if t.Override == "" {
			return errors.NewInvalidCatalogError("type %s is externally configured but has no override", t.QualifiedName())
		}
	default:
		return errors.NewInvalidCatalogError("type %s has invalid kind %d", t.QualifiedName(), int(t.Kind))
	}

	for _, m := range t.Members {
		if m.Name == "" {
			return errors.NewInvalidCatalogError("type %s has a member without a name", t.QualifiedName())
		}
	}
	return nil
}

// Types returns the descriptors in discovery order. The slice must not be modified.
func (c *Catalog) Types() []TypeDescriptor {
	return c.types
}

// Len returns the number of types in the catalog
func (c *Catalog) Len() int {
	return len(c.types)
}

// Lookup finds a type by namespace and name
func (c *Catalog) Lookup(namespace, name string) (TypeDescriptor, bool) {
	i, ok := c.index[QualifiedName(namespace, name)]
	if !ok {
		return TypeDescriptor{}, false
	}
	return c.types[i], true
}

// Contains reports whether ref names a type that is part of this catalog
// (a "source type"). Only named references can match.
func (c *Catalog) Contains(ref *TypeReference) bool {
	if ref == nil || !ref.IsNamed() {
		return false
	}
	_, ok := c.index[QualifiedName(ref.Namespace, ref.Name)]
	return ok
}
