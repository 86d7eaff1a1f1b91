package catalog

import (
	"github.com/teranos/tsgen/descriptor"
)

// resolver rewrites parsed references so they match what the engine expects:
// enumeration names become enum references, type parameters become
// parameter references and unqualified names get a namespace.
type resolver struct {
	decls map[string]descriptor.TypeDescriptor
}

func newResolver(types []descriptor.TypeDescriptor) *resolver {
	r := &resolver{decls: make(map[string]descriptor.TypeDescriptor, len(types))}
	for _, t := range types {
		r.decls[t.QualifiedName()] = t
	}
	return r
}

func (r *resolver) resolveType(t *descriptor.TypeDescriptor) {
	if t.Base != nil {
		base := r.resolve(*t.Base, t)
		t.Base = &base
	}
	for i := range t.Members {
		t.Members[i].Type = r.resolve(t.Members[i].Type, t)
	}
}

func (r *resolver) resolve(ref descriptor.TypeReference, owner *descriptor.TypeDescriptor) descriptor.TypeReference {
	switch ref.Kind {
	case descriptor.RefCollection, descriptor.RefNullable:
		elem := r.resolve(*ref.Elem, owner)
		ref.Elem = &elem
	case descriptor.RefMap:
		key := r.resolve(*ref.Key, owner)
		value := r.resolve(*ref.Value, owner)
		ref.Key, ref.Value = &key, &value
	case descriptor.RefGeneric:
		args := make([]descriptor.TypeReference, len(ref.Args))
		for i, arg := range ref.Args {
			args[i] = r.resolve(arg, owner)
		}
		ref.Args = args
		ref.Namespace = r.namespaceOf(ref, owner)
	case descriptor.RefUser:
		if ref.Namespace == "" && isTypeParam(owner, ref.Name) {
			return descriptor.TypeParam(ref.Name)
		}
		ref.Namespace = r.namespaceOf(ref, owner)
		if decl, ok := r.decls[descriptor.QualifiedName(ref.Namespace, ref.Name)]; ok && decl.Kind == descriptor.Enumeration {
			return descriptor.EnumType(decl.Name, decl.Namespace, decl.Literals...)
		}
	}
	return ref
}

// namespaceOf qualifies a bare name: the owner's namespace first, then the
// empty namespace. Unknown names stay in the owner's namespace so the engine
// reports them as missing references there.
func (r *resolver) namespaceOf(ref descriptor.TypeReference, owner *descriptor.TypeDescriptor) string {
	if ref.Namespace != "" {
		return ref.Namespace
	}
	if _, ok := r.decls[descriptor.QualifiedName(owner.Namespace, ref.Name)]; ok {
		return owner.Namespace
	}
	if _, ok := r.decls[ref.Name]; ok {
		return ""
	}
	return owner.Namespace
}

func isTypeParam(t *descriptor.TypeDescriptor, name string) bool {
	for _, p := range t.TypeParams {
		if p == name {
			return true
		}
	}
	return false
}
