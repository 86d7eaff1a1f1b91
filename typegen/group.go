package typegen

import (
	"sort"

	"github.com/teranos/tsgen/descriptor"
)

// Group is the set of types sharing one namespace, rendered into one output file
type Group struct {
	Namespace string

	// Types in discovery order
	Types []descriptor.TypeDescriptor

	// Imports maps each other namespace to the sorted, distinct type names
	// this group references from it. Never contains Namespace itself.
	Imports map[string][]string
}

// ImportNamespaces returns the keys of Imports ordered by less, or
// lexicographically when less is nil
func (g Group) ImportNamespaces(less func(a, b string) bool) []string {
	namespaces := make([]string, 0, len(g.Imports))
	for ns := range g.Imports {
		namespaces = append(namespaces, ns)
	}
	if less == nil {
		sort.Strings(namespaces)
	} else {
		sort.SliceStable(namespaces, func(i, j int) bool { return less(namespaces[i], namespaces[j]) })
	}
	return namespaces
}

// Partition groups the catalog by namespace, keeping the order in which
// namespaces first appear and the discovery order of types within each group,
// and computes every group's imports.
//
// References to types that are not in the catalog are still imported;
// a warning diagnostic is reported for each.
func Partition(catalog *descriptor.Catalog) ([]Group, []Diagnostic) {
	var groups []Group
	byNamespace := make(map[string]int)

	for _, t := range catalog.Types() {
		i, ok := byNamespace[t.Namespace]
		if !ok {
			i = len(groups)
			byNamespace[t.Namespace] = i
			groups = append(groups, Group{Namespace: t.Namespace})
		}
		groups[i].Types = append(groups[i].Types, t)
	}

	var diags []Diagnostic
	for i := range groups {
		var d []Diagnostic
		groups[i].Imports, d = collectImports(catalog, groups[i])
		diags = append(diags, d...)
	}
	return groups, diags
}

func collectImports(catalog *descriptor.Catalog, g Group) (map[string][]string, []Diagnostic) {
	seen := make(map[string]map[string]bool)
	var diags []Diagnostic
	reported := make(map[string]bool)

	visit := func(t descriptor.TypeDescriptor, member string, ref descriptor.TypeReference) {
		ref.Walk(func(r descriptor.TypeReference) bool {
			if !r.IsNamed() {
				return true
			}
			if r.Namespace != g.Namespace {
				if seen[r.Namespace] == nil {
					seen[r.Namespace] = make(map[string]bool)
				}
				seen[r.Namespace][r.Name] = true
			}
			qn := descriptor.QualifiedName(r.Namespace, r.Name)
			if !catalog.Contains(&r) && !reported[qn] {
				reported[qn] = true
				diags = append(diags, Warnf(t, member, "references %s which is not in the catalog", qn))
			}
			return true
		})
	}

	for _, t := range g.Types {
		// Overrides are emitted verbatim; nothing they declare is rendered
		if t.Override != "" || t.Kind != descriptor.PlainData {
			continue
		}
		// A base outside the catalog is not rendered, so it is not imported either
		if catalog.Contains(t.Base) {
			visit(t, "", *t.Base)
		}
		for _, m := range t.Members {
			if m.Static {
				continue
			}
			visit(t, m.Name, m.Type)
		}
	}

	imports := make(map[string][]string, len(seen))
	for ns, names := range seen {
		list := make([]string, 0, len(names))
		for name := range names {
			list = append(list, name)
		}
		sort.Strings(list)
		imports[ns] = list
	}
	return imports, diags
}
