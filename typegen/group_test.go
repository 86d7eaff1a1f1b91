package typegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	d "github.com/teranos/tsgen/descriptor"
)

func mustCatalog(t *testing.T, types ...d.TypeDescriptor) *d.Catalog {
	t.Helper()
	c, err := d.NewCatalog(types)
	require.NoError(t, err)
	return c
}

func member(name string, ref d.TypeReference) d.MemberDescriptor {
	return d.MemberDescriptor{Name: name, Kind: d.Field, Type: ref}
}

func TestPartitionKeepsDiscoveryOrder(t *testing.T) {
	c := mustCatalog(t,
		d.TypeDescriptor{Name: "B1", Namespace: "b", Kind: d.PlainData},
		d.TypeDescriptor{Name: "A1", Namespace: "a", Kind: d.PlainData},
		d.TypeDescriptor{Name: "B2", Namespace: "b", Kind: d.PlainData},
	)

	groups, diags := Partition(c)
	assert.Empty(t, diags)
	require.Len(t, groups, 2)

	assert.Equal(t, "b", groups[0].Namespace)
	assert.Equal(t, "B1", groups[0].Types[0].Name)
	assert.Equal(t, "B2", groups[0].Types[1].Name)
	assert.Equal(t, "a", groups[1].Namespace)
}

func TestPartitionImports(t *testing.T) {
	baseRef := d.UserType("Entity", "core")
	c := mustCatalog(t,
		d.TypeDescriptor{Name: "Entity", Namespace: "core", Kind: d.PlainData},
		d.TypeDescriptor{Name: "Color", Namespace: "paint", Kind: d.Enumeration},
		d.TypeDescriptor{Name: "Page", Namespace: "api", Kind: d.PlainData, TypeParams: []string{"T"}},
		d.TypeDescriptor{Name: "Point", Namespace: "geo", Kind: d.PlainData},
		d.TypeDescriptor{Name: "Shape", Namespace: "geo", Kind: d.PlainData, Base: &baseRef, Members: []d.MemberDescriptor{
			member("Fill", d.NullableOf(d.EnumType("Color", "paint"))),
			member("Points", d.GenericOf("Page", "api", d.UserType("Point", "geo"))),
			member("Tags", d.MapOf(d.Primitive("string"), d.CollectionOf(d.EnumType("Color", "paint")))),
			member("Self", d.UserType("Shape", "geo")),
			member("Item", d.TypeParam("T")),
		}},
	)

	groups, diags := Partition(c)
	assert.Empty(t, diags)

	var geo Group
	for _, g := range groups {
		if g.Namespace == "geo" {
			geo = g
		}
	}

	assert.Equal(t, map[string][]string{
		"api":   {"Page"},
		"core":  {"Entity"},
		"paint": {"Color"},
	}, geo.Imports)
	assert.Equal(t, []string{"api", "core", "paint"}, geo.ImportNamespaces(nil))
}

func TestPartitionSkipsStaticAndOverrides(t *testing.T) {
	c := mustCatalog(t,
		d.TypeDescriptor{Name: "Holder", Namespace: "x", Kind: d.PlainData, Members: []d.MemberDescriptor{
			{Name: "Shared", Kind: d.Field, Type: d.UserType("Thing", "y"), Static: true},
		}},
		d.TypeDescriptor{Name: "Alias", Namespace: "x", Kind: d.ExternallyConfigured, Override: "string", Members: []d.MemberDescriptor{
			member("Hidden", d.UserType("Thing", "y")),
		}},
	)

	groups, diags := Partition(c)
	assert.Empty(t, diags)
	assert.Empty(t, groups[0].Imports)
}

func TestPartitionReportsMissingOnce(t *testing.T) {
	c := mustCatalog(t,
		d.TypeDescriptor{Name: "Holder", Namespace: "x", Kind: d.PlainData, Members: []d.MemberDescriptor{
			member("A", d.UserType("Ghost", "y")),
			member("B", d.CollectionOf(d.UserType("Ghost", "y"))),
			member("C", d.UserType("Local", "x")),
		}},
	)

	groups, diags := Partition(c)
	assert.Equal(t, map[string][]string{"y": {"Ghost"}}, groups[0].Imports)
	require.Len(t, diags, 2)
	assert.Equal(t, "A", diags[0].Member)
	assert.Contains(t, diags[0].Message, "y.Ghost")
	assert.Contains(t, diags[1].Message, "x.Local")
}

func TestImportNamespacesCustomOrder(t *testing.T) {
	g := Group{Imports: map[string][]string{"a": nil, "c": nil, "b": nil}}
	assert.Equal(t, []string{"c", "b", "a"}, g.ImportNamespaces(func(a, b string) bool { return a > b }))
}
