package pipeline

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/tsgen/config"
	"github.com/teranos/tsgen/errors"
)

const shopCatalog = `
version: "1"
namespace: Shop.Orders
types:
  - name: Order
    members:
      - {name: ID, type: guid}
      - {name: Status, type: Status}
      - {name: Lines, type: "Line[]"}
      - {name: Buyer, type: Shop.People.Person?, nullable: true}
  - name: Line
    members:
      - {name: Sku, type: string}
      - {name: Qty, type: int32}
  - name: Status
    literals:
      - {name: Open, value: open}
      - {name: Closed, value: closed}
`

const peopleCatalog = `
version = "1"
namespace = "Shop.People"

[[types]]
name = "Person"

[[types.members]]
name = "Name"
type = "string"
`

func setup(t *testing.T) *config.Config {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "types"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "types", "orders.yaml"), []byte(shopCatalog), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "types", "people.toml"), []byte(peopleCatalog), 0o644))

	cfg := config.Default()
	cfg.Root = root
	cfg.Source.Catalogs = []string{"types/orders.yaml", "types/people.toml"}
	cfg.Output.ModulePath = "last-segment"
	return cfg
}

func TestGenerate(t *testing.T) {
	cfg := setup(t)
	cfg.Output.Index = true

	p, err := New(cfg)
	require.NoError(t, err)

	result, err := p.Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Warnings())
	assert.Equal(t, 4, result.TypeCount())

	paths := make([]string, len(result.Files))
	for i, f := range result.Files {
		paths[i] = f.Path
	}
	assert.Equal(t, []string{"Orders.ts", "People.ts", "index.ts"}, paths)

	orders, ok := result.File("Shop.Orders")
	require.True(t, ok)
	assert.Contains(t, orders.Content, "import { Person } from './People';")
	assert.Contains(t, orders.Content, "  Status: Status;\n")
	assert.Contains(t, orders.Content, "  Lines: Line[];\n")
	assert.Contains(t, orders.Content, "  Buyer?: Person;\n")
	assert.Contains(t, orders.Content, "export type Status = 'open' | 'closed';")

	index := result.Files[2]
	assert.Contains(t, index.Content, "export type { Line, Order, Status } from './Orders';")
	assert.Contains(t, index.Content, "export type { Person } from './People';")
}

func TestWriteThenCheck(t *testing.T) {
	cfg := setup(t)
	p, err := New(cfg)
	require.NoError(t, err)

	_, check, err := p.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, check.UpToDate)
	assert.ElementsMatch(t, []string{"Orders.ts", "People.ts"}, check.Missing)

	_, err = p.Write(context.Background())
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(cfg.Root, config.DefaultOutputDir, "Orders.ts"))

	_, check, err = p.Check(context.Background())
	require.NoError(t, err)
	assert.True(t, check.UpToDate)
	assert.NoError(t, check.Err())

	people := filepath.Join(cfg.Root, config.DefaultOutputDir, "People.ts")
	require.NoError(t, os.WriteFile(people, []byte("stale\n"), 0o644))

	_, check, err = p.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"People.ts"}, check.Files())
	assert.True(t, errors.Is(check.Err(), errors.ErrOutOfDate))
}

func TestNoSources(t *testing.T) {
	cfg := config.Default()
	cfg.Root = t.TempDir()

	p, err := New(cfg)
	require.NoError(t, err)

	_, err = p.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSources))
	assert.NotEmpty(t, errors.GetAllHints(err))
}

func TestInvalidConfig(t *testing.T) {
	cfg := setup(t)
	cfg.Translation.NamingStyle = "kebab"

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
}

func TestDuplicateTypes(t *testing.T) {
	cfg := setup(t)
	cfg.Source.Catalogs = append(cfg.Source.Catalogs, "types/orders.yaml")

	p, err := New(cfg)
	require.NoError(t, err)

	_, err = p.Generate(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidCatalog))
}

func TestWatcherRoots(t *testing.T) {
	cfg := setup(t)
	outside := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(outside, "extra.yaml"), []byte("version: \"1\"\n"), 0o644))
	cfg.Source.Catalogs = append(cfg.Source.Catalogs, filepath.Join(outside, "extra.yaml"))

	p, err := New(cfg)
	require.NoError(t, err)

	w, err := p.Watcher()
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestWithin(t *testing.T) {
	assert.True(t, within("/repo/types", "/repo"))
	assert.True(t, within("/repo", "/repo"))
	assert.False(t, within("/other", "/repo"))
	assert.False(t, within("/repo-two/types", "/repo"))
}

func TestRemoteCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(peopleCatalog))
	}))
	defer srv.Close()

	cfg := setup(t)
	cfg.Source.Catalogs = []string{"types/orders.yaml", srv.URL + "/shared/people.toml"}

	p, err := New(cfg)
	require.NoError(t, err)

	result, err := p.Generate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result.Warnings())

	_, ok := result.File("Shop.People")
	assert.True(t, ok)

	w, err := p.Watcher()
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestGoFlagsRejected(t *testing.T) {
	cfg := setup(t)
	cfg.Source.GoFlags = `-tags 'unterminated`

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfigError(err))
}
