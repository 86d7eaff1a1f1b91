// Package pipeline wires configuration, front ends and the TypeScript
// generator into the steps the tsgen commands run.
package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/tsgen/catalog"
	"github.com/teranos/tsgen/config"
	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/gosource"
	"github.com/teranos/tsgen/logger"
	"github.com/teranos/tsgen/typegen"
	"github.com/teranos/tsgen/typegen/typescript"
	"github.com/teranos/tsgen/watch"
)

// ErrNoSources is returned when the configuration names no packages and no catalogs
var ErrNoSources = errors.New("no type sources configured")

// Pipeline discovers types and generates TypeScript for one configuration
type Pipeline struct {
	cfg    *config.Config
	gen    *typescript.Generator
	engine *typegen.Engine
	logger *zap.SugaredLogger

	goFlags []string
}

// New validates cfg and prepares the generator. A config without a Root
// resolves paths against the working directory.
func New(cfg *config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get working directory")
		}
		resolved := *cfg
		resolved.Root = wd
		cfg = &resolved
	}

	opts, err := cfg.Options()
	if err != nil {
		return nil, err
	}

	goFlags, err := cfg.GoFlags()
	if err != nil {
		return nil, err
	}

	gen := typescript.NewGenerator(opts)
	engine, err := typegen.NewEngine(gen, opts)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		cfg:    cfg,
		gen:    gen,
		engine: engine,
		logger: logger.ComponentLogger("pipeline"),

		goFlags: goFlags,
	}, nil
}

// OutputDir is the absolute directory generated files go to
func (p *Pipeline) OutputDir() string {
	return p.cfg.Resolve(p.cfg.Output.Dir)
}

// Discover runs the Go loader and the catalog reader and returns the
// combined descriptors: Go packages first, then catalogs in the order given.
func (p *Pipeline) Discover(ctx context.Context) ([]descriptor.TypeDescriptor, error) {
	src := p.cfg.Source
	if len(src.Packages) == 0 && len(src.Catalogs) == 0 {
		return nil, errors.WithHint(ErrNoSources,
			"set source.packages or source.catalogs in "+config.FileName+", or pass --packages / --catalog")
	}

	var types []descriptor.TypeDescriptor

	if len(src.Packages) > 0 {
		loader := gosource.NewLoader(p.cfg.Root, src.BuildTags)
		loader.GoFlags = p.goFlags
		found, err := loader.Load(ctx, src.Packages...)
		if err != nil {
			return nil, err
		}
		types = append(types, found...)
	}

	if len(src.Catalogs) > 0 {
		paths, cleanup, err := p.catalogPaths(ctx)
		if err != nil {
			return nil, err
		}
		defer cleanup()

		found, err := catalog.LoadFiles(paths...)
		if err != nil {
			return nil, err
		}
		types = append(types, found...)
	}

	return types, nil
}

// catalogPaths resolves local catalogs against the project root and downloads
// remote ones into a temporary directory that cleanup removes
func (p *Pipeline) catalogPaths(ctx context.Context) ([]string, func(), error) {
	cleanup := func() {}
	var tmp string

	paths := make([]string, len(p.cfg.Source.Catalogs))
	for i, src := range p.cfg.Source.Catalogs {
		if !catalog.IsRemote(src, p.cfg.Root) {
			paths[i] = p.cfg.Resolve(src)
			continue
		}

		if tmp == "" {
			dir, err := os.MkdirTemp("", "tsgen-catalogs-*")
			if err != nil {
				return nil, cleanup, errors.Wrap(err, "failed to create temp directory")
			}
			tmp = dir
			cleanup = func() { os.RemoveAll(dir) }
		}

		// one subdirectory per source so equal base names do not collide
		local, err := catalog.Fetch(ctx, src, p.cfg.Root, filepath.Join(tmp, strconv.Itoa(i)))
		if err != nil {
			cleanup()
			return nil, func() {}, err
		}
		p.logger.Debugw("Fetched remote catalog", "source", src, logger.FieldPath, local)
		paths[i] = local
	}
	return paths, cleanup, nil
}

// Generate discovers types and translates them. With output.index set the
// result also carries the index.ts barrel file.
func (p *Pipeline) Generate(ctx context.Context) (*typegen.Result, error) {
	start := time.Now()
	log := logger.ChildLogger(p.logger, "run_id", uuid.NewString())

	types, err := p.Discover(ctx)
	if err != nil {
		return nil, err
	}

	cat, err := descriptor.NewCatalog(types)
	if err != nil {
		return nil, errors.WithHint(err, "type names must be unique within a namespace")
	}

	result, err := p.engine.Run(ctx, cat)
	if err != nil {
		return nil, err
	}

	if p.cfg.Output.Index {
		index, diags := p.gen.GenerateIndex(result)
		result.Files = append(result.Files, index)
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	log.Infow("Generated types",
		logger.FieldTypes, result.TypeCount(),
		logger.FieldCount, len(result.Files),
		logger.FieldDurationMS, time.Since(start).Milliseconds())
	return result, nil
}

// Write generates and writes every file to the output directory
func (p *Pipeline) Write(ctx context.Context) (*typegen.Result, error) {
	result, err := p.Generate(ctx)
	if err != nil {
		return nil, err
	}
	if err := typegen.WriteFiles(p.OutputDir(), result); err != nil {
		return nil, err
	}
	return result, nil
}

// Check generates in memory and compares against the output directory
func (p *Pipeline) Check(ctx context.Context) (*typegen.Result, *typegen.CheckResult, error) {
	result, err := p.Generate(ctx)
	if err != nil {
		return nil, nil, err
	}
	check, err := typegen.Check(p.OutputDir(), result)
	if err != nil {
		return nil, nil, err
	}
	return result, check, nil
}

// Watcher returns a watcher over the project root that ignores the output directory
func (p *Pipeline) Watcher() (*watch.Watcher, error) {
	roots := []string{p.cfg.Root}
	for _, c := range p.cfg.Source.Catalogs {
		if catalog.IsRemote(c, p.cfg.Root) {
			continue
		}
		dir := filepath.Dir(p.cfg.Resolve(c))
		if !within(dir, p.cfg.Root) {
			roots = append(roots, dir)
		}
	}

	return watch.New(watch.Config{
		Roots:            roots,
		Exclude:          []string{p.OutputDir()},
		Debounce:         time.Duration(p.cfg.Watch.DebounceMS) * time.Millisecond,
		MaxRunsPerMinute: p.cfg.Watch.MaxRunsPerMinute,
	})
}

func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
