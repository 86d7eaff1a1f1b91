package typegen

import (
	"context"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/teranos/tsgen/descriptor"
	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/logger"
)

// Engine runs a Generator over every namespace group of a catalog
type Engine struct {
	opts   Options
	gen    Generator
	logger *zap.SugaredLogger
}

// NewEngine validates opts and returns an engine for gen
func NewEngine(gen Generator, opts Options) (*Engine, error) {
	if gen == nil {
		return nil, errors.New("generator is required")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		opts:   opts,
		gen:    gen,
		logger: logger.ComponentLogger("typegen.engine"),
	}, nil
}

// Run translates the catalog. Groups are translated concurrently, bounded by
// Options.Parallelism, and the first error cancels the run.
func (e *Engine) Run(ctx context.Context, catalog *descriptor.Catalog) (*Result, error) {
	start := time.Now()

	groups, diags := Partition(catalog)
	e.logger.Debugw("Partitioned catalog",
		logger.FieldTypes, catalog.Len(),
		logger.FieldGroups, len(groups))

	files := make([]File, len(groups))
	groupDiags := make([][]Diagnostic, len(groups))

	limit := e.opts.Parallelism
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, group := range groups {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			content, d, err := e.gen.GenerateFile(catalog, group)
			if err != nil {
				return errors.Wrapf(err, "failed to generate namespace %q", group.Namespace)
			}

			modulePath := e.opts.ModulePath(group.Namespace)
			names := make([]string, len(group.Types))
			for j, t := range group.Types {
				names[j] = t.Name
			}

			files[i] = File{
				Namespace:  group.Namespace,
				ModulePath: modulePath,
				Path:       modulePath + "." + e.gen.FileExtension(),
				Content:    content,
				Types:      names,
				Imports:    group.Imports,
			}
			groupDiags[i] = d

			e.logger.Debugw("Generated file",
				logger.FieldNamespace, group.Namespace,
				logger.FieldFile, files[i].Path,
				logger.FieldCount, len(names))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// errgroup only reports errors returned by Go funcs
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, d := range groupDiags {
		diags = append(diags, d...)
	}
	for _, d := range diags {
		if d.Severity == SeverityWarning {
			e.logger.Warnw(d.Message,
				logger.FieldNamespace, d.Namespace,
				logger.FieldType, d.Type,
				logger.FieldMember, d.Member)
		}
	}

	e.logger.Infow("Translation complete",
		logger.FieldLanguage, e.gen.Language(),
		logger.FieldGroups, len(files),
		logger.FieldTypes, catalog.Len(),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return &Result{
		Language:    e.gen.Language(),
		Files:       files,
		Diagnostics: diags,
	}, nil
}
