package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/tsgen/config"
	"github.com/teranos/tsgen/internal/pipeline"
	"github.com/teranos/tsgen/typegen"
)

var (
	generatePackages []string
	generateCatalogs []string
	generateOutput   string
	generateIndex    bool
	generateWatch    bool
	generateStdout   bool
)

// GenerateCmd writes TypeScript files for the configured sources
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate TypeScript declarations",
	Long: `Generate TypeScript declarations from Go packages and type catalogs.

Each namespace (Go import path or catalog namespace) becomes one module.
It handles:
  - Structs → object types, embedded structs → intersections
  - Typed constants → union types
  - json / msgpack tags for naming and ignoring members
  - Pointers and omitempty as optional members
  - Generic types and instantiations

Flags override tsgen.toml; --packages and --catalog replace the configured
lists rather than adding to them.

Examples:
  tsgen generate                               # Use tsgen.toml
  tsgen generate -p ./models/... -o web/types  # Explicit sources and output
  tsgen generate -c types/shop.yaml --index    # Catalog input plus index.ts
  tsgen generate --stdout                      # Print instead of writing
  tsgen generate --watch                       # Regenerate on change`,
	RunE: runGenerate,
}

func init() {
	GenerateCmd.Flags().StringSliceVarP(&generatePackages, "packages", "p", nil, "Go package patterns to load (e.g. ./models/...)")
	GenerateCmd.Flags().StringSliceVarP(&generateCatalogs, "catalog", "c", nil, "YAML/TOML type catalog files")
	GenerateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output directory (default from config: "+config.DefaultOutputDir+")")
	GenerateCmd.Flags().BoolVar(&generateIndex, "index", false, "Also write an index.ts re-exporting every type")
	GenerateCmd.Flags().BoolVarP(&generateWatch, "watch", "w", false, "Watch sources and regenerate on change")
	GenerateCmd.Flags().BoolVar(&generateStdout, "stdout", false, "Print generated files instead of writing them")
}

// applySourceFlags layers source and output flags over the loaded config
func applySourceFlags(cmd *cobra.Command, cfg *config.Config) *config.Config {
	out := *cfg
	if cmd.Flags().Changed("packages") {
		out.Source.Packages = generatePackages
	}
	if cmd.Flags().Changed("catalog") {
		out.Source.Catalogs = absolutePaths(generateCatalogs)
	}
	if cmd.Flags().Changed("output") {
		out.Output.Dir = absolutePath(generateOutput)
	}
	if cmd.Flags().Changed("index") {
		out.Output.Index = generateIndex
	}
	return &out
}

// Paths given on the command line are relative to the working directory,
// not to the config file
func absolutePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func absolutePaths(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = absolutePath(p)
	}
	return out
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg = applySourceFlags(cmd, cfg)

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if generateStdout {
		result, err := p.Generate(ctx)
		if err != nil {
			return err
		}
		printDiagnostics(result)
		for _, f := range result.Files {
			fmt.Printf("// %s\n", f.Path)
			fmt.Println(f.Content)
		}
		return nil
	}

	if err := generateOnce(ctx, p); err != nil {
		if !generateWatch {
			return err
		}
		pterm.Error.Println(err.Error())
	}

	if !generateWatch {
		return nil
	}

	w, err := p.Watcher()
	if err != nil {
		return err
	}
	pterm.Info.Printf("Watching for changes (output: %s), press Ctrl+C to stop\n", p.OutputDir())

	return w.Run(ctx, func(ctx context.Context, changed []string) error {
		pterm.Info.Printf("%d file(s) changed, regenerating\n", len(changed))
		if err := generateOnce(ctx, p); err != nil {
			pterm.Error.Println(err.Error())
		}
		return nil
	})
}

func generateOnce(ctx context.Context, p *pipeline.Pipeline) error {
	result, err := p.Write(ctx)
	if err != nil {
		return err
	}
	printDiagnostics(result)
	reportFiles(p.OutputDir(), result)
	return nil
}

func reportFiles(dir string, result *typegen.Result) {
	for _, f := range result.Files {
		path := filepath.Join(dir, filepath.FromSlash(f.Path))
		if len(f.Types) == 0 {
			pterm.Success.Printf("Generated %s\n", path)
			continue
		}
		pterm.Success.Printf("Generated %s (%d types)\n", path, len(f.Types))
	}
}
