package commands

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/tsgen/internal/pipeline"
)

var checkQuiet bool

// CheckCmd reports whether generated files are up to date
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check if generated types are up to date",
	Long: `Check if generated files match the current sources.

This command generates in memory and compares the result with the files in
the output directory. Nothing is written.

Exit codes:
  0 - Types are up to date
  1 - Types are out of date (diff shown)
  2 - Error during check

Examples:
  tsgen check                      # Check with tsgen.toml
  tsgen check -p ./models/...      # Check explicit packages
  tsgen check -q                   # Only the exit code and file list`,
	RunE: runCheck,
}

func init() {
	CheckCmd.Flags().StringSliceVarP(&generatePackages, "packages", "p", nil, "Go package patterns to load")
	CheckCmd.Flags().StringSliceVarP(&generateCatalogs, "catalog", "c", nil, "YAML/TOML type catalog files")
	CheckCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Directory holding the generated files")
	CheckCmd.Flags().BoolVar(&generateIndex, "index", false, "Also check index.ts")
	CheckCmd.Flags().BoolVarP(&checkQuiet, "quiet", "q", false, "Do not print diffs")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg = applySourceFlags(cmd, cfg)

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	result, check, err := p.Check(cmd.Context())
	if err != nil {
		return err
	}
	printDiagnostics(result)

	if check.UpToDate {
		pterm.Success.Printf("Types are up to date (%d files)\n", len(result.Files))
		return nil
	}

	for _, path := range check.Missing {
		pterm.Error.Printf("Missing %s\n", path)
	}

	paths := make([]string, 0, len(check.Differences))
	for path := range check.Differences {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	for _, path := range paths {
		pterm.Error.Printf("Out of date %s\n", path)
		if !checkQuiet {
			fmt.Println(check.Differences[path])
		}
	}

	return check.Err()
}
