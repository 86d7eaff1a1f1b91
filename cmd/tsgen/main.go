package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/tsgen/cmd/tsgen/commands"
	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "tsgen",
	Short: "Generate TypeScript type declarations from Go types and type catalogs",
	Long: `tsgen - TypeScript declarations for your data types.

tsgen discovers types in Go packages and in YAML/TOML type catalogs and
writes one TypeScript module per namespace, with imports between them.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (TSGEN_* prefix, e.g. TSGEN_OUTPUT_DIR)
3. Project config (./tsgen.toml, searched upwards)
4. Default values

Available commands:
  generate - Generate TypeScript files
  check    - Verify generated files are up to date
  init     - Write a starter tsgen.toml
  config   - Show or validate the effective configuration
  version  - Show version information

Examples:
  tsgen init                                   # Create tsgen.toml
  tsgen generate -p ./models/... -o web/types  # Generate from Go packages
  tsgen generate --watch                       # Regenerate on change
  tsgen check                                  # Fail CI when output is stale`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv, -vvv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON (for CI)")
	rootCmd.PersistentFlags().String("config", "", "Path to tsgen.toml (default: searched upwards from the working directory)")

	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.InitCmd)
	rootCmd.AddCommand(commands.ConfigCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(commands.ExitCode(err))
	}
}
