package commands

import (
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/tsgen/config"
	"github.com/teranos/tsgen/errors"
)

var (
	initForce    bool
	initPackages []string
	initCatalogs []string
)

// InitCmd writes a starter tsgen.toml
var InitCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a starter " + config.FileName,
	Long: `Write a ` + config.FileName + ` with default settings to dir (default: the
working directory). An existing file is kept unless --force is given, in
which case it is saved as ` + config.FileName + `.back first.

Examples:
  tsgen init                          # ./tsgen.toml with defaults
  tsgen init -p ./models/...          # Preset the Go packages
  tsgen init --force                  # Replace an existing file`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	InitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config")
	InitCmd.Flags().StringSliceVarP(&initPackages, "packages", "p", nil, "Go package patterns to preset")
	InitCmd.Flags().StringSliceVarP(&initCatalogs, "catalog", "c", nil, "Catalog files to preset")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	path := filepath.Join(dir, config.FileName)

	if _, err := os.Stat(path); err == nil && !initForce {
		return errors.WithHint(
			errors.Newf("%s already exists", path),
			"use --force to replace it (the old file is kept as "+config.FileName+".back)")
	}

	cfg := config.Default()
	cfg.Source.Packages = initPackages
	cfg.Source.Catalogs = initCatalogs

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	pterm.Success.Printf("Wrote %s\n", path)
	return nil
}
