// Package commands implements the tsgen subcommands.
package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/tsgen/config"
	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/typegen"
)

// Exit codes
const (
	ExitOK       = 0
	ExitOutdated = 1
	ExitError    = 2
)

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, errors.ErrOutOfDate):
		return ExitOutdated
	default:
		return ExitError
	}
}

// loadConfig honours the persistent --config flag, falling back to the
// project config search
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// printDiagnostics shows warnings to the user; info diagnostics only go to the log
func printDiagnostics(result *typegen.Result) {
	for _, d := range result.Warnings() {
		pterm.Warning.Println(d.String())
	}
}
