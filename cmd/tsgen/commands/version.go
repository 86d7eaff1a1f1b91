package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/tsgen/errors"
	"github.com/teranos/tsgen/version"
)

var versionJSON bool

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show tsgen version information",
	Long:  `Display version, build time, commit hash, and platform information for the tsgen binary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()

		if versionJSON {
			output, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to format version as JSON")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), info.String())
		fmt.Fprintf(cmd.OutOrStdout(), "Platform: %s\n", info.Platform)
		fmt.Fprintf(cmd.OutOrStdout(), "Go: %s\n", info.GoVersion)
		return nil
	},
}

func init() {
	VersionCmd.Flags().BoolVarP(&versionJSON, "json", "j", false, "Output version info as JSON")
}
