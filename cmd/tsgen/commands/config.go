package commands

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/tsgen/config"
	"github.com/teranos/tsgen/errors"
)

// ConfigCmd inspects the effective configuration
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate the effective configuration",
	Long: `Display and validate the configuration tsgen would run with, after
merging defaults, ` + config.FileName + ` and TSGEN_* environment variables.

Examples:
  tsgen config show                 # Show as TOML
  tsgen config show --format yaml   # Show as YAML
  tsgen config validate             # Exit non-zero on invalid settings`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	RunE:  runConfigValidate,
}

var configFormat string

func init() {
	configShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")

	ConfigCmd.AddCommand(configShowCmd)
	ConfigCmd.AddCommand(configValidateCmd)
}

// renderConfig marshals cfg in one of the supported formats
func renderConfig(cfg *config.Config, format string) (string, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal config to JSON")
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal config to YAML")
		}
		return "# tsgen configuration\n" + string(data), nil

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return "", errors.Wrap(err, "failed to marshal config to TOML")
		}
		return "# tsgen configuration\n" + string(data), nil

	default:
		return "", errors.Newf("unsupported format: %s (supported: toml, json, yaml)", format)
	}
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	out, err := renderConfig(cfg, configFormat)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "configuration validation failed")
	}

	pterm.Success.Println("Configuration is valid")
	return nil
}
