package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/diary/internal/output"
)

// newConfigCmd creates the config command.
func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Show the configuration after applying the config file, DIARY_* environment
variables and flags, in that order of precedence (flags win).

Examples:
  diary config                                # As YAML, ready to save as diary.yaml
  DIARY_SITE_AUTHOR="Sam" diary config --json # As JSON`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
}

// runConfig executes the config command.
func runConfig(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	cfg, used, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"config_file": used, "config": cfg})
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		err = output.NewSystemErrorWithCause("failed to encode config", err)
		printer.Error(err)
		return err
	}

	header := "# defaults (no config file found)"
	if used != "" {
		header = "# " + used
	}
	printer.Raw(header + "\n" + string(data))
	return nil
}
