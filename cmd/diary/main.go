// Package main provides the entry point for the diary CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/gorewood/diary/internal/config"
	"github.com/gorewood/diary/internal/envfile"
	"github.com/gorewood/diary/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// useColor resolves --color against the command's output writer.
func useColor(cmd *cobra.Command) bool {
	mode := output.ColorAuto
	if flag := cmd.Flags().Lookup("color"); flag != nil {
		mode = flag.Value.String()
	}
	return output.ResolveColorMode(mode, output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter returns the printer every command reports through.
// Warnings and human-readable errors go to the command's stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
		WithStderr(cmd.ErrOrStderr())
}

// loadConfig builds the effective configuration: flags over DIARY_*
// environment variables over the config file over defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	v := config.New()
	if err := bindFlags(v, cmd); err != nil {
		return nil, "", output.NewSystemErrorWithCause("failed to bind flags", err)
	}

	file, _ := cmd.Flags().GetString("config")
	cfg, used, err := config.Load(v, file)
	if err != nil {
		return nil, "", output.NewUserError(err.Error())
	}
	return cfg, used, nil
}

// bindFlags binds the persistent path and debug flags to their config keys.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	keys := map[string]string{
		"entries": config.KeyEntriesDir,
		"out":     config.KeyOutputDir,
		"debug":   config.KeyDebug,
	}
	for name, key := range keys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// newLogger returns the diagnostic logger for cfg, writing to stderr.
func newLogger(cmd *cobra.Command, cfg *config.Config) *zap.SugaredLogger {
	return config.NewLogger(cmd.ErrOrStderr(), cfg.Debug)
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(reportError),
	)
	return output.GetExitCode(err)
}

// reportError prints errors the commands have not reported themselves,
// such as unknown flags or bad arguments.
func reportError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the diary CLI.
// Without a subcommand it generates the site.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Generate a static HTML diary from dated text files",
		Long: `Diary - turn a directory of dated plain-text entries into a static HTML diary.

Each entries/YYYY-MM-DD.txt file becomes a page at <year>/<month>/<date>.html,
every year gets an index listing its entries by month, and diaryLanding.html
links to the most recent entries of each year.

Entry file format:
  line 1   the date as it should be displayed, e.g. "December 25, 2025"
  line 2   the title (a blank line means "Diary Entry")
  rest     the content; blank lines separate paragraphs

Running diary without a subcommand is the same as diary generate.
All commands support --json for structured output.`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			mode, _ := cmd.Flags().GetString("color")
			if err := output.CheckColorMode(mode); err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			return loadEnvFiles(cmd)
		},
		RunE: runGenerate,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Config file (default: diary.yaml in . or "+configDirHint()+")")
	flags.String("entries", "", "Directory holding the YYYY-MM-DD entry files (default \"entries\")")
	flags.String("out", "", "Directory the diary is written to (default \".\")")
	flags.Bool("json", false, "Output in JSON format")
	flags.Bool("debug", false, "Log diagnostics to stderr")
	flags.String("color", output.ColorAuto, "Color output: "+strings.Join(output.ColorModes, ", "))

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles applies DIARY_* variables from .env.local, .env and the
// config directory's env file. Variables already set take precedence.
func loadEnvFiles(cmd *cobra.Command) error {
	if _, err := envfile.Load(afero.NewOsFs(), envfile.Paths(config.Dir())...); err != nil {
		err := output.NewUserError(err.Error())
		newPrinter(cmd).Error(err)
		return err
	}
	return nil
}

func configDirHint() string {
	if dir := config.Dir(); dir != "" {
		return dir
	}
	return "the user config directory"
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "build", Title: "Build Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "entries", Title: "Entry Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "admin", Title: "Admin Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newGenerateCmd(), "build")

	addGroupedCommand(cmd, newListCmd(), "entries")
	addGroupedCommand(cmd, newNewCmd(), "entries")

	addGroupedCommand(cmd, newConfigCmd(), "admin")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
