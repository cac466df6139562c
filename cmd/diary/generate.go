package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gorewood/diary/internal/config"
	"github.com/gorewood/diary/internal/output"
	"github.com/gorewood/diary/internal/render"
	"github.com/gorewood/diary/internal/site"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "generate",
		Aliases: []string{"build"},
		Short:   "Generate every diary page from the entries directory",
		Long: `Generate the diary: one page per entry, an index per year and the landing page.

Existing pages are overwritten and nothing is deleted, so running it twice
over the same entries yields identical files. Files whose name is not a
valid YYYY-MM-DD date are skipped with a warning.

Examples:
  diary generate                               # Use configured paths
  diary generate --entries ./entries --out .   # Explicit paths
  diary generate --json                        # Print the summary as JSON`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, _ []string) error {
	printer := newPrinter(cmd)

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	log := newLogger(cmd, cfg)
	defer func() { _ = log.Sync() }()
	log.Debugw("generating diary", "entries", cfg.EntriesDir, "out", cfg.OutputDir, "extension", cfg.Extension)

	renderer, err := render.NewHTML(cfg.Site)
	if err != nil {
		err = output.NewSystemErrorWithCause("failed to load page templates", err)
		printer.Error(err)
		return err
	}

	fs := afero.NewOsFs()
	summary, err := site.NewGenerator(fs, cfg, renderer, printer, log).Run()
	if err != nil {
		printer.Error(err)
		if ok, _ := afero.DirExists(fs, cfg.EntriesDir); !ok {
			printer.Hint("   Please create it and add your %s files", cfg.Extension)
		}
		return err
	}

	printer.Blank()
	if err := printer.Result("✅ "+summary.Message(), summary); err != nil {
		return err
	}
	printNewEntryHint(printer, cfg)
	return nil
}

// printNewEntryHint explains how to add the next entry.
func printNewEntryHint(printer *output.Printer, cfg *config.Config) {
	printer.Blank()
	printer.Hint("💡 To add a new entry:")
	printer.Hint("   1. Run: diary new (or create %s/YYYY-MM-DD%s)", cfg.EntriesDir, cfg.Extension)
	printer.Hint("   2. First line: Full date (e.g., 'January 1, 2025')")
	printer.Hint("   3. Second line: Title")
	printer.Hint("   4. Rest: Your content")
	printer.Hint("   5. Run: diary generate")
}
