package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gorewood/diary/internal/diary"
	"github.com/gorewood/diary/internal/output"
)

// displayLayout is how new entries spell out their date on line 1.
const displayLayout = "January 2, 2006"

// newNewCmd creates the new command.
func newNewCmd() *cobra.Command {
	return newNewCmdInternal(afero.NewOsFs(), time.Now)
}

// newNewCmdInternal creates the new command with an injected filesystem and clock.
func newNewCmdInternal(fs afero.Fs, now func() time.Time) *cobra.Command {
	var titleFlag string

	cmd := &cobra.Command{
		Use:   "new [YYYY-MM-DD]",
		Short: "Create an entry file for a date",
		Long: `Create an entry file with the date line and title filled in.

The date defaults to today. An existing entry is never overwritten.

Examples:
  diary new                           # Today's entry
  diary new 2025-03-05                # A specific day
  diary new --title "Spring Cleaning" # With a title`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, fs, now, args, titleFlag)
		},
	}

	cmd.Flags().StringVar(&titleFlag, "title", "", "Entry title (line 2)")

	return cmd
}

// runNew executes the new command.
func runNew(cmd *cobra.Command, fs afero.Fs, now func() time.Time, args []string, title string) error {
	printer := newPrinter(cmd)

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}

	day := now()
	if len(args) == 1 {
		day, err = diary.ParseFilename(args[0])
		if err != nil {
			err = output.NewUserError(fmt.Sprintf("invalid date %q: use YYYY-MM-DD", args[0]))
			printer.Error(err)
			return err
		}
	}

	id := day.Format(diary.FilenameLayout)
	path := filepath.Join(cfg.EntriesDir, id+cfg.Extension)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		err = output.NewSystemErrorWithCause("failed to check "+path, err)
		printer.Error(err)
		return err
	}
	if exists {
		err := output.NewConflictError("entry already exists: " + path)
		printer.Error(err)
		return err
	}

	if err := fs.MkdirAll(cfg.EntriesDir, 0o755); err != nil {
		err = output.NewSystemErrorWithCause("failed to create "+cfg.EntriesDir, err)
		printer.Error(err)
		return err
	}
	if err := afero.WriteFile(fs, path, []byte(skeleton(day, title)), 0o644); err != nil {
		err = output.NewSystemErrorWithCause("failed to write "+path, err)
		printer.Error(err)
		return err
	}

	if err := printer.Result("Created "+path, map[string]string{"path": path, "date": id}); err != nil {
		return err
	}
	printer.Hint("Write your entry below the title, then run: diary generate")
	return nil
}

// skeleton is the initial text of an entry: display date, title, blank line.
func skeleton(day time.Time, title string) string {
	return day.Format(displayLayout) + "\n" + title + "\n\n"
}
