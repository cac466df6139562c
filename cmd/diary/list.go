package main

import (
	"slices"
	"strconv"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gorewood/diary/internal/diary"
	"github.com/gorewood/diary/internal/output"
)

// listItem is one row of list output.
type listItem struct {
	Date  string `json:"date"`
	Title string `json:"title"`
	Shown string `json:"date_display"`
	Page  string `json:"page"`
}

// titles lets fuzzy match against entry titles.
type titles []*diary.Entry

func (t titles) String(i int) string { return t[i].Title }
func (t titles) Len() int            { return len(t) }

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	var yearFlag int
	var filterFlag string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List diary entries, newest first",
		Long: `List the entries that would be generated, newest first.

Examples:
  diary list                    # Every entry
  diary list --year 2024        # Entries from 2024
  diary list --filter trip      # Entries whose title fuzzy-matches "trip", best match first
  diary list --json             # Entries as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, yearFlag, filterFlag)
		},
	}

	cmd.Flags().IntVar(&yearFlag, "year", 0, "Only list entries from this year")
	cmd.Flags().StringVar(&filterFlag, "filter", "", "Fuzzy-match entry titles")

	return cmd
}

// runList executes the list command.
func runList(cmd *cobra.Command, year int, filter string) error {
	printer := newPrinter(cmd)

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		printer.Error(err)
		return err
	}
	log := newLogger(cmd, cfg)
	defer func() { _ = log.Sync() }()

	loader := diary.NewLoader(afero.NewOsFs(), cfg.EntriesDir, cfg.Extension, log)
	if !loader.DirExists() {
		err := output.NewUserError("entries directory not found: " + cfg.EntriesDir)
		printer.Error(err)
		return err
	}

	entries, stats, err := loader.Load()
	if err != nil {
		err = output.NewSystemErrorWithCause("failed to load entries", err)
		printer.Error(err)
		return err
	}
	for _, s := range stats.Skipped {
		printer.Warn("%s", s.Reason)
	}

	entries = selectEntries(entries, year, filter)
	items := lo.Map(entries, func(e *diary.Entry, _ int) listItem {
		return listItem{Date: e.SourceID, Title: e.Title, Shown: e.DateDisplay, Page: e.PagePath()}
	})

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"count": len(items), "entries": items})
	}

	if len(items) == 0 {
		printer.Hint("No entries found")
		return nil
	}

	rows := lo.Map(items, func(it listItem, _ int) []string {
		return []string{it.Date, it.Title, it.Page}
	})
	printer.Table([]string{"DATE", "TITLE", "PAGE"}, rows)
	printer.Hint("%d entries (%s)", len(items), yearLabel(year))
	return nil
}

// selectEntries orders entries newest first, keeps those from year when
// year is set, and with a filter keeps fuzzy title matches, best first.
func selectEntries(entries []*diary.Entry, year int, filter string) []*diary.Entry {
	entries = diary.SortByDate(entries)
	slices.Reverse(entries)

	if year != 0 {
		entries = lo.Filter(entries, func(e *diary.Entry, _ int) bool { return e.Year == year })
	}
	if filter == "" {
		return entries
	}

	matches := fuzzy.FindFrom(filter, titles(entries))
	return lo.Map(matches, func(m fuzzy.Match, _ int) *diary.Entry { return entries[m.Index] })
}

// yearLabel names the years a listing covers.
func yearLabel(year int) string {
	if year == 0 {
		return "all years"
	}
	return strconv.Itoa(year)
}
