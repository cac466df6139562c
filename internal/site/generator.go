// Package site writes the diary: entry pages, year indexes and the landing
// page, generated from the entries directory into the output directory.
package site

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gorewood/diary/internal/config"
	"github.com/gorewood/diary/internal/diary"
	"github.com/gorewood/diary/internal/output"
	"github.com/gorewood/diary/internal/render"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Summary counts the pages written by a run.
type Summary struct {
	EntryPages   int             `json:"entry_pages"`
	YearIndexes  int             `json:"year_indexes"`
	LandingPages int             `json:"landing_pages"`
	Skipped      []diary.Skipped `json:"skipped,omitempty"`
}

// Message is the human-readable completion line.
func (s *Summary) Message() string {
	return fmt.Sprintf("Done! Generated %d entry pages, %d year indexes, and %d landing page",
		s.EntryPages, s.YearIndexes, s.LandingPages)
}

// Generator runs one full, sequential generation.
type Generator struct {
	fs       afero.Fs
	cfg      *config.Config
	renderer render.Renderer
	printer  *output.Printer
	log      *zap.SugaredLogger
}

// NewGenerator creates a Generator. A nil log discards diagnostics.
func NewGenerator(fs afero.Fs, cfg *config.Config, r render.Renderer, printer *output.Printer, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{fs: fs, cfg: cfg, renderer: r, printer: printer, log: log}
}

// Run loads every entry and writes all pages. Existing files are
// overwritten; nothing is ever deleted. Fatal conditions are returned as
// *output.ExitError and leave the output directory untouched.
func (g *Generator) Run() (*Summary, error) {
	g.printer.Step("🔍 Scanning for diary entries...")

	loader := diary.NewLoader(g.fs, g.cfg.EntriesDir, g.cfg.Extension, g.log)
	if !loader.DirExists() {
		return nil, output.NewUserError(fmt.Sprintf("entries directory not found: %s", g.cfg.EntriesDir))
	}

	entries, stats, err := loader.Load()
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to load entries", err)
	}
	if stats.Found == 0 {
		return nil, output.NewUserError(fmt.Sprintf("no %s files found in %s", g.cfg.Extension, g.cfg.EntriesDir))
	}

	g.printer.Step("📝 Found %d entries", stats.Found)
	for _, s := range stats.Skipped {
		g.printer.Warn("%s", s.Reason)
	}
	g.log.Debugw("loaded entries", "found", stats.Found, "loaded", stats.Loaded, "empty", stats.Empty, "invalid", stats.Invalid)

	if len(entries) == 0 {
		return nil, output.NewUserError("no valid entries found")
	}

	entries = diary.SortByDate(entries)
	summary := &Summary{Skipped: stats.Skipped}

	g.printer.Step("\n🔨 Generating HTML pages...\n")

	for _, e := range entries {
		html, err := g.renderer.EntryPage(e)
		if err != nil {
			return nil, output.NewSystemErrorWithCause("failed to render "+e.SourceID, err)
		}
		if err := g.write(e.PagePath(), html); err != nil {
			return nil, err
		}
		summary.EntryPages++
	}

	groups := diary.GroupByYear(entries)
	for _, year := range diary.SortedYears(groups) {
		html, err := g.renderer.YearIndex(year, groups[year])
		if err != nil {
			return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to render %d index", year), err)
		}
		if err := g.write(diary.YearIndexPath(year), html); err != nil {
			return nil, err
		}
		summary.YearIndexes++
	}

	html, err := g.renderer.LandingPage(diary.Years(entries))
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to render landing page", err)
	}
	if err := g.write(diary.LandingPage, html); err != nil {
		return nil, err
	}
	summary.LandingPages++

	return summary, nil
}

// write stores html at rel, a slash-separated path under the output root,
// creating parent directories as needed.
func (g *Generator) write(rel, html string) error {
	target := filepath.Join(g.cfg.OutputDir, filepath.FromSlash(rel))
	if err := g.fs.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return output.NewSystemErrorWithCause("failed to create "+path.Dir(rel), err)
	}
	if err := afero.WriteFile(g.fs, target, []byte(html), filePerm); err != nil {
		return output.NewSystemErrorWithCause("failed to write "+rel, err)
	}

	g.log.Debugw("wrote page", "path", target, "bytes", len(html))
	g.printer.Generated(rel)
	return nil
}
