package diary

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// LoadStats describes what Load found in the entries directory.
type LoadStats struct {
	Found   int       // files matching the extension
	Loaded  int       // entries parsed
	Empty   int       // zero-line files, skipped silently
	Invalid int       // files whose name is not a date
	Skipped []Skipped // one per invalid file, in file order
}

// Skipped names a file that was left out of the run and why.
type Skipped struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// Loader reads entry files from a single directory of an afero filesystem.
type Loader struct {
	fs  afero.Fs
	dir string
	ext string
	log *zap.SugaredLogger
}

// NewLoader creates a Loader for files ending in ext directly inside dir.
// A nil log discards diagnostics.
func NewLoader(fs afero.Fs, dir, ext string, log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Loader{fs: fs, dir: dir, ext: ext, log: log}
}

// Dir returns the entries directory.
func (l *Loader) Dir() string {
	return l.dir
}

// DirExists returns true if the entries directory exists.
func (l *Loader) DirExists() bool {
	ok, err := afero.DirExists(l.fs, l.dir)
	return err == nil && ok
}

// Files returns the names of entry files, sorted. Subdirectories and hidden
// files are ignored and the extension match is case-sensitive.
func (l *Loader) Files() ([]string, error) {
	infos, err := afero.ReadDir(l.fs, l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading entries directory %s: %w", l.dir, err)
	}

	var names []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != l.ext {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// Load parses every entry file. Files with an invalid name are recorded in
// the stats and skipped; only directory or read failures are errors.
func (l *Loader) Load() ([]*Entry, *LoadStats, error) {
	names, err := l.Files()
	if err != nil {
		return nil, nil, err
	}

	stats := &LoadStats{Found: len(names)}
	entries := make([]*Entry, 0, len(names))

	for _, name := range names {
		data, err := afero.ReadFile(l.fs, filepath.Join(l.dir, name))
		if err != nil {
			return nil, nil, fmt.Errorf("reading entry %s: %w", name, err)
		}

		entry, err := ParseEntry(name, data)
		switch {
		case errors.Is(err, ErrEmptyEntry):
			stats.Empty++
			l.log.Debugw("skipping empty entry file", "file", name)
			continue
		case errors.Is(err, ErrInvalidFilename):
			stats.Invalid++
			stats.Skipped = append(stats.Skipped, Skipped{Name: name, Reason: err.Error()})
			l.log.Debugw("skipping entry file", "file", name, "error", err)
			continue
		case err != nil:
			return nil, nil, fmt.Errorf("parsing entry %s: %w", name, err)
		}

		l.log.Debugw("loaded entry", "source", entry.SourceID, "title", entry.Title, "bytes", len(data))
		entries = append(entries, entry)
		stats.Loaded++
	}

	return entries, stats, nil
}
