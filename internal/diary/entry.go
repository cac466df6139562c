// Package diary provides the diary entry model, the entry file parser and
// loader, and the grouping used to build year indexes and the landing page.
package diary

import (
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"
)

// DefaultTitle is used when the second line of an entry file is blank or absent.
const DefaultTitle = "Diary Entry"

// FilenameLayout is the layout every entry file stem must match.
const FilenameLayout = "2006-01-02"

// LandingPage is the landing page file name, relative to the output root.
const LandingPage = "diaryLanding.html"

var (
	// ErrEmptyEntry is returned for files without a single line.
	ErrEmptyEntry = errors.New("entry file is empty")

	// ErrInvalidFilename is returned when a file stem is not a calendar date.
	ErrInvalidFilename = errors.New("could not parse date from filename")
)

// Entry is one parsed diary file. Entries are never modified after parsing.
type Entry struct {
	// DateDisplay is the first line of the file, shown as written.
	DateDisplay string `json:"date_display"`
	Title       string `json:"title"`
	Content     string `json:"content"`

	Year      int        `json:"year"`
	Month     time.Month `json:"month"`
	Day       int        `json:"day"`
	MonthName string     `json:"month_name"`

	// SourceID is the file stem and names the entry page.
	SourceID string `json:"source_id"`

	// Date comes from the filename and is only used for ordering.
	Date time.Time `json:"date"`
}

// PagePath returns the entry page location relative to the output root:
// <year>/<monthName>/<sourceId>.html.
func (e *Entry) PagePath() string {
	return path.Join(strconv.Itoa(e.Year), e.MonthName, e.SourceID+".html")
}

// YearIndexPath returns the year index location relative to the output root:
// <year>/<year>-index.html.
func YearIndexPath(year int) string {
	y := strconv.Itoa(year)
	return path.Join(y, y+"-index.html")
}

// MonthName returns the lowercase English name of m, as used in page paths.
func MonthName(m time.Month) string {
	return strings.ToLower(m.String())
}

// ParseFilename parses an entry file stem as a strict YYYY-MM-DD date.
func ParseFilename(stem string) (time.Time, error) {
	date, err := time.Parse(FilenameLayout, stem)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %s", ErrInvalidFilename, stem)
	}
	return date, nil
}
