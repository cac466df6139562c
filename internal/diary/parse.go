package diary

import (
	"path"
	"strings"
)

// ParseEntry builds an Entry from the name and raw bytes of an entry file.
//
// Line 1 is the display date. Line 2 is the title when it is not blank;
// a blank line 2 falls through to the content. Everything after that is
// the content, with line breaks kept and outer whitespace trimmed.
func ParseEntry(filename string, data []byte) (*Entry, error) {
	lines := splitLines(normalizeNewlines(string(data)))
	if len(lines) == 0 {
		return nil, ErrEmptyEntry
	}

	title := DefaultTitle
	contentStart := 1
	if len(lines) > 1 && strings.TrimSpace(lines[1]) != "" {
		title = strings.TrimSpace(lines[1])
		contentStart = 2
	}

	stem := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	date, err := ParseFilename(stem)
	if err != nil {
		return nil, err
	}

	return &Entry{
		DateDisplay: strings.TrimSpace(lines[0]),
		Title:       title,
		Content:     strings.TrimSpace(strings.Join(lines[contentStart:], "")),
		Year:        date.Year(),
		Month:       date.Month(),
		Day:         date.Day(),
		MonthName:   MonthName(date.Month()),
		SourceID:    stem,
		Date:        date,
	}, nil
}

// normalizeNewlines turns CRLF and lone CR line endings into LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitLines splits s after each newline, keeping the terminators.
// A trailing newline does not start another line.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
