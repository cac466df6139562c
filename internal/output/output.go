package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
)

// Printer writes generator progress, warnings and results.
// In JSON mode only structured documents reach the main writer.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	json   bool
	color  bool
	pal    palette
}

type palette struct {
	err, ok, warn, bold, dim, path lipgloss.Style
}

func newPalette(color bool) palette {
	plain := lipgloss.NewStyle()
	if !color {
		return palette{plain, plain, plain, plain, plain, plain}
	}
	fg := func(c string) lipgloss.Style { return plain.Foreground(lipgloss.Color(c)) }
	return palette{
		err:  fg("9").Bold(true),
		ok:   fg("10"),
		warn: fg("11"),
		bold: plain.Bold(true),
		dim:  fg("8"),
		path: fg("13"),
	}
}

// NewPrinter creates a Printer writing to w. Errors and warnings share w
// until WithStderr is called.
func NewPrinter(w io.Writer, jsonMode, color bool) *Printer {
	return &Printer{
		out:    w,
		errOut: w,
		json:   jsonMode,
		color:  color,
		pal:    newPalette(color),
	}
}

// WithStderr sets a separate writer for errors and warnings in human mode.
// In JSON mode they stay on the main writer so it remains parseable.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errOut = w
	return p
}

// IsJSON returns true if the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY reports whether styled output is enabled.
func (p *Printer) IsTTY() bool {
	return p.color
}

// Result reports the outcome of a command: data as a JSON document in
// JSON mode, message in the success style otherwise.
func (p *Printer) Result(message string, data any) error {
	if p.json {
		return p.WriteJSON(data)
	}
	p.line(p.out, p.pal.ok.Render(message))
	return nil
}

// Error reports err with its exit code. Untyped errors count as user errors.
func (p *Printer) Error(err error) {
	exitErr := &ExitError{}
	if !errors.As(err, &exitErr) {
		exitErr = NewUserError(err.Error())
	}

	if p.json {
		p.line(p.out, string(errorJSON(exitErr.Message, exitErr.Code)))
		return
	}
	p.line(p.errOut, p.pal.err.Render("Error")+": "+exitErr.Message)
}

// Warn reports a recoverable problem, such as a skipped entry file.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.WriteJSON(map[string]string{"warning": msg})
		return
	}
	p.line(p.errOut, p.pal.warn.Render("Warning")+": "+msg)
}

// Step prints a progress line. No-op in JSON mode.
func (p *Printer) Step(format string, args ...any) {
	p.human(p.pal.bold, format, args...)
}

// Generated reports a written file, given relative to the output root.
// No-op in JSON mode.
func (p *Printer) Generated(rel string) {
	if p.json {
		return
	}
	p.line(p.out, p.pal.ok.Render("✓")+" Generated: "+p.pal.path.Render(rel))
}

// Hint prints dimmed help text. No-op in JSON mode.
func (p *Printer) Hint(format string, args ...any) {
	p.human(p.pal.dim, format, args...)
}

// Blank prints an empty line. No-op in JSON mode.
func (p *Printer) Blank() {
	if !p.json {
		p.line(p.out, "")
	}
}

// Raw writes s unchanged in either mode.
func (p *Printer) Raw(s string) {
	mustWrite(io.WriteString(p.out, s))
}

// WriteJSON writes data as an indented JSON document.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// Table renders rows under bold headers with space-padded columns.
// Cells beyond the header count are dropped.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := lo.Map(headers, func(h string, col int) int {
		cells := lo.FilterMap(rows, func(row []string, _ int) (int, bool) {
			if col >= len(row) {
				return 0, false
			}
			return lipgloss.Width(row[col]), true
		})
		return lo.Max(append(cells, lipgloss.Width(h)))
	})

	p.tableRow(headers, widths, p.pal.bold)
	for _, row := range rows {
		p.tableRow(row, widths, lipgloss.NewStyle())
	}
}

func (p *Printer) tableRow(cells []string, widths []int, style lipgloss.Style) {
	padded := make([]string, 0, len(widths))
	for i, cell := range lo.Slice(cells, 0, len(widths)) {
		padded = append(padded, style.Render(padRight(cell, widths[i])))
	}
	p.line(p.out, strings.Join(padded, "  "))
}

func (p *Printer) human(style lipgloss.Style, format string, args ...any) {
	if p.json {
		return
	}
	p.line(p.out, style.Render(fmt.Sprintf(format, args...)))
}

func (p *Printer) line(w io.Writer, s string) {
	mustWrite(fmt.Fprintln(w, s))
}

// errorJSON returns the JSON error document {"error": "...", "code": N}.
func errorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// mustWrite panics if a write to the console or a buffer fails.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
