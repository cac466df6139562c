// Package output provides console output and exit-coded errors for the diary CLI.
//
// # Printer
//
// The Printer carries every user-visible message of a generation run:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Step("Found %d entries", n)      // progress
//	printer.Generated("2025/march/2025-03-05.html")
//	printer.Warn("could not parse date from filename %s", name)
//	printer.Result("Done!", summary)         // JSON document or styled line
//
// In JSON mode progress lines are suppressed and results, warnings and
// errors are written as JSON documents.
//
// # Styling
//
// Human output is styled with lipgloss. Styles are cleared when the writer is
// not a terminal or when --color=never is given.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0
//	output.ExitUserError   // 1: missing entries directory, no entries
//	output.ExitSystemError // 2: I/O error
//	output.ExitConflict    // 3: entry file already exists
package output
