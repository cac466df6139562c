package output

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mattn/go-isatty"
)

// Values accepted by --color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the --color values in help order.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// CheckColorMode returns a user error for an unknown --color value.
// The empty string is treated as auto.
func CheckColorMode(mode string) error {
	if mode == "" || slices.Contains(ColorModes, mode) {
		return nil
	}
	return NewUserError(fmt.Sprintf("invalid --color %q: must be one of %s", mode, strings.Join(ColorModes, ", ")))
}

// ResolveColorMode decides whether styled output is used. "never" and
// "always" override the detected isTTY; anything else falls back to it.
func ResolveColorMode(mode string, isTTY bool) bool {
	switch mode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether w is a terminal. Only file-backed writers can be.
func IsTTY(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
