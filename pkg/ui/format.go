package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/ensure/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is an output format as named by --format and output.format
type Format string

const (
	// FormatAuto picks term or text depending on the output
	FormatAuto Format = "auto"
	// FormatTerminal renders styled output
	FormatTerminal Format = "term"
	// FormatText renders the same lines without styling
	FormatText Format = "text"
	// FormatJSON renders one JSON document per result
	FormatJSON Format = "json"
)

var formatNames = map[string]Format{
	"":         FormatAuto,
	"auto":     FormatAuto,
	"term":     FormatTerminal,
	"terminal": FormatTerminal,
	"text":     FormatText,
	"plain":    FormatText,
	"json":     FormatJSON,
}

// ParseFormat maps a format name, aliases included, to a Format
func ParseFormat(name string) (Format, error) {
	if format, ok := formatNames[strings.ToLower(name)]; ok {
		return format, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", name)
}

// Resolve turns a format name into the format used for out. Auto becomes
// term only on a color capable terminal, and noColor downgrades term to
// text. JSON is never changed.
func Resolve(name string, noColor bool, out io.Writer) (Format, error) {
	format, err := ParseFormat(name)
	if err != nil {
		return format, err
	}

	switch format {
	case FormatAuto:
		if !noColor && ColorTerminal(out) {
			return FormatTerminal, nil
		}
		return FormatText, nil
	case FormatTerminal:
		if noColor {
			return FormatText, nil
		}
	}
	return format, nil
}

// ColorTerminal reports whether out is a terminal able to show colors.
// NO_COLOR disables colors on any terminal.
func ColorTerminal(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}
