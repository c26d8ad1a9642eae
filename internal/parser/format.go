// Package parser turns raw capture exports into ordered numeric rows.
// It is deliberately forgiving: malformed content yields fewer usable
// rows, never an error.
package parser

import "strings"

// Format is the detected layout of a capture export.
type Format int

const (
	// FormatWhitespace splits rows on runs of whitespace.
	FormatWhitespace Format = iota
	// FormatDelimited splits rows on a single separator rune, quote-aware.
	FormatDelimited
)

// Detection is the result of format sniffing.
type Detection struct {
	Format    Format
	Separator rune // only meaningful for FormatDelimited
}

// Detect inspects the first line of a payload and picks a format.
// A comma wins over a tab; anything else falls back to whitespace
// tokenization, so detection cannot fail.
func Detect(text string) Detection {
	line := text
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	switch {
	case strings.ContainsRune(line, ','):
		return Detection{Format: FormatDelimited, Separator: ','}
	case strings.ContainsRune(line, '\t'):
		return Detection{Format: FormatDelimited, Separator: '\t'}
	default:
		return Detection{Format: FormatWhitespace}
	}
}
