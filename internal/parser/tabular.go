package parser

import (
	"regexp"
	"strings"
)

// numericLiteral matches a strict decimal or scientific-notation literal.
// A header cell is any cell that fails this match.
var numericLiteral = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// IsNumericCell reports whether a trimmed cell is a strict numeric literal.
func IsNumericCell(cell string) bool {
	return numericLiteral.MatchString(strings.TrimSpace(cell))
}

// ParseRows splits a payload into ordered rows of cells using the detected
// format. Blank lines are dropped. If any cell of the first row is
// non-numeric, that row is treated as a header and excluded; the returned
// flag reports whether a header was removed.
func ParseRows(text string, d Detection) (rows [][]string, hadHeader bool) {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		var cells []string
		if d.Format == FormatDelimited {
			cells = splitDelimited(line, d.Separator)
		} else {
			cells = strings.Fields(line)
		}
		if len(cells) == 0 {
			continue
		}
		rows = append(rows, cells)
	}

	if len(rows) > 0 && isHeaderRow(rows[0]) {
		rows = rows[1:]
		hadHeader = true
	}
	return rows, hadHeader
}

// isHeaderRow reports whether any cell fails the strict numeric check.
func isHeaderRow(row []string) bool {
	for _, cell := range row {
		if !IsNumericCell(cell) {
			return true
		}
	}
	return false
}

// splitDelimited splits one line on sep, honoring quoting: a quoted field
// may contain the separator, and a doubled quote inside a quoted field is
// an escaped literal quote. Unquoted cells are trimmed.
func splitDelimited(line string, sep rune) []string {
	var (
		cells    []string
		cell     strings.Builder
		inQuotes bool
	)
	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '"':
			if inQuotes && i+1 < len(runes) && runes[i+1] == '"' {
				cell.WriteRune('"')
				i++
				continue
			}
			inQuotes = !inQuotes
		case r == sep && !inQuotes:
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	cells = append(cells, strings.TrimSpace(cell.String()))
	return cells
}
