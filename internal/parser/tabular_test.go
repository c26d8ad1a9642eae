package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	t.Run("comma wins", func(t *testing.T) {
		t.Parallel()
		d := Detect("1.0,2.0\t3.0\n4,5,6")
		assert.Equal(t, FormatDelimited, d.Format)
		assert.Equal(t, ',', d.Separator)
	})

	t.Run("tab when no comma", func(t *testing.T) {
		t.Parallel()
		d := Detect("1.0\t2.0\t3.0")
		assert.Equal(t, FormatDelimited, d.Format)
		assert.Equal(t, '\t', d.Separator)
	})

	t.Run("whitespace fallback", func(t *testing.T) {
		t.Parallel()
		d := Detect("1.0 2.0 3.0")
		assert.Equal(t, FormatWhitespace, d.Format)
	})

	t.Run("only first line inspected", func(t *testing.T) {
		t.Parallel()
		d := Detect("1 2 3\n4,5,6")
		assert.Equal(t, FormatWhitespace, d.Format)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		d := Detect("")
		assert.Equal(t, FormatWhitespace, d.Format)
	})
}

func TestParseRowsWhitespace(t *testing.T) {
	t.Parallel()

	rows, hadHeader := ParseRows("1 2 3\n\n  4\t5 6  \n", Detection{Format: FormatWhitespace})
	assert.False(t, hadHeader)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "2", "3"}, rows[0])
	assert.Equal(t, []string{"4", "5", "6"}, rows[1])
}

func TestParseRowsHeaderDetection(t *testing.T) {
	t.Parallel()

	t.Run("header removed", func(t *testing.T) {
		t.Parallel()
		rows, hadHeader := ParseRows("x,y,z\n1,2,3\n4,5,6", Detection{Format: FormatDelimited, Separator: ','})
		assert.True(t, hadHeader)
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"1", "2", "3"}, rows[0])
	})

	t.Run("all-numeric first row kept", func(t *testing.T) {
		t.Parallel()
		rows, hadHeader := ParseRows("1,2,3\n4,5,6", Detection{Format: FormatDelimited, Separator: ','})
		assert.False(t, hadHeader)
		assert.Len(t, rows, 2)
	})

	t.Run("scientific notation is numeric", func(t *testing.T) {
		t.Parallel()
		rows, hadHeader := ParseRows("1.5e-3 -2E+4 .5\n1 2 3", Detection{Format: FormatWhitespace})
		assert.False(t, hadHeader)
		assert.Len(t, rows, 2)
	})
}

func TestSplitDelimitedQuoting(t *testing.T) {
	t.Parallel()

	t.Run("quoted separator", func(t *testing.T) {
		t.Parallel()
		cells := splitDelimited(`"1,5",2,3`, ',')
		assert.Equal(t, []string{"1,5", "2", "3"}, cells)
	})

	t.Run("doubled quote escape", func(t *testing.T) {
		t.Parallel()
		cells := splitDelimited(`"he said ""hi""",2`, ',')
		assert.Equal(t, []string{`he said "hi"`, "2"}, cells)
	})

	t.Run("unquoted cells trimmed", func(t *testing.T) {
		t.Parallel()
		cells := splitDelimited(" 1 ,\t2,3 ", ',')
		assert.Equal(t, []string{"1", "2", "3"}, cells)
	})

	t.Run("trailing empty cell", func(t *testing.T) {
		t.Parallel()
		cells := splitDelimited("1,2,", ',')
		assert.Equal(t, []string{"1", "2", ""}, cells)
	})
}

func TestIsNumericCell(t *testing.T) {
	t.Parallel()

	for _, cell := range []string{"1", "-1.5", "+0.25", ".5", "3.", "1e6", "1.5E-3"} {
		assert.True(t, IsNumericCell(cell), cell)
	}
	for _, cell := range []string{"x", "1.2.3", "", "--1", "1e", "NaN", "frame_0"} {
		assert.False(t, IsNumericCell(cell), cell)
	}
}
