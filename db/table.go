package db

import (
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/nickyhof/CsvHandler/cond"
)

// minPadding is the extra width every header gets over its own text.
const minPadding = 2

type alignment int

const (
	alignLeft alignment = iota
	alignDecimal
)

// SimpleTable renders rows as a bordered grid:
//
//	+--------+---------+
//	| name   |   price |
//	+========+=========+
//	| redmi  |     149 |
//	+--------+---------+
//
// Numeric columns are right aligned on the decimal point, text columns are
// left aligned.
type SimpleTable struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a new table writer
func NewTable(w io.Writer) *SimpleTable {
	return &SimpleTable{
		writer: w,
		rows:   make([][]string, 0),
	}
}

// Header sets the table headers
func (t *SimpleTable) Header(headers []string) {
	t.headers = headers
}

// Row adds a single row
func (t *SimpleTable) Row(row []string) {
	t.rows = append(t.rows, row)
}

// Bulk adds multiple rows
func (t *SimpleTable) Bulk(rows [][]string) {
	t.rows = append(t.rows, rows...)
}

// Render outputs the formatted table
func (t *SimpleTable) Render() {
	if len(t.headers) == 0 && len(t.rows) == 0 {
		return
	}

	numCols := t.numColumns()
	cells := t.alignedCells(numCols)
	aligns := t.columnAlignments(numCols)
	widths := t.calculateWidths(numCols, cells)

	var b strings.Builder
	separator := buildSeparator(widths, '-')

	b.WriteString(separator)
	if len(t.headers) > 0 {
		b.WriteString(formatRow(t.headers, widths, aligns))
		b.WriteString(buildSeparator(widths, '='))
	}
	for _, row := range cells {
		b.WriteString(formatRow(row, widths, aligns))
		b.WriteString(separator)
	}
	if len(cells) == 0 && len(t.headers) > 0 {
		b.WriteString(separator)
	}

	_, _ = io.WriteString(t.writer, b.String())
}

func (t *SimpleTable) numColumns() int {
	numCols := len(t.headers)
	for _, row := range t.rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	return numCols
}

// columnAlignments marks a column numeric when all its non-empty cells
// parse as numbers.
func (t *SimpleTable) columnAlignments(numCols int) []alignment {
	aligns := make([]alignment, numCols)
	for i := range aligns {
		numeric, seen := true, false
		for _, row := range t.rows {
			cell := cellAt(row, i)
			if cell == "" {
				continue
			}
			seen = true
			if _, err := cond.ParseNumber(cell); err != nil {
				numeric = false
				break
			}
		}
		if numeric && seen {
			aligns[i] = alignDecimal
		}
	}
	return aligns
}

// alignedCells trims every cell and pads numeric cells on the right so
// their decimal points line up.
func (t *SimpleTable) alignedCells(numCols int) [][]string {
	aligns := t.columnAlignments(numCols)

	cells := make([][]string, len(t.rows))
	for r, row := range t.rows {
		cells[r] = make([]string, numCols)
		for i := range numCols {
			cells[r][i] = strings.TrimSpace(cellAt(row, i))
		}
	}

	for i, align := range aligns {
		if align != alignDecimal {
			continue
		}
		maxDecimals := -1
		for _, row := range cells {
			maxDecimals = max(maxDecimals, afterPoint(row[i]))
		}
		for _, row := range cells {
			if row[i] == "" {
				continue
			}
			row[i] += strings.Repeat(" ", maxDecimals-afterPoint(row[i]))
		}
	}
	return cells
}

// calculateWidths determines the width needed for each column
func (t *SimpleTable) calculateWidths(numCols int, cells [][]string) []int {
	widths := make([]int, numCols)

	for i, h := range t.headers {
		widths[i] = runewidth.StringWidth(h) + minPadding
	}

	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	for i := range widths {
		widths[i] = max(widths[i], 1)
	}

	return widths
}

// afterPoint counts the digits after the decimal point of a number, or
// returns -1 for integers and text.
func afterPoint(cell string) int {
	trimmed := strings.TrimSpace(cell)
	if _, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return -1
	}
	if _, err := cond.ParseNumber(trimmed); err != nil {
		return -1
	}
	pos := strings.LastIndex(trimmed, ".")
	if pos < 0 {
		pos = strings.LastIndex(strings.ToLower(trimmed), "e")
	}
	if pos < 0 {
		return -1
	}
	return len(trimmed) - pos - 1
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

// buildSeparator creates the horizontal line
func buildSeparator(widths []int, fill rune) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat(string(fill), w+2)
	}
	return "+" + strings.Join(parts, "+") + "+\n"
}

// formatRow formats a single row with proper padding
func formatRow(row []string, widths []int, aligns []alignment) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := cellAt(row, i)
		pad := strings.Repeat(" ", w-runewidth.StringWidth(cell))
		if aligns[i] == alignDecimal {
			parts[i] = " " + pad + cell + " "
		} else {
			parts[i] = " " + cell + pad + " "
		}
	}
	return "|" + strings.Join(parts, "|") + "|\n"
}
