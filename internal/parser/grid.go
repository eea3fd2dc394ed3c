package parser

import (
	"strconv"
	"strings"
)

// CellKind tags the value variant held by a Cell.
type CellKind int

const (
	CellEmpty CellKind = iota
	CellNumber
	CellText
)

// Cell is one spreadsheet cell as a tagged value. Number is only valid when
// Kind is CellNumber; Text holds the trimmed source text for both number and
// text cells.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Grid is a rectangular, untyped view of one sheet. Every row is padded to
// the widest row of the sheet so that "last column" addressing behaves the
// same for ragged source rows.
type Grid struct {
	cells [][]Cell
	width int
}

// NewGrid builds a Grid from raw string rows as returned by the workbook
// readers.
func NewGrid(rows [][]string) *Grid {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, width)
		for j := 0; j < width; j++ {
			if j < len(row) {
				cells[i][j] = classifyCell(row[j])
			}
		}
	}

	return &Grid{cells: cells, width: width}
}

// classifyCell trims the raw text and tags it as empty, number or text.
func classifyCell(raw string) Cell {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Cell{Kind: CellEmpty}
	}

	// Thousands separators appear in numeric columns of some source files.
	numeric := strings.ReplaceAll(text, ",", "")
	if f, err := strconv.ParseFloat(numeric, 64); err == nil {
		return Cell{Kind: CellNumber, Text: text, Number: f}
	}

	return Cell{Kind: CellText, Text: text}
}

// Rows returns the number of rows in the grid.
func (g *Grid) Rows() int {
	return len(g.cells)
}

// Width returns the padded column count.
func (g *Grid) Width() int {
	return g.width
}

// Cell returns the cell at (row, col), or an empty cell when the position is
// outside the grid.
func (g *Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= g.width {
		return Cell{Kind: CellEmpty}
	}
	return g.cells[row][col]
}

// Text returns the trimmed text of the cell at (row, col).
func (g *Grid) Text(row, col int) string {
	return g.Cell(row, col).Text
}

// RowText concatenates all cell texts of a row, separated by single spaces.
func (g *Grid) RowText(row int) string {
	if row < 0 || row >= len(g.cells) {
		return ""
	}
	parts := make([]string, 0, g.width)
	for _, c := range g.cells[row] {
		if c.Kind != CellEmpty {
			parts = append(parts, c.Text)
		}
	}
	return strings.Join(parts, " ")
}
