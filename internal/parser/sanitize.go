package parser

import (
	"strconv"
	"strings"
)

// ToInt converts a cell to an integer. Blank cells, dashes and stray text in
// numeric columns are routine in the source files, so every conversion
// failure yields 0 instead of an error.
func ToInt(c Cell) int {
	return int(ToFloat(c))
}

// ToFloat converts a cell to a float64, returning 0 on any failure.
func ToFloat(c Cell) float64 {
	switch c.Kind {
	case CellNumber:
		return c.Number
	case CellText:
		return parseFloat(c.Text)
	default:
		return 0
	}
}

// parseFloat is the permissive string conversion used for cells that were
// not already tagged numeric: thousands separators and percent signs are
// stripped before parsing.
func parseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSuffix(s, "%")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
