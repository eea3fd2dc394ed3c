package reference

import (
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/parser"
)

// headerScanLimit bounds how deep the header row is searched. Export files
// sometimes carry a title block above the real header.
const headerScanLimit = 10

// findHeaderRow locates the row whose cells contain the anchor pattern, case
// insensitively. Returns -1 when no row qualifies.
func findHeaderRow(g *parser.Grid, anchor string) int {
	limit := g.Rows()
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for row := 0; row < limit; row++ {
		for col := 0; col < g.Width(); col++ {
			if strings.Contains(strings.ToLower(g.Text(row, col)), anchor) {
				return row
			}
		}
	}
	return -1
}

// findColumn returns the first column of the header row matching any of the
// patterns, in pattern priority order. Returns -1 when none match.
func findColumn(g *parser.Grid, headerRow int, patterns ...string) int {
	for _, pattern := range patterns {
		for col := 0; col < g.Width(); col++ {
			if strings.Contains(strings.ToLower(g.Text(headerRow, col)), pattern) {
				return col
			}
		}
	}
	return -1
}
