package parser

import "strings"

// TableLocation describes where the data rows of a located table begin and
// which column holds the Kabupaten/Kota name.
type TableLocation struct {
	DataRow int
	NameCol int
}

// headerKeywords identify the Kabupaten/Kota header cell across the known
// file layouts.
var headerKeywords = []string{"KABUPATEN", "KAB/KOTA", "KAB. / KOTA"}

// locationPrefixes identify a district/city name cell when no header row
// exists at all.
var locationPrefixes = []string{"Kab.", "Kota", "KAB.", "KOTA"}

// locateScanLimit bounds the header search window.
const locateScanLimit = 50

// LocateTable finds the first data row and the name column of a sheet.
//
// Strategy 1 looks for a Kabupaten/Kota header cell in columns 0 and 1 of
// the first 50 rows; data then starts on the next row. Strategy 2 falls back
// to the first cell that starts with a known location prefix and treats that
// row itself as the first data row. The false return means "no extractable
// table here", which callers must treat as a normal outcome.
func LocateTable(g *Grid) (TableLocation, bool) {
	limit := g.Rows()
	if limit > locateScanLimit {
		limit = locateScanLimit
	}

	for row := 0; row < limit; row++ {
		for _, col := range []int{0, 1} {
			cell := strings.ToUpper(g.Text(row, col))
			for _, kw := range headerKeywords {
				if strings.Contains(cell, kw) {
					return TableLocation{DataRow: row + 1, NameCol: col}, true
				}
			}
		}
	}

	for row := 0; row < g.Rows(); row++ {
		for _, col := range []int{0, 1} {
			cell := g.Text(row, col)
			for _, prefix := range locationPrefixes {
				if strings.HasPrefix(cell, prefix) {
					return TableLocation{DataRow: row, NameCol: col}, true
				}
			}
		}
	}

	return TableLocation{}, false
}
