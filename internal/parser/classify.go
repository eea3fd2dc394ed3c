package parser

import "strings"

// SheetContent is the result of content-based sheet classification.
type SheetContent string

const (
	ContentLicensing  SheetContent = "licensing"
	ContentRiskSector SheetContent = "risk_sector"
	ContentUnknown    SheetContent = "unknown"
)

// classifyScanLimit bounds how many rows are inspected for keywords.
const classifyScanLimit = 20

// ClassifySheet decides whether a sheet holds licensing (PMA/PMDN) or
// risk/sector data by inspecting cell contents instead of the sheet name.
// Sheet names lie in observed files: a sheet named "Perizinan Berusaha Mei"
// can contain risk data. Risk keywords are checked first because licensing
// vocabulary can appear in the header decoration of risk sheets.
func ClassifySheet(g *Grid) SheetContent {
	limit := g.Rows()
	if limit > classifyScanLimit {
		limit = classifyScanLimit
	}

	for row := 0; row < limit; row++ {
		text := strings.ToUpper(g.RowText(row))
		if strings.Contains(text, "RESIKO") || strings.Contains(text, "RISIKO") || strings.Contains(text, "SEKTOR") {
			return ContentRiskSector
		}
		if strings.Contains(text, "PMA") && strings.Contains(text, "PMDN") {
			return ContentLicensing
		}
	}

	return ContentUnknown
}
