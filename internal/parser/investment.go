package parser

import (
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// Value columns of investment sheets, relative to the WILAYAH/SEKTOR column.
const (
	invOffJumlah = 1
	invOffProyek = 2
	invOffTKI    = 3
	invOffTKA    = 4
)

var investmentSkipKeywords = []string{"JUMLAH", "TOTAL", "GRAND", "NO"}

// locateInvestmentHeader finds the header row of a PMA/PMDN investment
// sheet. The anchor is a row holding both a bare "NO" cell and a
// WILAYAH/SEKTOR cell; a title row mentioning only WILAYAH does not qualify.
func locateInvestmentHeader(g *Grid) (headerRow, nameCol int, ok bool) {
	limit := g.Rows()
	if limit > classifyScanLimit {
		limit = classifyScanLimit
	}

	for row := 0; row < limit; row++ {
		hasNo := false
		nameCol = -1
		for col := 0; col < g.Width(); col++ {
			text := strings.ToUpper(g.Text(row, col))
			if text == "NO" {
				hasNo = true
			}
			if nameCol < 0 && (strings.Contains(text, "WILAYAH") || strings.Contains(text, "SEKTOR")) {
				nameCol = col
			}
		}
		if hasNo && nameCol >= 0 {
			return row, nameCol, true
		}
	}

	return 0, 0, false
}

// ParseInvestmentSheet extracts per-wilayah or per-sektor investment records
// from a PMA/PMDN sheet. Data starts two rows below the header because the
// "(Rp.)" sub-header sits between the header and the first record.
func ParseInvestmentSheet(g *Grid) []model.InvestmentRecord {
	headerRow, nameCol, ok := locateInvestmentHeader(g)
	if !ok {
		return nil
	}

	var records []model.InvestmentRecord
	for row := headerRow + 2; row < g.Rows(); row++ {
		name := g.Text(row, nameCol)
		if name == "" || containsAny(strings.ToUpper(name), investmentSkipKeywords) {
			continue
		}

		jumlah := ToFloat(g.Cell(row, nameCol+invOffJumlah))
		proyek := ToInt(g.Cell(row, nameCol+invOffProyek))
		if jumlah <= 0 && proyek <= 0 {
			continue
		}

		records = append(records, model.InvestmentRecord{
			Name:     name,
			JumlahRp: jumlah,
			Proyek:   proyek,
			TKI:      ToInt(g.Cell(row, nameCol+invOffTKI)),
			TKA:      ToInt(g.Cell(row, nameCol+invOffTKA)),
		})
	}

	return records
}

// Summary sheet columns, relative to the PERIODE column holding "TW n".
const (
	sumOffPMA    = 1
	sumOffPMDN   = 2
	sumOffTotal  = 3
	sumOffPct    = 4
	sumOffProyek = 5
	sumOffTKI    = 6
	sumOffTKA    = 7
)

// ParseQuarterSummarySheet extracts the per-Triwulan rows of a REALISASI
// INVESTASI summary sheet, including the annual target when present.
func ParseQuarterSummarySheet(g *Grid, year int) map[string]model.QuarterSummary {
	results := make(map[string]model.QuarterSummary)

	// The annual target usually sits in column 1 of a row labeled TARGET
	// near the top of the sheet.
	targetRp := 0.0
	limit := g.Rows()
	if limit > 10 {
		limit = 10
	}
	for row := 0; row < limit; row++ {
		for col := 0; col < g.Width(); col++ {
			if strings.Contains(strings.ToUpper(g.Text(row, col)), "TARGET") {
				targetRp = ToFloat(g.Cell(row, 1))
				break
			}
		}
	}

	for row := 0; row < g.Rows(); row++ {
		for _, tw := range model.QuarterOrder {
			periodeCol := -1
			for col := 0; col < g.Width(); col++ {
				if strings.EqualFold(g.Text(row, col), tw) {
					periodeCol = col
					break
				}
			}
			if periodeCol < 0 {
				continue
			}

			pmaRp := ToFloat(g.Cell(row, periodeCol+sumOffPMA))
			pmdnRp := ToFloat(g.Cell(row, periodeCol+sumOffPMDN))
			proyek := ToInt(g.Cell(row, periodeCol+sumOffProyek))
			if pmaRp <= 0 && pmdnRp <= 0 && proyek <= 0 {
				break
			}

			totalRp := ToFloat(g.Cell(row, periodeCol+sumOffTotal))
			if totalRp <= 0 {
				totalRp = pmaRp + pmdnRp
			}

			results[tw] = model.QuarterSummary{
				Triwulan:   tw,
				Year:       year,
				PMARp:      pmaRp,
				PMDNRp:     pmdnRp,
				TotalRp:    totalRp,
				Proyek:     proyek,
				TKI:        ToInt(g.Cell(row, periodeCol+sumOffTKI)),
				TKA:        ToInt(g.Cell(row, periodeCol+sumOffTKA)),
				TargetRp:   targetRp,
				Percentage: ToFloat(g.Cell(row, periodeCol+sumOffPct)),
			}
			break
		}
	}

	return results
}
