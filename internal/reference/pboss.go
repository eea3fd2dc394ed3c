package reference

import (
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/workbook"
)

// riskCodeNames expands the short risk codes some exports use. Full spellings
// pass through unchanged.
var riskCodeNames = map[string]string{
	"R":  "Rendah",
	"MR": "Menengah Rendah",
	"MT": "Menengah Tinggi",
	"T":  "Tinggi",
}

func normalizeRisk(value string) string {
	value = strings.TrimSpace(value)
	if expanded, ok := riskCodeNames[strings.ToUpper(value)]; ok {
		return expanded
	}
	return value
}

// loadPBOSS counts permit rows by risk level and sector per month. Every row
// is one permit; there is no deduplication here.
func (l *Loader) loadPBOSS(wb *workbook.Workbook, year int) *model.PBOSSReference {
	ref := &model.PBOSSReference{
		Year:          year,
		MonthlyRisk:   make(map[string]map[string]int),
		MonthlySector: make(map[string]map[string]int),
	}

	for _, sheet := range wb.SheetNames() {
		g, _ := wb.Grid(sheet)
		headerRow := findHeaderRow(g, "risiko")
		if headerRow < 0 {
			headerRow = findHeaderRow(g, "resiko")
		}
		if headerRow < 0 {
			headerRow = findHeaderRow(g, "sektor")
		}
		if headerRow < 0 {
			l.log.Debug().Str("file", wb.Filename).Str("sheet", sheet).
				Msg("no risk/sector header, sheet skipped")
			continue
		}

		riskCol := findColumn(g, headerRow, "risiko", "resiko")
		sectorCol := findColumn(g, headerRow, "sektor")
		dateCol := findColumn(g, headerRow, "tanggal", "tgl")

		for row := headerRow + 1; row < g.Rows(); row++ {
			risk := normalizeRisk(g.Text(row, riskCol))
			sector := strings.TrimSpace(g.Text(row, sectorCol))
			if risk == "" && sector == "" {
				continue
			}

			month := DefaultBucketMonth
			if dateCol >= 0 {
				month = MonthOfCell(g.Cell(row, dateCol))
			}

			if risk != "" {
				if ref.MonthlyRisk[month] == nil {
					ref.MonthlyRisk[month] = make(map[string]int)
				}
				ref.MonthlyRisk[month][risk]++
			}
			if sector != "" {
				if ref.MonthlySector[month] == nil {
					ref.MonthlySector[month] = make(map[string]int)
				}
				ref.MonthlySector[month][sector]++
			}
			ref.TotalPermits++
		}
	}

	return ref
}
