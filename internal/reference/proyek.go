package reference

import (
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/parser"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/workbook"
)

// loadProyek sums per-month investment figures from a raw project export.
// Every row is one project record and all rows count; a company reporting in
// two months contributes to both.
func (l *Loader) loadProyek(wb *workbook.Workbook, year int) *model.ProyekReference {
	ref := &model.ProyekReference{
		Year:              year,
		MonthlyInvestment: make(map[string]float64),
		MonthlyPMA:        make(map[string]float64),
		MonthlyPMDN:       make(map[string]float64),
		MonthlyTKI:        make(map[string]int),
		MonthlyTKA:        make(map[string]int),
		MonthlyProjects:   make(map[string]int),
		MonthlyByWilayah:  make(map[string]map[string]float64),
	}

	for _, sheet := range wb.SheetNames() {
		g, _ := wb.Grid(sheet)
		headerRow := findHeaderRow(g, "investasi")
		if headerRow < 0 {
			headerRow = findHeaderRow(g, "proyek")
		}
		if headerRow < 0 {
			l.log.Debug().Str("file", wb.Filename).Str("sheet", sheet).
				Msg("no investment header, sheet skipped")
			continue
		}

		amountCol := findColumn(g, headerRow, "investasi", "jumlah")
		tkiCol := findColumn(g, headerRow, "tki")
		tkaCol := findColumn(g, headerRow, "tka")
		pmCol := findColumn(g, headerRow, "penanaman", "status")
		wilayahCol := findColumn(g, headerRow, "kab", "kota", "wilayah")
		dateCol := findColumn(g, headerRow, "tanggal", "tgl", "periode")

		for row := headerRow + 1; row < g.Rows(); row++ {
			amount := parser.ToFloat(g.Cell(row, amountCol))
			wilayah := strings.TrimSpace(g.Text(row, wilayahCol))
			if amount == 0 && wilayah == "" {
				continue
			}

			month := DefaultBucketMonth
			if dateCol >= 0 {
				month = MonthOfCell(g.Cell(row, dateCol))
			}

			ref.MonthlyInvestment[month] += amount
			ref.MonthlyProjects[month]++
			ref.MonthlyTKI[month] += parser.ToInt(g.Cell(row, tkiCol))
			ref.MonthlyTKA[month] += parser.ToInt(g.Cell(row, tkaCol))

			switch normalizePM(g.Text(row, pmCol)) {
			case "PMA":
				ref.MonthlyPMA[month] += amount
			case "PMDN":
				ref.MonthlyPMDN[month] += amount
			}

			if wilayah != "" {
				if ref.MonthlyByWilayah[month] == nil {
					ref.MonthlyByWilayah[month] = make(map[string]float64)
				}
				ref.MonthlyByWilayah[month][wilayah] += amount
			}
		}
	}

	return ref
}
