package reference

import (
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/workbook"
)

// loadNIB counts distinct NIB numbers per month across every sheet of a raw
// NIB export. Deduplication is per month: a NIB issued in January and again
// in March is two permit events, not one.
func (l *Loader) loadNIB(wb *workbook.Workbook, year int) *model.NIBReference {
	ref := &model.NIBReference{
		Year:            year,
		MonthlyTotals:   make(map[string]int),
		ByKabKota:       make(map[string]map[string]int),
		ByPMStatus:      make(map[string]map[string]int),
		BySkalaUsaha:    make(map[string]map[string]int),
		KabPMMonthly:    make(map[string]map[string]map[string]int),
		KabSkalaMonthly: make(map[string]map[string]map[string]int),
	}

	seen := make(map[string]map[string]bool) // month -> nib -> seen

	for _, sheet := range wb.SheetNames() {
		g, _ := wb.Grid(sheet)
		headerRow := findHeaderRow(g, "nib")
		if headerRow < 0 {
			l.log.Debug().Str("file", wb.Filename).Str("sheet", sheet).
				Msg("no NIB header, sheet skipped")
			continue
		}

		nibCol := findColumn(g, headerRow, "nib")
		dateCol := findColumn(g, headerRow, "tanggal", "tgl")
		kabCol := findColumn(g, headerRow, "kab", "kota", "wilayah")
		pmCol := findColumn(g, headerRow, "penanaman", "status pm", "pma/pmdn")
		skalaCol := findColumn(g, headerRow, "skala")

		for row := headerRow + 1; row < g.Rows(); row++ {
			nib := strings.TrimSpace(g.Text(row, nibCol))
			if nib == "" {
				continue
			}

			month := DefaultBucketMonth
			if dateCol >= 0 {
				month = MonthOfCell(g.Cell(row, dateCol))
			}

			if seen[month] == nil {
				seen[month] = make(map[string]bool)
			}
			if seen[month][nib] {
				continue
			}
			seen[month][nib] = true

			ref.MonthlyTotals[month]++
			ref.TotalNIB++

			kab := cellCategory(g.Text(row, kabCol), "")
			pm := normalizePM(g.Text(row, pmCol))
			skala := cellCategory(g.Text(row, skalaCol), "")

			if kab != "" {
				bump(ref.ByKabKota, kab, month)
			}
			if pm != "" {
				bump(ref.ByPMStatus, pm, month)
			}
			if skala != "" {
				bump(ref.BySkalaUsaha, skala, month)
			}
			if kab != "" && pm != "" {
				bumpNested(ref.KabPMMonthly, kab, month, pm)
			}
			if kab != "" && skala != "" {
				bumpNested(ref.KabSkalaMonthly, kab, month, skala)
			}
		}
	}

	return ref
}

func normalizePM(value string) string {
	upper := strings.ToUpper(strings.TrimSpace(value))
	switch {
	case strings.Contains(upper, "PMA"):
		return "PMA"
	case strings.Contains(upper, "PMDN"):
		return "PMDN"
	}
	return ""
}

func cellCategory(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}

func bump(data map[string]map[string]int, key, month string) {
	if data[key] == nil {
		data[key] = make(map[string]int)
	}
	data[key][month]++
}

func bumpNested(data map[string]map[string]map[string]int, key, month, category string) {
	if data[key] == nil {
		data[key] = make(map[string]map[string]int)
	}
	if data[key][month] == nil {
		data[key][month] = make(map[string]int)
	}
	data[key][month][category]++
}
