package aggregator

import (
	"sort"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// TableRow is one location row of the tabular projection.
type TableRow struct {
	KabupatenKota string         `json:"kabupatenKota"`
	Monthly       map[string]int `json:"monthly"`
	PMA           int            `json:"pma"`
	PMDN          int            `json:"pmdn"`
	UMK           int            `json:"umk"`
	NonUMK        int            `json:"nonUmk"`
	Total         int            `json:"total"`
}

// Table is a period report flattened for table, chart and export consumers.
type Table struct {
	PeriodName string         `json:"periodName"`
	Year       int            `json:"year"`
	Months     []string       `json:"months"`
	Rows       []TableRow     `json:"rows"`
	Totals     map[string]int `json:"totals"` // month -> total, plus the grand total
	GrandTotal int            `json:"grandTotal"`
}

// ToTable flattens a period report into rows sorted by total descending,
// with locations tied on total ordered by name for stable output.
func ToTable(report *model.PeriodReport) *Table {
	table := &Table{
		PeriodName: report.PeriodName,
		Year:       report.Year,
		Months:     append([]string(nil), report.MonthsIncluded...),
		Totals:     make(map[string]int, len(report.MonthlyTotals)),
		GrandTotal: report.TotalNIB,
	}
	for month, total := range report.MonthlyTotals {
		table.Totals[month] = total
	}

	for _, agg := range report.ByLocation {
		monthly := make(map[string]int, len(report.MonthsIncluded))
		for _, month := range report.MonthsIncluded {
			monthly[month] = agg.PerMonth[month]
		}
		table.Rows = append(table.Rows, TableRow{
			KabupatenKota: agg.KabupatenKota,
			Monthly:       monthly,
			PMA:           agg.PMATotal,
			PMDN:          agg.PMDNTotal,
			UMK:           agg.UMKTotal(),
			NonUMK:        agg.NonUMKTotal(),
			Total:         agg.GrandTotal,
		})
	}

	sort.Slice(table.Rows, func(i, j int) bool {
		if table.Rows[i].Total != table.Rows[j].Total {
			return table.Rows[i].Total > table.Rows[j].Total
		}
		return table.Rows[i].KabupatenKota < table.Rows[j].KabupatenKota
	})

	return table
}
