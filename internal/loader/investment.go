package loader

import (
	"fmt"
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/parser"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/workbook"
)

// InvestmentData is the extraction result of a REALISASI INVESTASI workbook.
type InvestmentData struct {
	Year      int                             `json:"year"`
	Quarters  []model.InvestmentReport        `json:"quarters"`
	Summaries map[string]model.QuarterSummary `json:"summaries"`
}

// LoadInvestment extracts per-quarter investment reports from a REALISASI
// INVESTASI workbook. Sheets are matched by name: a quarter marker plus
// PMA/PMDN and SEKTOR/WILAYAH decide where each table lands, and a NEGARA
// sheet feeds the per-country breakdown. Quarters without any data are
// dropped.
func (l *Loader) LoadInvestment(wb *workbook.Workbook) (*InvestmentData, error) {
	l.logSkipped(wb)

	year := l.yearOf(wb.Filename)
	reports := make(map[string]*model.InvestmentReport)
	report := func(tw string) *model.InvestmentReport {
		r := reports[tw]
		if r == nil {
			r = &model.InvestmentReport{Triwulan: tw, Year: year}
			reports[tw] = r
		}
		return r
	}

	summaries := make(map[string]model.QuarterSummary)
	for _, sheet := range wb.SheetNames() {
		upper := strings.ToUpper(sheet)
		g, _ := wb.Grid(sheet)

		if strings.Contains(upper, "REALISASI") {
			for tw, s := range parser.ParseQuarterSummarySheet(g, year) {
				summaries[tw] = s
			}
			continue
		}

		tw, ok := parser.QuarterInText(sheet)
		if !ok {
			continue
		}
		r := report(tw)

		switch {
		case strings.Contains(upper, "NEGARA"):
			r.ByCountry = append(r.ByCountry, parser.ParseInvestmentSheet(g)...)
		case strings.Contains(upper, "PMA") && strings.Contains(upper, "SEKTOR"):
			r.PMABySektor = append(r.PMABySektor, parser.ParseInvestmentSheet(g)...)
		case strings.Contains(upper, "PMA") && strings.Contains(upper, "WILAYAH"):
			r.PMAByWilayah = append(r.PMAByWilayah, parser.ParseInvestmentSheet(g)...)
		case strings.Contains(upper, "PMDN") && strings.Contains(upper, "SEKTOR"):
			r.PMDNBySektor = append(r.PMDNBySektor, parser.ParseInvestmentSheet(g)...)
		case strings.Contains(upper, "PMDN") && strings.Contains(upper, "WILAYAH"):
			r.PMDNByWilayah = append(r.PMDNByWilayah, parser.ParseInvestmentSheet(g)...)
		default:
			l.log.Debug().Str("file", wb.Filename).Str("sheet", sheet).
				Msg("quarter sheet without a PMA/PMDN marker, skipped")
		}
	}

	var quarters []model.InvestmentReport
	for _, tw := range model.QuarterOrder {
		r := reports[tw]
		if r == nil {
			continue
		}
		fillInvestmentTotals(r)
		if r.Empty() {
			continue
		}
		quarters = append(quarters, *r)
	}

	if len(quarters) == 0 && len(summaries) == 0 {
		return nil, fmt.Errorf("%s: no investment data found", wb.Filename)
	}
	return &InvestmentData{Year: year, Quarters: quarters, Summaries: summaries}, nil
}

// fillInvestmentTotals derives the quarter totals from the record lists. The
// sektor breakdown is authoritative when present; the wilayah sheets of some
// files only cover locations with activity and would undercount.
func fillInvestmentTotals(r *model.InvestmentReport) {
	pmaSrc := r.PMABySektor
	if len(pmaSrc) == 0 {
		pmaSrc = r.PMAByWilayah
	}
	r.PMATotal, r.PMAProyek, r.PMATKI, r.PMATKA = sumInvestment(pmaSrc)

	pmdnSrc := r.PMDNBySektor
	if len(pmdnSrc) == 0 {
		pmdnSrc = r.PMDNByWilayah
	}
	r.PMDNTotal, r.PMDNProyek, r.PMDNTKI, r.PMDNTKA = sumInvestment(pmdnSrc)
}

func sumInvestment(records []model.InvestmentRecord) (jumlah float64, proyek, tki, tka int) {
	for _, rec := range records {
		jumlah += rec.JumlahRp
		proyek += rec.Proyek
		tki += rec.TKI
		tka += rec.TKA
	}
	return jumlah, proyek, tki, tka
}
