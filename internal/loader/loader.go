// Package loader orchestrates workbook-level extraction: which sheets of an
// uploaded file hold which month, and which parser applies to each.
package loader

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/parser"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/workbook"
)

// nibSheetNames are tried in order when locating the registration sheet of a
// single-month file. Observed files use all four spellings.
var nibSheetNames = []string{"NIB", "SKALA NIB", "SKALA", "DATA NIB"}

// Loader extracts canonical month data from operational workbooks.
type Loader struct {
	log zerolog.Logger

	mu          sync.RWMutex
	defaultYear int
}

// New returns a Loader logging through the given logger. defaultYear applies
// to files whose names carry no year; zero means the current year.
func New(log zerolog.Logger, defaultYear int) *Loader {
	return &Loader{
		log:         log.With().Str("component", "loader").Logger(),
		defaultYear: defaultYear,
	}
}

// SetDefaultYear changes the fallback year for files without one in the name.
func (l *Loader) SetDefaultYear(year int) {
	l.mu.Lock()
	l.defaultYear = year
	l.mu.Unlock()
}

// DefaultYear returns the configured fallback year, zero meaning the current
// year.
func (l *Loader) DefaultYear() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.defaultYear
}

// Load extracts every month carried by a workbook, dispatching on the file
// dialect. Single-month files yield one entry, quarterly aggregates up to
// three.
func (l *Loader) Load(wb *workbook.Workbook) ([]model.MonthData, error) {
	l.logSkipped(wb)

	if parser.DetectDialect(wb.Filename, wb.SheetNames()) == parser.DialectQuarterlyAggregate {
		return l.loadQuarterly(wb)
	}
	month, err := l.loadMonthly(wb)
	if err != nil {
		return nil, err
	}
	return []model.MonthData{month}, nil
}

// loadMonthly handles single-month operational files. The registration sheet
// is found by name first; when no candidate name matches, the first sheet
// that yields records wins.
func (l *Loader) loadMonthly(wb *workbook.Workbook) (model.MonthData, error) {
	month, ok := parser.MonthInText(wb.Filename)
	if !ok {
		for _, sheet := range wb.SheetNames() {
			if month, ok = parser.MonthInText(sheet); ok {
				break
			}
		}
	}
	if !ok {
		return model.MonthData{}, fmt.Errorf("%s: cannot determine the data month", wb.Filename)
	}
	year := l.yearOf(wb.Filename)

	for _, want := range nibSheetNames {
		for _, sheet := range wb.SheetNames() {
			if !strings.EqualFold(strings.TrimSpace(sheet), want) {
				continue
			}
			g, _ := wb.Grid(sheet)
			if records := parser.ParseNIBSheet(g); len(records) > 0 {
				return model.MonthData{Month: month, Year: year, NIB: records}, nil
			}
		}
	}

	for _, sheet := range wb.SheetNames() {
		g, _ := wb.Grid(sheet)
		if records := parser.ParseNIBSheet(g); len(records) > 0 {
			l.log.Debug().Str("file", wb.Filename).Str("sheet", sheet).
				Msg("registration sheet found by content scan")
			return model.MonthData{Month: month, Year: year, NIB: records}, nil
		}
	}

	return model.MonthData{}, fmt.Errorf("%s: no sheet yields registration records", wb.Filename)
}

// loadQuarterly handles quarterly aggregate workbooks, whose sheets are named
// per month. For each month the licensing sheet is preferred; months carrying
// only a risk/sector sheet fall back to its totals, losing the PMA/PMDN
// split.
func (l *Loader) loadQuarterly(wb *workbook.Workbook) ([]model.MonthData, error) {
	year := l.yearOf(wb.Filename)

	type monthSheets struct {
		licensing  [][]model.NIBRecord
		riskSector [][]model.RiskSectorRecord
	}
	byMonth := make(map[string]*monthSheets)

	for _, sheet := range wb.SheetNames() {
		month, ok := parser.MonthInText(sheet)
		if !ok {
			continue
		}
		g, _ := wb.Grid(sheet)

		ms := byMonth[month]
		if ms == nil {
			ms = &monthSheets{}
			byMonth[month] = ms
		}

		// Content wins over the sheet name: files exist where a sheet
		// named "Perizinan Berusaha Mei" holds risk data.
		content := parser.ClassifySheet(g)
		if content == parser.ContentUnknown {
			upper := strings.ToUpper(sheet)
			switch {
			case strings.Contains(upper, "RESIKO"), strings.Contains(upper, "RISIKO"), strings.Contains(upper, "SEKTOR"):
				content = parser.ContentRiskSector
			case strings.Contains(upper, "PERIZINAN"), strings.Contains(upper, "PB"):
				content = parser.ContentLicensing
			}
		}

		switch content {
		case parser.ContentLicensing:
			if records := parser.ParseLicensingSheet(g); len(records) > 0 {
				ms.licensing = append(ms.licensing, records)
			}
		case parser.ContentRiskSector:
			if records := parser.ParseRiskSectorSheet(g); len(records) > 0 {
				ms.riskSector = append(ms.riskSector, records)
			}
		default:
			l.log.Warn().Str("file", wb.Filename).Str("sheet", sheet).
				Msg("sheet content not recognized, skipped")
		}
	}

	var months []model.MonthData
	for _, month := range model.MonthNames {
		ms := byMonth[month]
		if ms == nil {
			continue
		}

		var records []model.NIBRecord
		if len(ms.licensing) > 0 {
			for _, batch := range ms.licensing {
				records = model.MergeNIBRecords(records, batch)
			}
		} else {
			// Risk totals are the only number available for this month;
			// the PMA/PMDN breakdown stays zero.
			for _, batch := range ms.riskSector {
				converted := make([]model.NIBRecord, 0, len(batch))
				for _, r := range batch {
					converted = append(converted, r.ToNIBRecord())
				}
				records = model.MergeNIBRecords(records, converted)
			}
			if len(records) > 0 {
				l.log.Info().Str("file", wb.Filename).Str("month", month).
					Msg("no licensing sheet, totals taken from risk data")
			}
		}

		if len(records) == 0 {
			continue
		}
		months = append(months, model.MonthData{Month: month, Year: year, NIB: records})
	}

	if len(months) == 0 {
		return nil, fmt.Errorf("%s: no month sheet yields records", wb.Filename)
	}
	return months, nil
}

// LoadRiskSector extracts the risk/sector records of every month-named sheet
// classified as risk data, keyed by month. Used for the risk distribution of
// quarterly reports.
func (l *Loader) LoadRiskSector(wb *workbook.Workbook) map[string][]model.RiskSectorRecord {
	results := make(map[string][]model.RiskSectorRecord)
	for _, sheet := range wb.SheetNames() {
		month, ok := parser.MonthInText(sheet)
		if !ok {
			continue
		}
		g, _ := wb.Grid(sheet)
		if parser.ClassifySheet(g) != parser.ContentRiskSector {
			continue
		}
		if records := parser.ParseRiskSectorSheet(g); len(records) > 0 {
			results[month] = append(results[month], records...)
		}
	}
	return results
}

func (l *Loader) yearOf(filename string) int {
	if year := parser.YearFromFilename(filename); year > 0 {
		return year
	}
	if year := l.DefaultYear(); year > 0 {
		l.log.Debug().Str("file", filename).Int("year", year).
			Msg("filename carries no year, using configured default")
		return year
	}
	year := time.Now().Year()
	l.log.Warn().Str("file", filename).Int("assumed_year", year).
		Msg("filename carries no year")
	return year
}

func (l *Loader) logSkipped(wb *workbook.Workbook) {
	for _, s := range wb.Skipped {
		l.log.Warn().Str("file", wb.Filename).Str("sheet", s.Sheet).
			Err(s.Err).Msg("unreadable sheet skipped")
	}
}
