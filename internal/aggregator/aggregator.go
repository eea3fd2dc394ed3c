// Package aggregator folds loaded month data into period reports.
package aggregator

import (
	"fmt"
	"sort"
	"sync"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// Aggregator holds every loaded month, keyed "Month_Year", and answers
// period queries over them. Safe for concurrent use.
type Aggregator struct {
	mu     sync.RWMutex
	months map[string]model.MonthData
}

// New returns an empty Aggregator.
func New() *Aggregator {
	return &Aggregator{months: make(map[string]model.MonthData)}
}

// AddMonth stores a month, replacing any earlier load of the same month.
func (a *Aggregator) AddMonth(data model.MonthData) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.months[data.Key()] = data
}

// AddMonths stores a batch of months.
func (a *Aggregator) AddMonths(data []model.MonthData) {
	for _, m := range data {
		a.AddMonth(m)
	}
}

// Month returns one loaded month, if present.
func (a *Aggregator) Month(month string, year int) (model.MonthData, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	m, ok := a.months[model.MonthKey(month, year)]
	return m, ok
}

// LoadedKeys lists the loaded month keys in calendar order.
func (a *Aggregator) LoadedKeys() []string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	keys := make([]string, 0, len(a.months))
	for k := range a.months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		mi, mj := a.months[keys[i]], a.months[keys[j]]
		if mi.Year != mj.Year {
			return mi.Year < mj.Year
		}
		return model.MonthNumber(mi.Month) < model.MonthNumber(mj.Month)
	})
	return keys
}

// AggregateQuarter builds the report for one Triwulan, including the
// quarter-over-quarter comparison when the previous quarter has data.
func (a *Aggregator) AggregateQuarter(tw string, year int) (*model.PeriodReport, error) {
	months, ok := model.QuarterMonths[tw]
	if !ok {
		return nil, fmt.Errorf("unknown quarter %q", tw)
	}

	report := a.aggregate(model.PeriodTriwulan, tw, year, months)
	a.attachPreviousQuarter(report, tw, year)
	return report, nil
}

// AggregateSemester builds the report for Semester I or II.
func (a *Aggregator) AggregateSemester(semester string, year int) (*model.PeriodReport, error) {
	months, ok := model.SemesterMonths[semester]
	if !ok {
		return nil, fmt.Errorf("unknown semester %q", semester)
	}
	return a.aggregate(model.PeriodSemester, semester, year, months), nil
}

// AggregateYear builds the full-year report.
func (a *Aggregator) AggregateYear(year int) (*model.PeriodReport, error) {
	return a.aggregate(model.PeriodTahunan, fmt.Sprintf("Tahun %d", year), year, model.MonthNames), nil
}

// aggregate folds the loaded months of the period. Months without data are
// skipped, but MonthsIncluded always names the full period so consumers can
// tell a zero from a gap.
func (a *Aggregator) aggregate(ptype model.PeriodType, name string, year int, months []string) *model.PeriodReport {
	a.mu.RLock()
	defer a.mu.RUnlock()

	report := &model.PeriodReport{
		PeriodType:     ptype,
		PeriodName:     name,
		Year:           year,
		MonthsIncluded: append([]string(nil), months...),
		ByLocation:     make(map[string]*model.AggregatedNIB),
		MonthlyTotals:  make(map[string]int),
	}

	for _, month := range months {
		data, ok := a.months[model.MonthKey(month, year)]
		if !ok {
			continue
		}
		for _, rec := range data.NIB {
			agg := report.ByLocation[rec.KabupatenKota]
			if agg == nil {
				agg = &model.AggregatedNIB{
					KabupatenKota: rec.KabupatenKota,
					PerMonth:      make(map[string]int),
				}
				report.ByLocation[rec.KabupatenKota] = agg
			}
			agg.PerMonth[month] += rec.Total
			agg.PMATotal += rec.PMA
			agg.PMDNTotal += rec.PMDN
			agg.UsahaMikroTotal += rec.UsahaMikro
			agg.UsahaKecilTotal += rec.UsahaKecil
			agg.UsahaMenengahTotal += rec.UsahaMenengah
			agg.UsahaBesarTotal += rec.UsahaBesar
			agg.GrandTotal += rec.Total

			report.MonthlyTotals[month] += rec.Total
			report.TotalNIB += rec.Total
			report.TotalPMA += rec.PMA
			report.TotalPMDN += rec.PMDN
			report.TotalUMK += rec.UMK()
			report.TotalNonUMK += rec.NonUMK()
		}
	}

	return report
}

// attachPreviousQuarter computes the Q-o-Q comparison. TW I compares against
// the previous year's TW IV. The percentage stays nil when the previous
// quarter total is zero; a division there would fabricate growth.
func (a *Aggregator) attachPreviousQuarter(report *model.PeriodReport, tw string, year int) {
	prevTW, prevYear := PreviousQuarter(tw, year)
	prev := a.aggregate(model.PeriodTriwulan, prevTW, prevYear, model.QuarterMonths[prevTW])
	if prev.TotalNIB == 0 {
		return
	}

	total := prev.TotalNIB
	report.PrevPeriodTotal = &total
	change := float64(report.TotalNIB-total) / float64(total) * 100
	report.ChangePercentage = &change
}

// PreviousQuarter returns the quarter preceding the given one, wrapping
// TW I to the previous year's TW IV.
func PreviousQuarter(tw string, year int) (string, int) {
	for i, q := range model.QuarterOrder {
		if q == tw {
			if i == 0 {
				return "TW IV", year - 1
			}
			return model.QuarterOrder[i-1], year
		}
	}
	return "", year
}
