package aggregator

import (
	"sort"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// topLocationCount bounds the highlighted-locations list of summary stats.
const topLocationCount = 5

// Share is one slice of a distribution, with its percentage of the whole.
type Share struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Stats are the headline numbers derived from a period report.
type Stats struct {
	TotalNIB     int     `json:"totalNib"`
	TopLocations []Share `json:"topLocations"`
	PMShares     []Share `json:"pmShares"`    // PMA vs PMDN
	ScaleShares  []Share `json:"scaleShares"` // UMK vs Non-UMK
}

// Summarize computes the headline stats of a period report. Percentages are
// against the report total; they do not add to 100 when part of the total
// lacks a breakdown.
func Summarize(report *model.PeriodReport) *Stats {
	stats := &Stats{TotalNIB: report.TotalNIB}

	locations := make([]Share, 0, len(report.ByLocation))
	for name, agg := range report.ByLocation {
		locations = append(locations, Share{
			Label:      name,
			Count:      agg.GrandTotal,
			Percentage: percentOf(agg.GrandTotal, report.TotalNIB),
		})
	}
	sort.Slice(locations, func(i, j int) bool {
		if locations[i].Count != locations[j].Count {
			return locations[i].Count > locations[j].Count
		}
		return locations[i].Label < locations[j].Label
	})
	if len(locations) > topLocationCount {
		locations = locations[:topLocationCount]
	}
	stats.TopLocations = locations

	stats.PMShares = []Share{
		{Label: "PMA", Count: report.TotalPMA, Percentage: percentOf(report.TotalPMA, report.TotalNIB)},
		{Label: "PMDN", Count: report.TotalPMDN, Percentage: percentOf(report.TotalPMDN, report.TotalNIB)},
	}
	stats.ScaleShares = []Share{
		{Label: "UMK", Count: report.TotalUMK, Percentage: percentOf(report.TotalUMK, report.TotalNIB)},
		{Label: "Non-UMK", Count: report.TotalNonUMK, Percentage: percentOf(report.TotalNonUMK, report.TotalNIB)},
	}

	return stats
}

func percentOf(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
