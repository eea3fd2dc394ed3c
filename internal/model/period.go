package model

// PeriodType identifies the reporting window of a PeriodReport.
type PeriodType string

const (
	PeriodTriwulan PeriodType = "Triwulan"
	PeriodSemester PeriodType = "Semester"
	PeriodTahunan  PeriodType = "Tahunan"
)

// AggregatedNIB is the running per-location aggregate over a period.
type AggregatedNIB struct {
	KabupatenKota      string         `json:"kabupatenKota"`
	PerMonth           map[string]int `json:"perMonth"` // month -> total
	PMATotal           int            `json:"pmaTotal"`
	PMDNTotal          int            `json:"pmdnTotal"`
	UsahaMikroTotal    int            `json:"usahaMikroTotal"`
	UsahaKecilTotal    int            `json:"usahaKecilTotal"`
	UsahaMenengahTotal int            `json:"usahaMenengahTotal"`
	UsahaBesarTotal    int            `json:"usahaBesarTotal"`
	GrandTotal         int            `json:"grandTotal"`
}

// UMKTotal is the aggregated micro + small bucket.
func (a AggregatedNIB) UMKTotal() int {
	return a.UsahaMikroTotal + a.UsahaKecilTotal
}

// NonUMKTotal is the aggregated medium + large bucket.
func (a AggregatedNIB) NonUMKTotal() int {
	return a.UsahaMenengahTotal + a.UsahaBesarTotal
}

// PeriodReport is a fully aggregated report for one period. It is built
// fresh on every aggregation request and never mutated afterwards.
type PeriodReport struct {
	PeriodType     PeriodType `json:"periodType"`
	PeriodName     string     `json:"periodName"`
	Year           int        `json:"year"`
	MonthsIncluded []string   `json:"monthsIncluded"`

	ByLocation map[string]*AggregatedNIB `json:"byLocation"`

	TotalNIB    int `json:"totalNib"`
	TotalPMA    int `json:"totalPma"`
	TotalPMDN   int `json:"totalPmdn"`
	TotalUMK    int `json:"totalUmk"`
	TotalNonUMK int `json:"totalNonUmk"`

	MonthlyTotals map[string]int `json:"monthlyTotals"`

	// Q-o-Q comparison, only set when the previous quarter has data.
	PrevPeriodTotal  *int     `json:"prevPeriodTotal,omitempty"`
	ChangePercentage *float64 `json:"changePercentage,omitempty"`
}
