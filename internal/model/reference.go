package model

// ReferenceType identifies which reference file family a workbook belongs to.
type ReferenceType string

const (
	ReferenceNIB     ReferenceType = "NIB"
	ReferencePBOSS   ReferenceType = "PB_OSS"
	ReferenceProyek  ReferenceType = "PROYEK"
	ReferenceUnknown ReferenceType = "UNKNOWN"
)

// NIBReference holds per-month unique-NIB counts extracted from a raw NIB
// reference file. The same NIB appearing in two months counts twice: each
// issue is a distinct permit event.
type NIBReference struct {
	Year          int                       `json:"year"`
	TotalNIB      int                       `json:"totalNib"`
	MonthlyTotals map[string]int            `json:"monthlyTotals"`
	ByKabKota     map[string]map[string]int `json:"byKabKota"`    // kab -> month -> count
	ByPMStatus    map[string]map[string]int `json:"byPmStatus"`   // PMA/PMDN -> month -> count
	BySkalaUsaha  map[string]map[string]int `json:"bySkalaUsaha"` // scale -> month -> count
	// Cross-tabulations: kab -> month -> category -> count.
	KabPMMonthly    map[string]map[string]map[string]int `json:"kabPmMonthly"`
	KabSkalaMonthly map[string]map[string]map[string]int `json:"kabSkalaMonthly"`
}

// PeriodTotal sums the monthly unique-NIB counts over the given months.
func (n *NIBReference) PeriodTotal(months []string) int {
	total := 0
	for _, m := range months {
		total += n.MonthlyTotals[m]
	}
	return total
}

// PeriodByKabKota sums per-location counts over the given months.
func (n *NIBReference) PeriodByKabKota(months []string) map[string]int {
	return sumNested(n.ByKabKota, months)
}

// PeriodByPMStatus sums per-PM-status counts over the given months.
func (n *NIBReference) PeriodByPMStatus(months []string) map[string]int {
	return sumNested(n.ByPMStatus, months)
}

// PeriodBySkalaUsaha sums per-scale counts over the given months.
func (n *NIBReference) PeriodBySkalaUsaha(months []string) map[string]int {
	return sumNested(n.BySkalaUsaha, months)
}

// PBOSSReference holds permit counts by risk level and sector per month.
type PBOSSReference struct {
	Year          int                       `json:"year"`
	MonthlyRisk   map[string]map[string]int `json:"monthlyRisk"`   // month -> risk -> count
	MonthlySector map[string]map[string]int `json:"monthlySector"` // month -> sector -> count
	TotalPermits  int                       `json:"totalPermits"`
}

// PeriodRisk folds the per-month risk distributions over the given months.
func (p *PBOSSReference) PeriodRisk(months []string) map[string]int {
	return foldMonthly(p.MonthlyRisk, months)
}

// PeriodSector folds the per-month sector distributions over the given months.
func (p *PBOSSReference) PeriodSector(months []string) map[string]int {
	return foldMonthly(p.MonthlySector, months)
}

// ProyekReference holds per-month investment sums from a raw project file.
// Every project row counts; there is no deduplication.
type ProyekReference struct {
	Year              int                           `json:"year"`
	MonthlyInvestment map[string]float64            `json:"monthlyInvestment"`
	MonthlyPMA        map[string]float64            `json:"monthlyPma"`
	MonthlyPMDN       map[string]float64            `json:"monthlyPmdn"`
	MonthlyTKI        map[string]int                `json:"monthlyTki"`
	MonthlyTKA        map[string]int                `json:"monthlyTka"`
	MonthlyProjects   map[string]int                `json:"monthlyProjects"`
	MonthlyByWilayah  map[string]map[string]float64 `json:"monthlyByWilayah"` // month -> wilayah -> value
}

// PeriodInvestment sums total realized investment over the given months.
func (p *ProyekReference) PeriodInvestment(months []string) float64 {
	return sumFloat(p.MonthlyInvestment, months)
}

// PeriodPMA sums PMA investment over the given months.
func (p *ProyekReference) PeriodPMA(months []string) float64 {
	return sumFloat(p.MonthlyPMA, months)
}

// PeriodPMDN sums PMDN investment over the given months.
func (p *ProyekReference) PeriodPMDN(months []string) float64 {
	return sumFloat(p.MonthlyPMDN, months)
}

// PeriodTKI sums local worker counts over the given months.
func (p *ProyekReference) PeriodTKI(months []string) int {
	return sumInt(p.MonthlyTKI, months)
}

// PeriodTKA sums foreign worker counts over the given months.
func (p *ProyekReference) PeriodTKA(months []string) int {
	return sumInt(p.MonthlyTKA, months)
}

// PeriodProjects sums project counts over the given months.
func (p *ProyekReference) PeriodProjects(months []string) int {
	return sumInt(p.MonthlyProjects, months)
}

// PeriodByWilayah sums per-wilayah investment over the given months.
func (p *ProyekReference) PeriodByWilayah(months []string) map[string]float64 {
	result := make(map[string]float64)
	for _, m := range months {
		for wilayah, value := range p.MonthlyByWilayah[m] {
			result[wilayah] += value
		}
	}
	return result
}

func sumNested(data map[string]map[string]int, months []string) map[string]int {
	result := make(map[string]int, len(data))
	for key, byMonth := range data {
		total := 0
		for _, m := range months {
			total += byMonth[m]
		}
		result[key] = total
	}
	return result
}

func foldMonthly(data map[string]map[string]int, months []string) map[string]int {
	result := make(map[string]int)
	for _, m := range months {
		for key, count := range data[m] {
			result[key] += count
		}
	}
	return result
}

func sumInt(data map[string]int, months []string) int {
	total := 0
	for _, m := range months {
		total += data[m]
	}
	return total
}

func sumFloat(data map[string]float64, months []string) float64 {
	total := 0.0
	for _, m := range months {
		total += data[m]
	}
	return total
}
