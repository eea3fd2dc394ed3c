package model

// InvestmentRecord holds realized investment for one Wilayah, Sektor or
// country within a quarter. Monetary values stay in float64: the source
// figures are already rounded Rupiah and this is a reporting system, not a
// settlement one.
type InvestmentRecord struct {
	Name     string  `json:"name"`
	JumlahRp float64 `json:"jumlahRp"`
	Proyek   int     `json:"proyek"`
	TKI      int     `json:"tki"`
	TKA      int     `json:"tka"`
}

// TotalTenagaKerja is the total labor absorption.
func (r InvestmentRecord) TotalTenagaKerja() int {
	return r.TKI + r.TKA
}

// QuarterSummary is one row of the REALISASI INVESTASI summary sheet.
type QuarterSummary struct {
	Triwulan   string  `json:"triwulan"`
	Year       int     `json:"year"`
	PMARp      float64 `json:"pmaRp"`
	PMDNRp     float64 `json:"pmdnRp"`
	TotalRp    float64 `json:"totalRp"`
	Proyek     int     `json:"proyek"`
	TKI        int     `json:"tki"`
	TKA        int     `json:"tka"`
	TargetRp   float64 `json:"targetRp"`
	Percentage float64 `json:"percentage"`
}

// InvestmentReport collects realized investment for one Triwulan.
type InvestmentReport struct {
	Triwulan string `json:"triwulan"`
	Year     int    `json:"year"`

	PMATotal     float64            `json:"pmaTotal"`
	PMAByWilayah []InvestmentRecord `json:"pmaByWilayah"`
	PMABySektor  []InvestmentRecord `json:"pmaBySektor"`
	PMAProyek    int                `json:"pmaProyek"`
	PMATKI       int                `json:"pmaTki"`
	PMATKA       int                `json:"pmaTka"`

	PMDNTotal     float64            `json:"pmdnTotal"`
	PMDNByWilayah []InvestmentRecord `json:"pmdnByWilayah"`
	PMDNBySektor  []InvestmentRecord `json:"pmdnBySektor"`
	PMDNProyek    int                `json:"pmdnProyek"`
	PMDNTKI       int                `json:"pmdnTki"`
	PMDNTKA       int                `json:"pmdnTka"`

	ByCountry []InvestmentRecord `json:"byCountry"`
}

// TotalInvestasi is PMA + PMDN realized value.
func (r InvestmentReport) TotalInvestasi() float64 {
	return r.PMATotal + r.PMDNTotal
}

// TotalProyek is the combined project count.
func (r InvestmentReport) TotalProyek() int {
	return r.PMAProyek + r.PMDNProyek
}

// TotalTKI is the combined local worker count.
func (r InvestmentReport) TotalTKI() int {
	return r.PMATKI + r.PMDNTKI
}

// TotalTKA is the combined foreign worker count.
func (r InvestmentReport) TotalTKA() int {
	return r.PMATKA + r.PMDNTKA
}

// Empty reports carry no investment data at all and are dropped by the
// loader.
func (r InvestmentReport) Empty() bool {
	return r.PMATotal == 0 && r.PMDNTotal == 0 &&
		len(r.PMAByWilayah) == 0 && len(r.PMDNByWilayah) == 0
}
