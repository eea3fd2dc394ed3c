package aggregator

import "github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"

// RiskDistribution is the permit breakdown by risk level and sector over a
// period.
type RiskDistribution struct {
	ByRisk   map[string]int `json:"byRisk"`
	BySector map[string]int `json:"bySector"`
	Total    int            `json:"total"`
}

// FoldRiskSector sums risk-level and sector permit counts across record
// batches. Summary rows are already excluded by the parser, so every record
// counts.
func FoldRiskSector(batches ...[]model.RiskSectorRecord) *RiskDistribution {
	dist := &RiskDistribution{
		ByRisk:   make(map[string]int),
		BySector: make(map[string]int),
	}
	for _, batch := range batches {
		for _, r := range batch {
			dist.ByRisk["Rendah"] += r.RisikoRendah
			dist.ByRisk["Menengah Rendah"] += r.RisikoMenengahRendah
			dist.ByRisk["Menengah Tinggi"] += r.RisikoMenengahTinggi
			dist.ByRisk["Tinggi"] += r.RisikoTinggi

			dist.BySector["Energi"] += r.SektorEnergi
			dist.BySector["Kelautan"] += r.SektorKelautan
			dist.BySector["Kesehatan"] += r.SektorKesehatan
			dist.BySector["Komunikasi"] += r.SektorKomunikasi
			dist.BySector["Pariwisata"] += r.SektorPariwisata
			dist.BySector["Perhubungan"] += r.SektorPerhubungan
			dist.BySector["Perindustrian"] += r.SektorPerindustrian
			dist.BySector["Pertanian"] += r.SektorPertanian

			dist.Total += r.Total
		}
	}
	return dist
}
