package parser

import (
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// Column offsets of the SEKTOR & RESIKO sheet, relative to the name column.
// The source files order the risk columns Menengah Rendah, Menengah Tinggi,
// Rendah, Tinggi.
const (
	rsOffMenengahRendah = 1
	rsOffMenengahTinggi = 2
	rsOffRendah         = 3
	rsOffTinggi         = 4
	rsOffEnergi         = 5
	rsOffKelautan       = 6
	rsOffKesehatan      = 7
	rsOffKomunikasi     = 8
	rsOffPariwisata     = 9
	rsOffPerhubungan    = 10
	rsOffPerindustrian  = 11
	rsOffPertanian      = 12
	rsOffTotal          = 13
)

var riskSectorSkipKeywords = []string{"JUMLAH", "TOTAL", "GRAND", "RISIKO", "SEKTOR", "NO"}

// ParseRiskSectorSheet extracts risk-based permit records from a SEKTOR &
// RESIKO sheet. Returns an empty slice when no table can be located.
func ParseRiskSectorSheet(g *Grid) []model.RiskSectorRecord {
	loc, ok := LocateTable(g)
	if !ok {
		return nil
	}

	var records []model.RiskSectorRecord
	for row := loc.DataRow; row < g.Rows(); row++ {
		val := func(offset int) int {
			return ToInt(g.Cell(row, loc.NameCol+offset))
		}

		name := g.Text(row, loc.NameCol)
		if isNullLocation(name) {
			riskSum := val(rsOffMenengahRendah) + val(rsOffMenengahTinggi) +
				val(rsOffRendah) + val(rsOffTinggi)
			if riskSum <= 0 && val(rsOffTotal) <= 0 {
				continue
			}
			name = model.NoLocationLabel
		} else if containsAny(strings.ToUpper(name), riskSectorSkipKeywords) {
			continue
		}

		records = append(records, model.RiskSectorRecord{
			KabupatenKota:        name,
			RisikoMenengahRendah: val(rsOffMenengahRendah),
			RisikoMenengahTinggi: val(rsOffMenengahTinggi),
			RisikoRendah:         val(rsOffRendah),
			RisikoTinggi:         val(rsOffTinggi),
			SektorEnergi:         val(rsOffEnergi),
			SektorKelautan:       val(rsOffKelautan),
			SektorKesehatan:      val(rsOffKesehatan),
			SektorKomunikasi:     val(rsOffKomunikasi),
			SektorPariwisata:     val(rsOffPariwisata),
			SektorPerhubungan:    val(rsOffPerhubungan),
			SektorPerindustrian:  val(rsOffPerindustrian),
			SektorPertanian:      val(rsOffPertanian),
			Total:                val(rsOffTotal),
		})
	}

	return records
}
