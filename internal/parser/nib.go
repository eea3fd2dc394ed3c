package parser

import (
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// nullLocations are the sentinel spellings of the "no fixed location"
// category. They mark a legitimate bucket, not missing data.
var nullLocations = map[string]bool{
	"null": true,
	"none": true,
	"nan":  true,
	"-":    true,
	"":     true,
}

func isNullLocation(name string) bool {
	return nullLocations[strings.ToLower(name)]
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// Column offsets of the monthly NIB sheet, relative to the name column.
const (
	nibOffPMA      = 1
	nibOffPMDN     = 2
	nibOffBesar    = 3
	nibOffKecil    = 4
	nibOffMenengah = 5
	nibOffMikro    = 6
	nibOffTotal    = 7
)

// nibSkipKeywords mark summary/total and repeated-header rows of the monthly
// NIB sheet.
var nibSkipKeywords = []string{"JUMLAH", "TOTAL", "GRAND", "STATUS PM", "SKALA USAHA", "KABUPATEN", "NO"}

// ParseNIBSheet extracts registration records from a monthly NIB sheet.
// Returns an empty slice when no table can be located; malformed cells in
// located rows degrade to zero instead of failing the sheet.
func ParseNIBSheet(g *Grid) []model.NIBRecord {
	loc, ok := LocateTable(g)
	if !ok {
		return nil
	}

	var records []model.NIBRecord
	for row := loc.DataRow; row < g.Rows(); row++ {
		val := func(offset int) int {
			return ToInt(g.Cell(row, loc.NameCol+offset))
		}

		name := g.Text(row, loc.NameCol)
		if isNullLocation(name) {
			// Only emit the null bucket when the row actually carries data;
			// trailing blank rows would otherwise fabricate zero records.
			componentSum := val(nibOffPMA) + val(nibOffPMDN) + val(nibOffBesar) +
				val(nibOffKecil) + val(nibOffMenengah) + val(nibOffMikro)
			if componentSum <= 0 && val(nibOffTotal) <= 0 {
				continue
			}
			name = model.NoLocationLabel
		} else if containsAny(strings.ToUpper(name), nibSkipKeywords) {
			continue
		}

		pma := val(nibOffPMA)
		pmdn := val(nibOffPMDN)
		total := val(nibOffTotal)
		if total <= 0 {
			// Some files leave the total column blank; others omit the
			// breakdown entirely. Both must be tolerated.
			total = pma + pmdn
		}

		records = append(records, model.NIBRecord{
			KabupatenKota: name,
			PMA:           pma,
			PMDN:          pmdn,
			UsahaBesar:    val(nibOffBesar),
			UsahaKecil:    val(nibOffKecil),
			UsahaMenengah: val(nibOffMenengah),
			UsahaMikro:    val(nibOffMikro),
			Total:         total,
		})
	}

	return records
}

// licensingSkipKeywords mark non-data rows of the quarterly licensing sheet.
var licensingSkipKeywords = []string{"JUMLAH", "TOTAL", "GRAND", "STATUS PM", "KABUPATEN", "NO", "URAIAN"}

// ParseLicensingSheet extracts registration records from a PERIZINAN
// BERUSAHA sheet of a quarterly file. These sheets only carry the PMA/PMDN
// split; the total is always read from the LAST column because the column
// count between sheets of the same workbook varies.
func ParseLicensingSheet(g *Grid) []model.NIBRecord {
	loc, ok := LocateTable(g)
	if !ok {
		return nil
	}

	lastCol := g.Width() - 1

	var records []model.NIBRecord
	for row := loc.DataRow; row < g.Rows(); row++ {
		pma := ToInt(g.Cell(row, loc.NameCol+nibOffPMA))
		pmdn := ToInt(g.Cell(row, loc.NameCol+nibOffPMDN))
		lastColTotal := ToInt(g.Cell(row, lastCol))

		name := g.Text(row, loc.NameCol)
		if isNullLocation(name) {
			if pma+pmdn <= 0 && lastColTotal <= 0 {
				continue
			}
			name = model.NoLocationLabel
		} else if containsAny(strings.ToUpper(name), licensingSkipKeywords) {
			continue
		}

		total := lastColTotal
		if total <= 0 {
			total = pma + pmdn
		}

		records = append(records, model.NIBRecord{
			KabupatenKota: name,
			PMA:           pma,
			PMDN:          pmdn,
			Total:         total,
		})
	}

	return records
}
