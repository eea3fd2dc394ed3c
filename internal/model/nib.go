package model

import "fmt"

// NoLocationLabel is the display label for rows whose location cell holds a
// null sentinel but which still carry data. "Null" is a legitimate category
// in the source files, not missing data.
const NoLocationLabel = "Tanpa Lokasi"

// NIBRecord holds business-registration counts for one Kabupaten/Kota in one
// month.
type NIBRecord struct {
	KabupatenKota string `json:"kabupatenKota"`
	PMA           int    `json:"pma"`
	PMDN          int    `json:"pmdn"`
	UsahaMikro    int    `json:"usahaMikro"`
	UsahaKecil    int    `json:"usahaKecil"`
	UsahaMenengah int    `json:"usahaMenengah"`
	UsahaBesar    int    `json:"usahaBesar"`
	Total         int    `json:"total"`
}

// UMK is the micro + small business bucket.
func (r NIBRecord) UMK() int {
	return r.UsahaMikro + r.UsahaKecil
}

// NonUMK is the medium + large business bucket.
func (r NIBRecord) NonUMK() int {
	return r.UsahaMenengah + r.UsahaBesar
}

// Add returns the additive merge of two records for the same location.
func (r NIBRecord) Add(o NIBRecord) NIBRecord {
	return NIBRecord{
		KabupatenKota: r.KabupatenKota,
		PMA:           r.PMA + o.PMA,
		PMDN:          r.PMDN + o.PMDN,
		UsahaMikro:    r.UsahaMikro + o.UsahaMikro,
		UsahaKecil:    r.UsahaKecil + o.UsahaKecil,
		UsahaMenengah: r.UsahaMenengah + o.UsahaMenengah,
		UsahaBesar:    r.UsahaBesar + o.UsahaBesar,
		Total:         r.Total + o.Total,
	}
}

// MergeNIBRecords merges two record lists by exact Kabupaten/Kota name.
// Order of first appearance is preserved.
func MergeNIBRecords(existing, incoming []NIBRecord) []NIBRecord {
	index := make(map[string]int, len(existing))
	merged := make([]NIBRecord, len(existing))
	copy(merged, existing)
	for i, r := range merged {
		index[r.KabupatenKota] = i
	}
	for _, r := range incoming {
		if i, ok := index[r.KabupatenKota]; ok {
			merged[i] = merged[i].Add(r)
		} else {
			index[r.KabupatenKota] = len(merged)
			merged = append(merged, r)
		}
	}
	return merged
}

// RiskSectorRecord holds risk-based permit counts for one Kabupaten/Kota in
// one month.
type RiskSectorRecord struct {
	KabupatenKota        string `json:"kabupatenKota"`
	RisikoRendah         int    `json:"risikoRendah"`
	RisikoMenengahRendah int    `json:"risikoMenengahRendah"`
	RisikoMenengahTinggi int    `json:"risikoMenengahTinggi"`
	RisikoTinggi         int    `json:"risikoTinggi"`
	SektorEnergi         int    `json:"sektorEnergi"`
	SektorKelautan       int    `json:"sektorKelautan"`
	SektorKesehatan      int    `json:"sektorKesehatan"`
	SektorKomunikasi     int    `json:"sektorKomunikasi"`
	SektorPariwisata     int    `json:"sektorPariwisata"`
	SektorPerhubungan    int    `json:"sektorPerhubungan"`
	SektorPerindustrian  int    `json:"sektorPerindustrian"`
	SektorPertanian      int    `json:"sektorPertanian"`
	Total                int    `json:"total"`
}

// TotalRisiko sums the four risk levels.
func (r RiskSectorRecord) TotalRisiko() int {
	return r.RisikoRendah + r.RisikoMenengahRendah + r.RisikoMenengahTinggi + r.RisikoTinggi
}

// ToNIBRecord converts a risk/sector record into a registration record that
// only carries the total. The PMA/PMDN and scale breakdowns are lost; this
// is the documented fallback when a month has no licensing sheet.
func (r RiskSectorRecord) ToNIBRecord() NIBRecord {
	return NIBRecord{
		KabupatenKota: r.KabupatenKota,
		Total:         r.Total,
	}
}

// MonthData is the extraction result for one month of one year.
type MonthData struct {
	Month string      `json:"month"`
	Year  int         `json:"year"`
	NIB   []NIBRecord `json:"nib"`
}

// Key returns the "Month_Year" key used by the aggregator.
func (m MonthData) Key() string {
	return MonthKey(m.Month, m.Year)
}

// MonthKey builds the canonical "Month_Year" lookup key.
func MonthKey(month string, year int) string {
	return fmt.Sprintf("%s_%d", month, year)
}
