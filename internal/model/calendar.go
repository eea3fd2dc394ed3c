package model

// MonthNames are the Indonesian month names in calendar order.
var MonthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// QuarterOrder lists the Triwulan names in chronological order.
var QuarterOrder = []string{"TW I", "TW II", "TW III", "TW IV"}

// QuarterMonths maps each Triwulan to its three months.
var QuarterMonths = map[string][]string{
	"TW I":   {"Januari", "Februari", "Maret"},
	"TW II":  {"April", "Mei", "Juni"},
	"TW III": {"Juli", "Agustus", "September"},
	"TW IV":  {"Oktober", "November", "Desember"},
}

// SemesterMonths maps each Semester to its six months.
var SemesterMonths = map[string][]string{
	"Semester I":  {"Januari", "Februari", "Maret", "April", "Mei", "Juni"},
	"Semester II": {"Juli", "Agustus", "September", "Oktober", "November", "Desember"},
}

// KabupatenKota lists the districts and cities of Provinsi Lampung.
var KabupatenKota = []string{
	"Kab. Lampung Barat",
	"Kab. Lampung Selatan",
	"Kab. Lampung Tengah",
	"Kab. Lampung Timur",
	"Kab. Lampung Utara",
	"Kab. Mesuji",
	"Kab. Pesawaran",
	"Kab. Pesisir Barat",
	"Kab. Pringsewu",
	"Kab. Tanggamus",
	"Kab. Tulang Bawang",
	"Kab. Tulang Bawang Barat",
	"Kab. Way Kanan",
	"Kota Bandar Lampung",
	"Kota Metro",
}

// MonthNumber returns the 1-based calendar number of an Indonesian month
// name, or 0 when the name is unknown.
func MonthNumber(name string) int {
	for i, m := range MonthNames {
		if m == name {
			return i + 1
		}
	}
	return 0
}

// MonthName returns the Indonesian name for a 1-based month number.
func MonthName(number int) string {
	if number < 1 || number > 12 {
		return ""
	}
	return MonthNames[number-1]
}
