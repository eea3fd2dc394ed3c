package parser

import (
	"reflect"
	"testing"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

func monthlyNIBSheet() *Grid {
	// Layout of a monthly NIB sheet: name, PMA, PMDN, Besar, Kecil,
	// Menengah, Mikro, Total.
	return NewGrid([][]string{
		{"DATA NIB BULAN JANUARI"},
		{"KABUPATEN/KOTA", "PMA", "PMDN", "BESAR", "KECIL", "MENENGAH", "MIKRO", "TOTAL"},
		{"Kab. Pesawaran", "2", "38", "1", "9", "5", "25", "40"},
		{"Kota Metro", "0", "61", "0", "12", "4", "45", "61"},
		{"JUMLAH", "2", "99", "1", "21", "9", "70", "101"},
	})
}

func TestParseNIBSheetSkipsSummaryRows(t *testing.T) {
	t.Parallel()

	records := ParseNIBSheet(monthlyNIBSheet())
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for _, r := range records {
		if r.KabupatenKota == "JUMLAH" {
			t.Fatal("summary row leaked into records")
		}
	}

	got := records[0]
	if got.KabupatenKota != "Kab. Pesawaran" || got.PMA != 2 || got.PMDN != 38 ||
		got.UsahaBesar != 1 || got.UsahaKecil != 9 || got.UsahaMenengah != 5 ||
		got.UsahaMikro != 25 || got.Total != 40 {
		t.Fatalf("first record = %+v", got)
	}
}

func TestParseNIBSheetIsDeterministic(t *testing.T) {
	t.Parallel()

	// Parsing has no hidden state: the same grid yields identical records
	// every time.
	first := ParseNIBSheet(monthlyNIBSheet())
	second := ParseNIBSheet(monthlyNIBSheet())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated parse diverged:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestParseNIBSheetNullLocationWithData(t *testing.T) {
	t.Parallel()

	g := NewGrid([][]string{
		{"KABUPATEN/KOTA", "PMA", "PMDN", "BESAR", "KECIL", "MENENGAH", "MIKRO", "TOTAL"},
		{"Kab. Mesuji", "1", "10", "0", "3", "1", "7", "11"},
		{"null", "0", "5", "0", "1", "0", "4", "5"},
	})

	records := ParseNIBSheet(g)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].KabupatenKota != model.NoLocationLabel {
		t.Fatalf("null row label = %q, want %q", records[1].KabupatenKota, model.NoLocationLabel)
	}
	if records[1].Total != 5 {
		t.Fatalf("null row total = %d, want 5", records[1].Total)
	}
}

func TestParseNIBSheetEmptyNullRowDropped(t *testing.T) {
	t.Parallel()

	g := NewGrid([][]string{
		{"KABUPATEN/KOTA", "PMA", "PMDN", "BESAR", "KECIL", "MENENGAH", "MIKRO", "TOTAL"},
		{"Kab. Mesuji", "1", "10", "0", "3", "1", "7", "11"},
		{"-", "", "", "", "", "", "", ""},
		{"", "", "", "", "", "", "", ""},
	})

	records := ParseNIBSheet(g)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (blank null rows must be dropped)", len(records))
	}
}

func TestParseNIBSheetTotalFallsBackToPMAPlusPMDN(t *testing.T) {
	t.Parallel()

	g := NewGrid([][]string{
		{"KABUPATEN/KOTA", "PMA", "PMDN", "BESAR", "KECIL", "MENENGAH", "MIKRO", "TOTAL"},
		{"Kab. Way Kanan", "3", "17", "0", "0", "0", "0", ""},
	})

	records := ParseNIBSheet(g)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Total != 20 {
		t.Fatalf("total = %d, want 20 (PMA+PMDN fallback)", records[0].Total)
	}
}

func TestParseLicensingSheetTotalFromLastColumn(t *testing.T) {
	t.Parallel()

	// Quarterly PB sheets carry extra columns between PMDN and the total;
	// the explicit last-column value wins even when it disagrees with
	// PMA+PMDN.
	g := NewGrid([][]string{
		{"PERIZINAN BERUSAHA", "", "", "", ""},
		{"KAB/KOTA", "PMA", "PMDN", "LAINNYA", "JUMLAH"},
		{"Kab. Pringsewu", "2", "30", "4", "36"},
	})

	records := ParseLicensingSheet(g)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Total != 36 {
		t.Fatalf("total = %d, want 36 from the last column", records[0].Total)
	}
	if records[0].PMA != 2 || records[0].PMDN != 30 {
		t.Fatalf("PMA/PMDN = %d/%d, want 2/30", records[0].PMA, records[0].PMDN)
	}
}

func TestParseLicensingSheetRaggedRowStillFindsLastColumn(t *testing.T) {
	t.Parallel()

	// The data row is shorter than the header row in the raw file. The
	// padded grid keeps last-column addressing consistent, so the blank
	// total falls back to PMA+PMDN.
	g := NewGrid([][]string{
		{"KAB/KOTA", "PMA", "PMDN", "LAINNYA", "JUMLAH"},
		{"Kota Metro", "1", "9"},
	})

	records := ParseLicensingSheet(g)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Total != 10 {
		t.Fatalf("total = %d, want 10", records[0].Total)
	}
}

func TestParseLicensingSheetNullRowKeepsLastColumnTotal(t *testing.T) {
	t.Parallel()

	// A "Null" row with data is renamed, and its total still comes from the
	// last column rather than PMA+PMDN. Fully blank null rows stay out.
	g := NewGrid([][]string{
		{"KAB/KOTA", "PMA", "PMDN", "LAINNYA", "JUMLAH"},
		{"Kab. Lampung Timur", "2", "18", "0", "20"},
		{"Null", "3", "7", "2", "12"},
		{"-", "", "", "", ""},
	})

	records := ParseLicensingSheet(g)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	null := records[1]
	if null.KabupatenKota != model.NoLocationLabel {
		t.Fatalf("null row label = %q, want %q", null.KabupatenKota, model.NoLocationLabel)
	}
	if null.Total != 12 {
		t.Fatalf("null row total = %d, want 12 from the last column", null.Total)
	}
	if null.PMA != 3 || null.PMDN != 7 {
		t.Fatalf("null row PMA/PMDN = %d/%d, want 3/7", null.PMA, null.PMDN)
	}
}

func TestParseRiskSectorSheet(t *testing.T) {
	t.Parallel()

	g := NewGrid([][]string{
		{"JUMLAH PB BERDASARKAN SEKTOR DAN RESIKO"},
		{"KAB/KOTA", "MR", "MT", "R", "T", "ENERGI", "KELAUTAN", "KESEHATAN", "KOMINFO", "PARIWISATA", "PERHUBUNGAN", "PERINDUSTRIAN", "PERTANIAN", "TOTAL"},
		{"Kab. Tanggamus", "10", "2", "30", "1", "0", "1", "2", "0", "3", "0", "1", "5", "43"},
		{"TOTAL", "10", "2", "30", "1", "0", "1", "2", "0", "3", "0", "1", "5", "43"},
	})

	records := ParseRiskSectorSheet(g)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	r := records[0]
	if r.RisikoMenengahRendah != 10 || r.RisikoMenengahTinggi != 2 ||
		r.RisikoRendah != 30 || r.RisikoTinggi != 1 {
		t.Fatalf("risk columns misread: %+v", r)
	}
	if r.TotalRisiko() != 43 || r.Total != 43 {
		t.Fatalf("totals = %d/%d, want 43/43", r.TotalRisiko(), r.Total)
	}
	if r.SektorPertanian != 5 {
		t.Fatalf("SektorPertanian = %d, want 5", r.SektorPertanian)
	}
}
