package model

import "testing"

func TestMergeNIBRecordsAddsByExactName(t *testing.T) {
	t.Parallel()

	existing := []NIBRecord{
		{KabupatenKota: "Kota Metro", PMA: 1, PMDN: 9, Total: 10},
	}
	incoming := []NIBRecord{
		{KabupatenKota: "Kota Metro", PMA: 0, PMDN: 5, Total: 5},
		{KabupatenKota: "Kab. Mesuji", PMDN: 3, Total: 3},
	}

	merged := MergeNIBRecords(existing, incoming)
	if len(merged) != 2 {
		t.Fatalf("got %d records, want 2", len(merged))
	}
	if merged[0].KabupatenKota != "Kota Metro" || merged[0].Total != 15 || merged[0].PMDN != 14 {
		t.Fatalf("merged[0] = %+v", merged[0])
	}
	if merged[1].KabupatenKota != "Kab. Mesuji" || merged[1].Total != 3 {
		t.Fatalf("merged[1] = %+v", merged[1])
	}
}

func TestMergeNIBRecordsKeepsDistinctSpellings(t *testing.T) {
	t.Parallel()

	// Matching is by exact string. Variant spellings stay separate rather
	// than being silently conflated.
	merged := MergeNIBRecords(
		[]NIBRecord{{KabupatenKota: "Kab. Tulang Bawang", Total: 1}},
		[]NIBRecord{{KabupatenKota: "Kab. Tulangbawang", Total: 2}},
	)
	if len(merged) != 2 {
		t.Fatalf("got %d records, want 2", len(merged))
	}
}

func TestRiskSectorToNIBRecordDropsBreakdown(t *testing.T) {
	t.Parallel()

	r := RiskSectorRecord{KabupatenKota: "Kota Metro", RisikoRendah: 4, Total: 9}
	nib := r.ToNIBRecord()
	if nib.Total != 9 || nib.PMA != 0 || nib.PMDN != 0 {
		t.Fatalf("converted = %+v", nib)
	}
}

func TestMonthKey(t *testing.T) {
	t.Parallel()

	if got := MonthKey("Mei", 2024); got != "Mei_2024" {
		t.Fatalf("MonthKey = %q", got)
	}
	m := MonthData{Month: "Mei", Year: 2024}
	if m.Key() != "Mei_2024" {
		t.Fatalf("Key = %q", m.Key())
	}
}

func TestCalendarTables(t *testing.T) {
	t.Parallel()

	if MonthNumber("Desember") != 12 {
		t.Fatalf("MonthNumber(Desember) = %d", MonthNumber("Desember"))
	}
	if MonthNumber("January") != 0 {
		t.Fatal("English month name must not resolve")
	}
	if MonthName(5) != "Mei" {
		t.Fatalf("MonthName(5) = %q", MonthName(5))
	}

	seen := 0
	for _, months := range QuarterMonths {
		seen += len(months)
	}
	if seen != 12 {
		t.Fatalf("quarter tables cover %d months, want 12", seen)
	}
}
