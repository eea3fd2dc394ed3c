package workbook

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func xlsxBytes(t *testing.T) []byte {
	t.Helper()

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", "Rekap"); err != nil {
		t.Fatalf("rename sheet: %v", err)
	}
	if err := f.SetSheetRow("Rekap", "A1", &[]string{"KAB/KOTA", "PMA", "PMDN"}); err != nil {
		t.Fatalf("set row: %v", err)
	}
	if err := f.SetSheetRow("Rekap", "A2", &[]string{"Kota Metro", "1", "2"}); err != nil {
		t.Fatalf("set row: %v", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	return buf.Bytes()
}

func TestOpenXLSX(t *testing.T) {
	t.Parallel()

	wb, err := Open(xlsxBytes(t), "rekap.xlsx")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	names := wb.SheetNames()
	if len(names) != 1 || names[0] != "Rekap" {
		t.Fatalf("sheet names = %v", names)
	}

	g, ok := wb.Grid("Rekap")
	if !ok {
		t.Fatal("Grid(Rekap) missing")
	}
	if g.Text(1, 0) != "Kota Metro" {
		t.Fatalf("cell = %q, want Kota Metro", g.Text(1, 0))
	}

	header := wb.HeaderRow("Rekap")
	if len(header) != 3 || header[0] != "KAB/KOTA" {
		t.Fatalf("header = %v", header)
	}
}

func TestOpenUnknownSheet(t *testing.T) {
	t.Parallel()

	wb, err := Open(xlsxBytes(t), "rekap.xlsx")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, ok := wb.Grid("Tidak Ada"); ok {
		t.Fatal("Grid returned a sheet that does not exist")
	}
	if header := wb.HeaderRow("Tidak Ada"); header != nil {
		t.Fatalf("header of unknown sheet = %v", header)
	}
}

func TestOpenRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := Open([]byte("this is not a spreadsheet"), "notes.txt"); err == nil {
		t.Fatal("Open accepted non-spreadsheet bytes")
	}
}
