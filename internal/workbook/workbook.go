// Package workbook turns uploaded spreadsheet bytes into untyped grids.
// Both .xlsx and legacy .xls files are accepted; which reader applies is
// decided by trying the modern format first.
package workbook

import (
	"bytes"
	"fmt"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/parser"
)

// SheetError records a sheet that could not be read. The rest of the
// workbook stays usable; callers log these and move on.
type SheetError struct {
	Sheet string
	Err   error
}

// Workbook is an in-memory, fully read spreadsheet file.
type Workbook struct {
	Filename string
	names    []string
	rows     map[string][][]string
	Skipped  []SheetError
}

// Open reads a workbook from bytes. An .xlsx reader is tried first, then
// the legacy .xls reader; only when neither recognizes the bytes is an
// error returned, since there is nothing to recover to.
func Open(data []byte, filename string) (*Workbook, error) {
	if wb, err := openXLSX(data, filename); err == nil {
		return wb, nil
	}
	if wb, err := openXLS(data, filename); err == nil {
		return wb, nil
	}
	return nil, fmt.Errorf("%s is not a readable xlsx/xls workbook", filename)
}

func openXLSX(data []byte, filename string) (*Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &Workbook{Filename: filename, rows: make(map[string][][]string)}
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			wb.Skipped = append(wb.Skipped, SheetError{Sheet: name, Err: err})
			continue
		}
		wb.names = append(wb.names, name)
		wb.rows[name] = rows
	}
	return wb, nil
}

func openXLS(data []byte, filename string) (*Workbook, error) {
	book, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	wb := &Workbook{Filename: filename, rows: make(map[string][][]string)}
	for i := 0; i < book.GetNumberSheets(); i++ {
		sheet, err := book.GetSheet(i)
		if err != nil || sheet == nil {
			wb.Skipped = append(wb.Skipped, SheetError{Sheet: fmt.Sprintf("#%d", i), Err: err})
			continue
		}
		var rows [][]string
		for _, r := range sheet.GetRows() {
			var cells []string
			for _, col := range r.GetCols() {
				cells = append(cells, col.GetString())
			}
			rows = append(rows, cells)
		}
		name := sheet.GetName()
		wb.names = append(wb.names, name)
		wb.rows[name] = rows
	}
	if len(wb.names) == 0 {
		return nil, fmt.Errorf("%s has no readable sheets", filename)
	}
	return wb, nil
}

// SheetNames returns the readable sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	return w.names
}

// Grid returns the grid of a sheet, or false when the sheet does not exist.
func (w *Workbook) Grid(name string) (*parser.Grid, bool) {
	rows, ok := w.rows[name]
	if !ok {
		return nil, false
	}
	return parser.NewGrid(rows), true
}

// HeaderRow returns the first row of a sheet, used for column-based file
// type detection. Empty when the sheet is empty or unknown.
func (w *Workbook) HeaderRow(name string) []string {
	rows := w.rows[name]
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}
