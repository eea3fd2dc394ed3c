package parser

import (
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// FileDialect distinguishes single-month operational files from quarterly
// aggregate workbooks carrying multiple month-named sheets.
type FileDialect string

const (
	DialectSingleMonth        FileDialect = "single_month"
	DialectQuarterlyAggregate FileDialect = "quarterly_aggregate"
)

// DetectDialect decides whether a workbook is a quarterly aggregate file.
// Filenames carry quarter markers when users name them consistently; the
// sheet-name scan covers the files where they do not.
func DetectDialect(filename string, sheetNames []string) FileDialect {
	upper := strings.ToUpper(filename)
	if strings.Contains(upper, "TW ") || strings.Contains(upper, "TRIWULAN") {
		return DialectQuarterlyAggregate
	}

	found := map[string]bool{}
	for _, sheet := range sheetNames {
		if month, ok := MonthInText(sheet); ok {
			found[month] = true
		}
	}
	if len(found) > 1 {
		return DialectQuarterlyAggregate
	}

	return DialectSingleMonth
}

// DetectReferenceType classifies a reference workbook. Structural signals
// (sheet names, then column headers) are checked before the filename because
// filenames are user-typed and inconsistent.
//
// firstSheetHeader is the header row of the first sheet and is only
// consulted for single-sheet workbooks, where a PROYEK file is recognized by
// its investment columns.
func DetectReferenceType(filename string, sheetNames []string, firstSheetHeader []string) model.ReferenceType {
	if len(sheetNames) == 1 {
		for _, col := range firstSheetHeader {
			upper := strings.ToUpper(col)
			if strings.Contains(upper, "PROYEK") || strings.Contains(upper, "INVESTASI") {
				return model.ReferenceProyek
			}
		}
	}

	for _, sheet := range sheetNames {
		upper := strings.ToUpper(sheet)
		if strings.Contains(upper, "RISIKO") || strings.Contains(upper, "SEKTOR") {
			return model.ReferencePBOSS
		}
	}

	for _, sheet := range sheetNames {
		upper := strings.ToUpper(sheet)
		if strings.Contains(upper, "SKALA") || strings.Contains(upper, "JENIS PERUSAHAAN") {
			return model.ReferenceNIB
		}
	}

	upper := strings.ToUpper(filename)
	switch {
	case strings.Contains(upper, "NIB"):
		return model.ReferenceNIB
	case strings.Contains(upper, "PB"), strings.Contains(upper, "PERIZINAN"):
		return model.ReferencePBOSS
	case strings.Contains(upper, "PROYEK"):
		return model.ReferenceProyek
	}

	return model.ReferenceUnknown
}

// QuarterInText finds which Triwulan a sheet name refers to. The most
// specific quarter is checked first so "TW I" never claims a "TW III"
// sheet; "TWIII" and "TW3"-style spellings are covered by the
// space-insensitive comparison.
func QuarterInText(text string) (string, bool) {
	upper := strings.ToUpper(text)
	collapsed := strings.ReplaceAll(upper, " ", "")
	for _, tw := range []string{"TW IV", "TW III", "TW II", "TW I"} {
		if strings.Contains(collapsed, strings.ReplaceAll(tw, " ", "")) {
			return tw, true
		}
		if strings.Contains(upper, tw) {
			return tw, true
		}
	}
	return "", false
}
