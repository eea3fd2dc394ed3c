// Package reference parses raw OSS export files row by row. Unlike the
// operational sheets these carry one transaction per row, so month bucketing
// happens on a date column instead of a sheet name.
package reference

import (
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/parser"
)

// DefaultBucketMonth receives rows whose date cell defies every parser.
// Rows are never dropped over a bad date; the counts must stay complete.
const DefaultBucketMonth = "Januari"

// dateLayouts are tried in order against textual date cells. Day-first
// layouts come before month-first because the files are Indonesian.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2/1/2006",
	"01/02/2006",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04",
}

// indonesianMonthNumbers maps lowercase Indonesian month names to calendar
// numbers, for "2 Januari 2024"-style dates.
var indonesianMonthNumbers = func() map[string]int {
	m := make(map[string]int, len(model.MonthNames))
	for i, name := range model.MonthNames {
		m[strings.ToLower(name)] = i + 1
	}
	return m
}()

// MonthOfCell buckets a date cell into an Indonesian month name. Numeric
// cells are treated as Excel serial dates; text cells go through the layout
// list, then an Indonesian "day month year" parse, then a bare month-name
// substring scan. Unparseable cells land in the default bucket.
func MonthOfCell(c parser.Cell) string {
	switch c.Kind {
	case parser.CellNumber:
		if t, err := excelize.ExcelDateToTime(c.Number, false); err == nil && t.Year() > 1900 {
			return model.MonthName(int(t.Month()))
		}
	case parser.CellText:
		if month, ok := monthOfText(c.Text); ok {
			return month
		}
	}
	return DefaultBucketMonth
}

func monthOfText(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return model.MonthName(int(t.Month())), true
		}
	}

	// "2 Januari 2024" and similar spellings.
	fields := strings.Fields(strings.ToLower(text))
	for _, f := range fields {
		if num, ok := indonesianMonthNumbers[f]; ok {
			return model.MonthName(num), true
		}
	}

	// Last resort: any embedded month name, covering values like
	// "Terbit: Januari-2024".
	if month, ok := parser.MonthInText(text); ok {
		return month, true
	}

	return "", false
}
