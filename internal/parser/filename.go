package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

var (
	yearPattern    = regexp.MustCompile(`(20\d{2})`)
	anyYearPattern = regexp.MustCompile(`(\d{4})`)
)

// MonthInText finds the first Indonesian month name mentioned in a filename
// or sheet name, returned in canonical capitalization.
func MonthInText(text string) (string, bool) {
	upper := strings.ToUpper(text)
	for _, month := range model.MonthNames {
		if strings.Contains(upper, strings.ToUpper(month)) {
			return month, true
		}
	}
	return "", false
}

// YearFromFilename extracts the data year from a filename. A "20xx" number
// is preferred; any other 4-digit number is a fallback for unusually named
// files. Returns 0 when the filename carries no year at all.
func YearFromFilename(filename string) int {
	if m := yearPattern.FindStringSubmatch(filename); m != nil {
		year, _ := strconv.Atoi(m[1])
		return year
	}
	if m := anyYearPattern.FindStringSubmatch(filename); m != nil {
		year, _ := strconv.Atoi(m[1])
		return year
	}
	return 0
}
