package reference

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/parser"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/workbook"
)

// Set is the parse result of one reference workbook. Exactly one of the
// three payloads is set, matching Type.
type Set struct {
	Type   model.ReferenceType    `json:"type"`
	NIB    *model.NIBReference    `json:"nib,omitempty"`
	PBOSS  *model.PBOSSReference  `json:"pbOss,omitempty"`
	Proyek *model.ProyekReference `json:"proyek,omitempty"`
}

// Loader parses raw OSS reference exports.
type Loader struct {
	log zerolog.Logger
}

// NewLoader returns a reference Loader logging through the given logger.
func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log.With().Str("component", "reference").Logger()}
}

// Load detects the reference file type and parses it. Year comes from the
// filename; files without one keep year 0, which period queries tolerate.
func (l *Loader) Load(wb *workbook.Workbook) (*Set, error) {
	names := wb.SheetNames()
	if len(names) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", wb.Filename)
	}

	refType := parser.DetectReferenceType(wb.Filename, names, wb.HeaderRow(names[0]))
	year := parser.YearFromFilename(wb.Filename)

	switch refType {
	case model.ReferenceNIB:
		return &Set{Type: refType, NIB: l.loadNIB(wb, year)}, nil
	case model.ReferencePBOSS:
		return &Set{Type: refType, PBOSS: l.loadPBOSS(wb, year)}, nil
	case model.ReferenceProyek:
		return &Set{Type: refType, Proyek: l.loadProyek(wb, year)}, nil
	default:
		return nil, fmt.Errorf("%s: unrecognized reference file", wb.Filename)
	}
}
