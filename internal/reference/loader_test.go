package reference

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/workbook"
)

// buildWorkbook writes an in-memory xlsx with one sheet per entry and opens
// it through the workbook package, the same path uploads take.
func buildWorkbook(t *testing.T, filename string, sheets map[string][][]string) *workbook.Workbook {
	t.Helper()

	f := excelize.NewFile()
	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	wb, err := workbook.Open(buf.Bytes(), filename)
	require.NoError(t, err)
	return wb
}

func testLoader() *Loader {
	return NewLoader(zerolog.Nop())
}

func TestLoadNIBDeduplicatesPerMonth(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "DATA NIB 2024.xlsx", map[string][][]string{
		"Skala Usaha": {
			{"NIB", "Tanggal Terbit", "Kab/Kota", "Status Penanaman Modal", "Skala Usaha"},
			{"123", "2024-01-10", "Kota Metro", "PMDN", "Usaha Mikro"},
			{"123", "2024-01-20", "Kota Metro", "PMDN", "Usaha Mikro"}, // same month duplicate
			{"123", "2024-03-05", "Kota Metro", "PMDN", "Usaha Mikro"}, // new month, counts again
			{"456", "2024-01-15", "Kab. Pesawaran", "PMA", "Usaha Kecil"},
		},
	})

	set, err := testLoader().Load(wb)
	require.NoError(t, err)
	require.Equal(t, model.ReferenceNIB, set.Type)

	ref := set.NIB
	assert.Equal(t, 2024, ref.Year)
	assert.Equal(t, 2, ref.MonthlyTotals["Januari"])
	assert.Equal(t, 1, ref.MonthlyTotals["Maret"])
	assert.Equal(t, 3, ref.TotalNIB)

	assert.Equal(t, 1, ref.ByKabKota["Kota Metro"]["Januari"])
	assert.Equal(t, 1, ref.ByPMStatus["PMA"]["Januari"])
	assert.Equal(t, 1, ref.BySkalaUsaha["Usaha Kecil"]["Januari"])
	assert.Equal(t, 1, ref.KabPMMonthly["Kab. Pesawaran"]["Januari"]["PMA"])

	assert.Equal(t, 2, ref.PeriodTotal(model.QuarterMonths["TW I"]))
	assert.Zero(t, ref.PeriodTotal(model.QuarterMonths["TW III"]))
}

func TestLoadNIBBadDatesLandInDefaultBucket(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "NIB export 2024.xlsx", map[string][][]string{
		"Skala Usaha": {
			{"NIB", "Tanggal Terbit", "Kab/Kota"},
			{"777", "???", "Kota Metro"},
		},
	})

	set, err := testLoader().Load(wb)
	require.NoError(t, err)
	assert.Equal(t, 1, set.NIB.MonthlyTotals[DefaultBucketMonth],
		"rows with unparseable dates must be kept, not dropped")
}

func TestLoadPBOSSExpandsRiskCodes(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "PB OSS 2024.xlsx", map[string][][]string{
		"Risiko dan Sektor": {
			{"No", "Tanggal", "Risiko", "Sektor"},
			{"1", "2024-02-01", "R", "Pertanian"},
			{"2", "2024-02-02", "MT", "Energi"},
			{"3", "2024-02-03", "Menengah Rendah", "Pertanian"},
		},
	})

	set, err := testLoader().Load(wb)
	require.NoError(t, err)
	require.Equal(t, model.ReferencePBOSS, set.Type)

	ref := set.PBOSS
	assert.Equal(t, 3, ref.TotalPermits)
	assert.Equal(t, 1, ref.MonthlyRisk["Februari"]["Rendah"])
	assert.Equal(t, 1, ref.MonthlyRisk["Februari"]["Menengah Tinggi"])
	assert.Equal(t, 1, ref.MonthlyRisk["Februari"]["Menengah Rendah"])
	assert.Equal(t, 2, ref.MonthlySector["Februari"]["Pertanian"])

	risk := ref.PeriodRisk(model.QuarterMonths["TW I"])
	assert.Equal(t, 1, risk["Rendah"])
}

func TestLoadProyekSumsWithoutDeduplication(t *testing.T) {
	t.Parallel()

	wb := buildWorkbook(t, "LKPM PROYEK 2024.xlsx", map[string][][]string{
		"Sheet Data": {
			{"No", "Periode", "Jumlah Investasi", "TKI", "TKA", "Status Penanaman Modal", "Kab/Kota"},
			{"1", "2024-01-05", "1000000", "10", "1", "PMDN", "Kota Metro"},
			{"2", "2024-01-25", "500000", "5", "0", "PMA", "Kota Metro"},
			{"3", "2024-04-10", "250000", "2", "0", "PMDN", "Kab. Mesuji"},
		},
	})

	set, err := testLoader().Load(wb)
	require.NoError(t, err)
	require.Equal(t, model.ReferenceProyek, set.Type)

	ref := set.Proyek
	assert.Equal(t, 1500000.0, ref.MonthlyInvestment["Januari"])
	assert.Equal(t, 500000.0, ref.MonthlyPMA["Januari"])
	assert.Equal(t, 1000000.0, ref.MonthlyPMDN["Januari"])
	assert.Equal(t, 2, ref.MonthlyProjects["Januari"])
	assert.Equal(t, 15, ref.MonthlyTKI["Januari"])
	assert.Equal(t, 1500000.0, ref.MonthlyByWilayah["Januari"]["Kota Metro"])

	assert.Equal(t, 1500000.0, ref.PeriodInvestment(model.QuarterMonths["TW I"]))
	assert.Equal(t, 250000.0, ref.PeriodInvestment(model.QuarterMonths["TW II"]))
}
