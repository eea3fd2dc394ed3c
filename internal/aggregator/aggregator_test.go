package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

func monthOf(month string, year int, records ...model.NIBRecord) model.MonthData {
	return model.MonthData{Month: month, Year: year, NIB: records}
}

func rec(name string, pma, pmdn, mikro, kecil, menengah, besar, total int) model.NIBRecord {
	return model.NIBRecord{
		KabupatenKota: name,
		PMA:           pma,
		PMDN:          pmdn,
		UsahaMikro:    mikro,
		UsahaKecil:    kecil,
		UsahaMenengah: menengah,
		UsahaBesar:    besar,
		Total:         total,
	}
}

func TestAggregateQuarterSkipsMissingMonths(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.AddMonth(monthOf("Januari", 2024, rec("Kota Metro", 1, 9, 6, 2, 1, 1, 10)))
	agg.AddMonth(monthOf("Maret", 2024, rec("Kota Metro", 0, 5, 3, 2, 0, 0, 5)))
	// Februari never loaded.

	report, err := agg.AggregateQuarter("TW I", 2024)
	require.NoError(t, err)

	assert.Equal(t, 15, report.TotalNIB)
	assert.Equal(t, []string{"Januari", "Februari", "Maret"}, report.MonthsIncluded,
		"the month list must name the full period even with gaps")
	assert.Equal(t, 10, report.MonthlyTotals["Januari"])
	assert.Zero(t, report.MonthlyTotals["Februari"])

	metro := report.ByLocation["Kota Metro"]
	require.NotNil(t, metro)
	assert.Equal(t, 15, metro.GrandTotal)
	assert.Equal(t, 1, metro.PMATotal)
	assert.Equal(t, 14, metro.PMDNTotal)
	assert.Equal(t, 13, metro.UMKTotal())
	assert.Equal(t, 2, metro.NonUMKTotal())
}

func TestAggregateYearMatchesQuarterSums(t *testing.T) {
	t.Parallel()

	agg := New()
	for i, month := range model.MonthNames {
		agg.AddMonth(monthOf(month, 2024, rec("Kab. Pesawaran", 1, i, i, 0, 0, 0, i+1)))
	}

	year, err := agg.AggregateYear(2024)
	require.NoError(t, err)

	quarterSum := 0
	for _, tw := range model.QuarterOrder {
		q, err := agg.AggregateQuarter(tw, 2024)
		require.NoError(t, err)
		quarterSum += q.TotalNIB
	}
	assert.Equal(t, year.TotalNIB, quarterSum)
}

func TestQuarterComparisonWrapsToPreviousYear(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.AddMonth(monthOf("Desember", 2023, rec("Kota Metro", 0, 10, 10, 0, 0, 0, 10)))
	agg.AddMonth(monthOf("Januari", 2024, rec("Kota Metro", 0, 15, 15, 0, 0, 0, 15)))

	report, err := agg.AggregateQuarter("TW I", 2024)
	require.NoError(t, err)

	require.NotNil(t, report.PrevPeriodTotal)
	assert.Equal(t, 10, *report.PrevPeriodTotal)
	require.NotNil(t, report.ChangePercentage)
	assert.InDelta(t, 50.0, *report.ChangePercentage, 0.001)
}

func TestQuarterComparisonNilOnEmptyPreviousQuarter(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.AddMonth(monthOf("April", 2024, rec("Kota Metro", 0, 15, 15, 0, 0, 0, 15)))

	report, err := agg.AggregateQuarter("TW II", 2024)
	require.NoError(t, err)

	assert.Nil(t, report.PrevPeriodTotal)
	assert.Nil(t, report.ChangePercentage,
		"a change percentage against a zero base would fabricate growth")
}

func TestAggregateSemester(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.AddMonth(monthOf("Februari", 2024, rec("Kab. Mesuji", 0, 3, 3, 0, 0, 0, 3)))
	agg.AddMonth(monthOf("Juni", 2024, rec("Kab. Mesuji", 1, 4, 4, 1, 0, 0, 5)))
	agg.AddMonth(monthOf("Juli", 2024, rec("Kab. Mesuji", 0, 9, 9, 0, 0, 0, 9)))

	s1, err := agg.AggregateSemester("Semester I", 2024)
	require.NoError(t, err)
	assert.Equal(t, 8, s1.TotalNIB)

	s2, err := agg.AggregateSemester("Semester II", 2024)
	require.NoError(t, err)
	assert.Equal(t, 9, s2.TotalNIB)

	_, err = agg.AggregateSemester("Semester III", 2024)
	assert.Error(t, err)
}

func TestAddMonthReplacesEarlierLoad(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.AddMonth(monthOf("Mei", 2024, rec("Kota Metro", 0, 99, 99, 0, 0, 0, 99)))
	agg.AddMonth(monthOf("Mei", 2024, rec("Kota Metro", 0, 7, 7, 0, 0, 0, 7)))

	report, err := agg.AggregateQuarter("TW II", 2024)
	require.NoError(t, err)
	assert.Equal(t, 7, report.TotalNIB, "a re-upload of the same month must replace, not add")
}

func TestLoadedKeysCalendarOrder(t *testing.T) {
	t.Parallel()

	agg := New()
	agg.AddMonth(monthOf("Desember", 2023))
	agg.AddMonth(monthOf("Februari", 2024))
	agg.AddMonth(monthOf("Januari", 2024))

	assert.Equal(t, []string{"Desember_2023", "Januari_2024", "Februari_2024"}, agg.LoadedKeys())
}

func TestPreviousQuarter(t *testing.T) {
	t.Parallel()

	tw, year := PreviousQuarter("TW I", 2024)
	assert.Equal(t, "TW IV", tw)
	assert.Equal(t, 2023, year)

	tw, year = PreviousQuarter("TW III", 2024)
	assert.Equal(t, "TW II", tw)
	assert.Equal(t, 2024, year)
}
