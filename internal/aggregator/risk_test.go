package aggregator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

func TestFoldRiskSectorSumsAcrossBatches(t *testing.T) {
	t.Parallel()

	january := []model.RiskSectorRecord{
		{
			KabupatenKota:        "Kota Metro",
			RisikoRendah:         14,
			RisikoMenengahRendah: 5,
			RisikoMenengahTinggi: 1,
			SektorPertanian:      3,
			Total:                20,
		},
		{
			KabupatenKota:   "Kab. Pringsewu",
			RisikoRendah:    6,
			RisikoTinggi:    2,
			SektorKesehatan: 1,
			Total:           8,
		},
	}
	february := []model.RiskSectorRecord{
		{
			KabupatenKota:   "Kota Metro",
			RisikoRendah:    10,
			SektorPertanian: 4,
			Total:           10,
		},
	}

	dist := FoldRiskSector(january, february)
	require.NotNil(t, dist)

	assert.Equal(t, 30, dist.ByRisk["Rendah"])
	assert.Equal(t, 5, dist.ByRisk["Menengah Rendah"])
	assert.Equal(t, 1, dist.ByRisk["Menengah Tinggi"])
	assert.Equal(t, 2, dist.ByRisk["Tinggi"])

	assert.Equal(t, 7, dist.BySector["Pertanian"])
	assert.Equal(t, 1, dist.BySector["Kesehatan"])

	assert.Equal(t, 38, dist.Total)
}

func TestFoldRiskSectorEmpty(t *testing.T) {
	t.Parallel()

	dist := FoldRiskSector()
	require.NotNil(t, dist)
	assert.Zero(t, dist.Total)
	assert.Zero(t, dist.ByRisk["Rendah"])
}
