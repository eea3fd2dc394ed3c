package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/service"
)

// ReferencePeriod answers period queries against a parsed reference file.
// GET /api/references/:id/period?type=Triwulan&name=TW+I
func (h *Handler) ReferencePeriod(c *gin.Context) {
	set, ok := h.svc.Reference(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown reference dataset"})
		return
	}

	months, err := service.PeriodMonths(model.PeriodType(c.DefaultQuery("type", string(model.PeriodTriwulan))), c.Query("name"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch set.Type {
	case model.ReferenceNIB:
		c.JSON(http.StatusOK, gin.H{
			"type":         set.Type,
			"total":        set.NIB.PeriodTotal(months),
			"byKabKota":    set.NIB.PeriodByKabKota(months),
			"byPmStatus":   set.NIB.PeriodByPMStatus(months),
			"bySkalaUsaha": set.NIB.PeriodBySkalaUsaha(months),
		})
	case model.ReferencePBOSS:
		c.JSON(http.StatusOK, gin.H{
			"type":     set.Type,
			"byRisk":   set.PBOSS.PeriodRisk(months),
			"bySector": set.PBOSS.PeriodSector(months),
		})
	case model.ReferenceProyek:
		c.JSON(http.StatusOK, gin.H{
			"type":       set.Type,
			"investment": set.Proyek.PeriodInvestment(months),
			"pma":        set.Proyek.PeriodPMA(months),
			"pmdn":       set.Proyek.PeriodPMDN(months),
			"tki":        set.Proyek.PeriodTKI(months),
			"tka":        set.Proyek.PeriodTKA(months),
			"projects":   set.Proyek.PeriodProjects(months),
			"byWilayah":  set.Proyek.PeriodByWilayah(months),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reference dataset has no payload"})
	}
}
