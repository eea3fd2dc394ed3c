package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// GetStatus reports service health and what is loaded.
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"loadedMonths": h.svc.LoadedMonths(),
	})
}

// GetMeta exposes the static reporting vocabulary so the frontend does not
// hardcode it.
// GET /api/meta
func (h *Handler) GetMeta(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"kabupatenKota": model.KabupatenKota,
		"months":        model.MonthNames,
		"quarters":      model.QuarterOrder,
		"quarterMonths": model.QuarterMonths,
		"semesters":     model.SemesterMonths,
	})
}

// ListImports returns the upload history.
// GET /api/imports?limit=20
func (h *Handler) ListImports(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 {
		limit = 20
	}

	logs, err := h.svc.RecentImports(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imports": logs})
}
