package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/config"
)

// GetConfig returns the runtime-adjustable settings.
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"port":        h.cfg.Server.Port,
		"devMode":     h.cfg.Server.DevMode,
		"defaultYear": h.cfg.Report.DefaultYear,
	})
}

// UpdateConfig changes the default report year and persists the config file.
// A failed write keeps the in-memory change; persisted tells the caller.
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var body struct {
		DefaultYear *int `json:"defaultYear"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.DefaultYear == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "defaultYear is required"})
		return
	}
	if *body.DefaultYear < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "defaultYear must not be negative"})
		return
	}

	h.cfg.Report.DefaultYear = *body.DefaultYear
	h.svc.SetDefaultYear(*body.DefaultYear)

	persisted := true
	if err := config.SaveConfig(h.cfg); err != nil {
		persisted = false
	}
	c.JSON(http.StatusOK, gin.H{
		"defaultYear": h.cfg.Report.DefaultYear,
		"persisted":   persisted,
	})
}
