// Package api exposes the report service over HTTP.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/config"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/service"
)

// Handler holds the API dependencies.
type Handler struct {
	svc *service.Service
	cfg *config.AppConfig
}

// NewHandler creates the API handler.
func NewHandler(svc *service.Service, cfg *config.AppConfig) *Handler {
	return &Handler{svc: svc, cfg: cfg}
}

// RegisterRoutes wires all endpoints onto the group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.GET("/meta", h.GetMeta)
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	router.POST("/upload/operational", h.UploadOperational)
	router.POST("/upload/investment", h.UploadInvestment)
	router.POST("/upload/reference", h.UploadReference)

	router.GET("/reports/quarter", h.QuarterReport)
	router.GET("/reports/semester", h.SemesterReport)
	router.GET("/reports/year", h.YearReport)

	router.GET("/investments/:id", h.GetInvestment)
	router.GET("/references/:id/period", h.ReferencePeriod)

	router.GET("/imports", h.ListImports)
}
