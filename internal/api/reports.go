package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/aggregator"
	"github.com/SyahrialdiRachimAkbar/dpmptsp-report-generator-sub000/internal/model"
)

// reportResponse bundles a period report with its derived projections so
// consumers need a single round trip. The risk distribution is only present
// when the period's months came from quarterly files carrying risk sheets.
type reportResponse struct {
	Report *model.PeriodReport          `json:"report"`
	Table  any                          `json:"table"`
	Stats  any                          `json:"stats"`
	Risk   *aggregator.RiskDistribution `json:"riskDistribution,omitempty"`
}

func (h *Handler) respondReport(c *gin.Context, report *model.PeriodReport) {
	c.JSON(http.StatusOK, reportResponse{
		Report: report,
		Table:  h.svc.Table(report),
		Stats:  h.svc.Stats(report),
		Risk:   h.svc.RiskDistribution(report.MonthsIncluded, report.Year),
	})
}

func queryYear(c *gin.Context) int {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year == 0 {
		return time.Now().Year()
	}
	return year
}

// QuarterReport builds a Triwulan report.
// GET /api/reports/quarter?tw=TW+I&year=2024
func (h *Handler) QuarterReport(c *gin.Context) {
	report, err := h.svc.QuarterReport(c.Query("tw"), queryYear(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondReport(c, report)
}

// SemesterReport builds a Semester report.
// GET /api/reports/semester?semester=Semester+I&year=2024
func (h *Handler) SemesterReport(c *gin.Context) {
	report, err := h.svc.SemesterReport(c.Query("semester"), queryYear(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondReport(c, report)
}

// YearReport builds a full-year report.
// GET /api/reports/year?year=2024
func (h *Handler) YearReport(c *gin.Context) {
	report, err := h.svc.YearReport(queryYear(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondReport(c, report)
}

// GetInvestment returns a stored investment dataset.
// GET /api/investments/:id
func (h *Handler) GetInvestment(c *gin.Context) {
	data, ok := h.svc.Investment(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown investment dataset"})
		return
	}
	c.JSON(http.StatusOK, data)
}
