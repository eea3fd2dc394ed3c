package api

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// readUpload pulls the uploaded file of the "file" form field fully into
// memory. Source workbooks are a few megabytes at most.
func readUpload(c *gin.Context) ([]byte, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return nil, "", false
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot open upload"})
		return nil, "", false
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot read upload"})
		return nil, "", false
	}
	return content, fileHeader.Filename, true
}

// UploadOperational imports a monthly or quarterly workbook.
// POST /api/upload/operational
func (h *Handler) UploadOperational(c *gin.Context) {
	content, filename, ok := readUpload(c)
	if !ok {
		return
	}

	result, err := h.svc.ImportOperational(content, filename)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// UploadInvestment imports a REALISASI INVESTASI workbook.
// POST /api/upload/investment
func (h *Handler) UploadInvestment(c *gin.Context) {
	content, filename, ok := readUpload(c)
	if !ok {
		return
	}

	id, data, err := h.svc.ImportInvestment(content, filename)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "data": data})
}

// UploadReference imports a raw OSS reference export.
// POST /api/upload/reference
func (h *Handler) UploadReference(c *gin.Context) {
	content, filename, ok := readUpload(c)
	if !ok {
		return
	}
	year, _ := strconv.Atoi(c.DefaultPostForm("year", "0"))

	id, set, err := h.svc.ImportReference(content, filename, year)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "type": set.Type})
}
