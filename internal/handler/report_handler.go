package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"lekha/internal/service"
	"lekha/internal/tds"
)

// ReportHandler handles tax and receivables report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GSTSummary handles GET /api/v1/reports/gst
func (h *ReportHandler) GSTSummary(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	from, to, err := dateRangeParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "dates must be in YYYY-MM-DD format")
		return
	}
	if from.IsZero() || to.IsZero() {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "from and to query parameters are required")
		return
	}

	summary, err := h.reportService.GSTSummary(c.Request.Context(), companyID, from, to)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// TDSSummary handles GET /api/v1/reports/tds
func (h *ReportHandler) TDSSummary(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	fy := c.Query("financial_year")
	if fy == "" {
		fy = tds.FinancialYearOf(time.Now().UTC())
	}

	summary, err := h.reportService.TDSSummary(c.Request.Context(), companyID, fy)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// Aging handles GET /api/v1/reports/aging
func (h *ReportHandler) Aging(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	report, err := h.reportService.AgingReport(c.Request.Context(), companyID, time.Now().UTC())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, report)
}
