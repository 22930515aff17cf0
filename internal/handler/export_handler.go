package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lekha/internal/csvexport"
	"lekha/internal/service"
)

// ExportHandler handles CSV and XLSX download endpoints.
type ExportHandler struct {
	exportService service.ExportService
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// CustomersCSV handles GET /api/v1/exports/customers.csv
func (h *ExportHandler) CustomersCSV(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", csvexport.BuildFilename("Customers")))

	if err := h.exportService.CustomersCSV(c.Request.Context(), companyID, c.Writer); err != nil {
		// Headers are already written; abort the stream.
		_ = c.Error(err)
		c.Abort()
	}
}

// InvoicesCSV handles GET /api/v1/exports/invoices.csv
func (h *ExportHandler) InvoicesCSV(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	from, to, err := dateRangeParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "dates must be in YYYY-MM-DD format")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", csvexport.BuildFilename("Invoices")))

	if err := h.exportService.InvoicesCSV(c.Request.Context(), companyID, from, to, c.Writer); err != nil {
		_ = c.Error(err)
		c.Abort()
	}
}

// StatementXLSX handles GET /api/v1/exports/customers/:id/statement.xlsx
func (h *ExportHandler) StatementXLSX(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid customer ID")
		return
	}

	from, to, err := dateRangeParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "dates must be in YYYY-MM-DD format")
		return
	}

	filename := fmt.Sprintf("statement_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.StatementXLSX(c.Request.Context(), companyID, customerID, from, to, c.Writer); err != nil {
		_ = c.Error(err)
		c.Abort()
	}
}
