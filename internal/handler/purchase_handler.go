package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lekha/internal/service"
)

// PurchaseHandler handles purchase bill endpoints.
type PurchaseHandler struct {
	purchaseService service.PurchaseService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create handles POST /api/v1/purchases
func (h *PurchaseHandler) Create(c *gin.Context) {
	companyID, userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var input service.CreatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	purchase, err := h.purchaseService.Create(c.Request.Context(), companyID, userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, purchase)
}

// List handles GET /api/v1/purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	filter, ok := documentFilterParams(c)
	if !ok {
		return
	}

	purchases, total, err := h.purchaseService.List(c.Request.Context(), companyID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, purchases, PagMeta{Total: total, Offset: filter.Offset, Limit: filter.Limit})
}

// GetByID handles GET /api/v1/purchases/:id
func (h *PurchaseHandler) GetByID(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.GetByID(c.Request.Context(), companyID, purchaseID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, purchase)
}

// Update handles PUT /api/v1/purchases/:id
func (h *PurchaseHandler) Update(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid purchase ID")
		return
	}

	var input service.UpdatePurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	purchase, err := h.purchaseService.Update(c.Request.Context(), companyID, purchaseID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, purchase)
}

// MarkSent handles POST /api/v1/purchases/:id/send
func (h *PurchaseHandler) MarkSent(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.MarkSent(c.Request.Context(), companyID, purchaseID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, purchase)
}

// RecordPayment handles POST /api/v1/purchases/:id/payments
func (h *PurchaseHandler) RecordPayment(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid purchase ID")
		return
	}

	var input service.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	purchase, err := h.purchaseService.RecordPayment(c.Request.Context(), companyID, purchaseID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, purchase)
}

// Cancel handles POST /api/v1/purchases/:id/cancel
func (h *PurchaseHandler) Cancel(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.Cancel(c.Request.Context(), companyID, purchaseID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, purchase)
}
