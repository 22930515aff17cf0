package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lekha/internal/service"
)

// ReminderHandler handles payment reminder and statement email endpoints.
type ReminderHandler struct {
	reminderService service.ReminderService
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(reminderService service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// SendOverdueReminders handles POST /api/v1/reminders/overdue
func (h *ReminderHandler) SendOverdueReminders(c *gin.Context) {
	companyID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	result, err := h.reminderService.SendOverdueReminders(c.Request.Context(), companyID, time.Now().UTC())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// EmailStatement handles POST /api/v1/customers/:id/statement/email
func (h *ReminderHandler) EmailStatement(c *gin.Context) {
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

	if err := h.reminderService.EmailStatement(c.Request.Context(), companyID, customerID, from, to); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "statement emailed"})
}
