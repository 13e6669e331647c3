package handler

import (
	"github.com/deepshiftai/invoicer-api/internal/application/service"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// ReminderHandler handles payment reminder HTTP requests
type ReminderHandler struct {
	reminderService *service.ReminderService
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// Generate drafts a reminder email for an overdue invoice without sending it
func (h *ReminderHandler) Generate(c *gin.Context) {
	draft, err := h.reminderService.Generate(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reminder generated", draft)
}

// Send generates and emails a reminder to the customer
func (h *ReminderHandler) Send(c *gin.Context) {
	doc, err := h.reminderService.Send(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Reminder sent", doc)
}
