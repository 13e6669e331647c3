package handler

import (
	"github.com/deepshiftai/invoicer-api/internal/application/service"
	"github.com/deepshiftai/invoicer-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetMetrics returns revenue, outstanding and draft summaries
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	metrics := h.dashboardService.Metrics(c.Request.Context())
	response.OK(c, "Metrics retrieved", metrics)
}
