package handler

import (
	"github.com/gofiber/fiber/v2"

	"interview-prep/internal/middleware"
	"interview-prep/internal/service"
)

// DashboardHandler handles dashboard HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler instance
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Get the authenticated user's dashboard
// @Description Aggregates profile, resume and interview statistics into one view
// @Tags dashboard
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	userID := middleware.UserID(c)

	dashboard, err := h.dashboardService.GetDashboard(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(dashboard)
}
