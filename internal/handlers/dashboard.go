package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"paydash/internal/services/dashboard"
	"paydash/internal/utils/response"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the full dashboard payload: headline stats,
// distributions, top merchants, the latest trend window and recent
// payments.
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.dashboardService.GetDashboard(c.Context())
	if err != nil {
		return response.BadGateway(c, "Failed to load dashboard data")
	}

	return response.Success(c, "Dashboard data retrieved successfully", data)
}

// GetTrendPeriod returns one 30-day window of the trend series for
// chart paging.
func (h *DashboardHandler) GetTrendPeriod(c *fiber.Ctx) error {
	periodIndex, err := strconv.Atoi(c.Query("period", "0"))
	if err != nil || periodIndex < 0 {
		return response.BadRequest(c, "period must be a non-negative integer")
	}

	period, err := h.dashboardService.GetTrendPeriod(c.Context(), periodIndex)
	if err != nil {
		return response.BadGateway(c, "Failed to load trend data")
	}

	return response.Success(c, "Trend period retrieved successfully", period)
}
