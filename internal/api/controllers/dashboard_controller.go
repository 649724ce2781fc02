package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"phka/internal/models/response_models"
	"phka/internal/services"
	"phka/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
	eventService     services.EventServiceInterface
}

func NewDashboardController(dashboardService services.DashboardService, eventService services.EventServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		eventService:     eventService,
	}
}

// EventDashboard godoc
// @Summary Per-event dashboard
// @Description Guest, gift and expense aggregates with USD/KHR totals
// @Tags Dashboard
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} utils.APIResponse
// @Router /events/{id}/dashboard [get]
func (d *DashboardController) EventDashboard(c *gin.Context) {
	// GetEvent enforces the tenant boundary before we aggregate.
	event, err := d.eventService.GetEvent(c.Request.Context(), c.GetString("user_id"), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	dashboard, err := d.dashboardService.BuildEventDashboard(c.Request.Context(), event.ID.String())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard retrieved")
}

// AdminDashboard godoc
// @Summary Cross-tenant usage dashboard
// @Tags Dashboard
// @Produce json
// @Param start query string false "Range start (RFC3339)"
// @Param end query string false "Range end (RFC3339)"
// @Success 200 {object} utils.APIResponse
// @Router /admin/dashboard [get]
func (d *DashboardController) AdminDashboard(c *gin.Context) {
	var rng response_models.TimeRange

	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, 400, "Invalid start time, expected RFC3339")
			return
		}
		rng.Start = t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.RespondError(c, 400, "Invalid end time, expected RFC3339")
			return
		}
		rng.End = t
	}

	dashboard, err := d.dashboardService.BuildAdminDashboard(c.Request.Context(), rng)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard retrieved")
}
