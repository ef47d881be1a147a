package controllers

import (
	"github.com/gin-gonic/gin"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardService
}

func NewDashboardController(dashboardService services.DashboardService) *DashboardController {
	return &DashboardController{dashboardService: dashboardService}
}

// GetDashboard godoc
// @Summary Landing page data
// @Description Upcoming and recent trips, popular cities and budget stats. Sections that could not be loaded are listed in warnings.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse
// @Router /api/dashboard [get]
func (d *DashboardController) GetDashboard(c *gin.Context) {
	userId, ok := currentUserID(c)
	if !ok {
		return
	}

	dashboard, err := d.dashboardService.BuildDashboard(c.Request.Context(), userId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, dashboard, "Dashboard fetched successfully")
}
