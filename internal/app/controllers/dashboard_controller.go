package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/preskool/school/internal/app/models/dto"
	"github.com/preskool/school/internal/app/services"
	"github.com/preskool/school/internal/middleware"
)

// DashboardController serves the role-specific landing payloads
type DashboardController struct {
	dashboardService *services.DashboardService
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(dashboardService *services.DashboardService) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// Dashboard builds the landing payload for the caller's role
// @Summary Role dashboard
// @Description Admins get population counts, teachers the student roster, students the teacher roster
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.DashboardResponse} "Dashboard retrieved"
// @Router /dashboard [get]
func (c *DashboardController) Dashboard(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	role, _ := middleware.CurrentRole(ctx)

	dashboard, err := c.dashboardService.Dashboard(ctx, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dashboard))
}
