package controllers

import (
	"github.com/gin-gonic/gin"

	"fitcore/internal/services"
	"fitcore/pkg/utils"
)

// DashboardController serves the public stats widgets on the marketing site
// and the admin dashboard.
type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// UserCount godoc
// @Summary Total member count
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /user-count [get]
func (d *DashboardController) UserCount(c *gin.Context) {
	count, err := d.dashboardService.UserCount(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, count, "")
}

// NewMembers godoc
// @Summary Members joined in the last two days
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /new-members [get]
func (d *DashboardController) NewMembers(c *gin.Context) {
	count, err := d.dashboardService.NewMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, count, "")
}

// RecentMembers godoc
// @Summary Five most recent members
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /recent-members [get]
func (d *DashboardController) RecentMembers(c *gin.Context) {
	members, err := d.dashboardService.RecentMembers(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, members, "")
}

// EliteCount godoc
// @Summary Member count on the Elite Plan tier
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /elite-members-count [get]
func (d *DashboardController) EliteCount(c *gin.Context) {
	count, err := d.dashboardService.EliteMembersCount(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, count, "")
}
