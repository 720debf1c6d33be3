package controller

import (
	"dept_form_backend/internal/service"
	"dept_form_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// Stats godoc
// @Summary 后台总览统计
// @Tags 后台
// @Produce  json
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} util.ErrorResponse "未授权"
// @Router /dashboard [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	stats, err := c.DashboardService.Stats()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
