package controller

import (
	"educanvas_backend/internal/service"
	"educanvas_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 获取仪表盘数据
// @Description 获取用户已报名课程及各课程完成度
// @Tags 仪表盘
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Success 200 {object} util.Response{data=model.Dashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID := util.GetUserIDFromContext(ctx)

	dashboard, err := c.DashboardService.GetUserDashboard(ctx.Request.Context(), userID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}
