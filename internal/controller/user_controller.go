package controller

import (
	"educanvas_backend/internal/service"
	"educanvas_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController 处理用户相关的HTTP请求
type UserController struct {
	UserService *service.UserService
}

// NewUserController 创建一个新的用户控制器实例
func NewUserController(userService *service.UserService) *UserController {
	return &UserController{
		UserService: userService,
	}
}

// GetProfile godoc
// @Summary 获取当前用户信息
// @Description enrolledCourses 包含运行期间新增的报名
// @Tags 用户
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	profile, err := c.UserService.GetProfile(util.GetUserIDFromContext(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, profile)
}

// GetEnrolledCourses godoc
// @Summary 获取已报名课程
// @Tags 用户
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Success 200 {object} util.Response{data=util.ListResponse} "成功"
// @Router /api/profile/courses [get]
func (c *UserController) GetEnrolledCourses(ctx *gin.Context) {
	courses := c.UserService.EnrolledCourses(util.GetUserIDFromContext(ctx))
	util.Success(ctx, util.ListResponse{
		List:  service.Summaries(courses),
		Total: len(courses),
	})
}

// GetUsers godoc
// @Summary 获取演示用户列表
// @Tags 用户
// @Produce json
// @Success 200 {object} util.Response{data=[]model.User} "成功"
// @Router /api/users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	util.Success(ctx, c.UserService.ListUsers())
}
