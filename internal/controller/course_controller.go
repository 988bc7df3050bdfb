package controller

import (
	"context"
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/service"
	"educanvas_backend/internal/util"
	"educanvas_backend/pkg/async"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CatalogService *service.CatalogService
	CourseService  *service.CourseService
	UserService    *service.UserService
	Latency        *async.Delayer
}

func NewCourseController(catalogService *service.CatalogService, courseService *service.CourseService, userService *service.UserService, latency *async.Delayer) *CourseController {
	return &CourseController{
		CatalogService: catalogService,
		CourseService:  courseService,
		UserService:    userService,
		Latency:        latency,
	}
}

// @Summary 获取课程列表
// @Description 按关键字、分类、难度、标签筛选课程，条件之间为“且”关系，同一条件的多个取值为“或”关系
// @Tags 课程
// @Produce json
// @Param search query string false "关键字，匹配标题、描述和标签，不区分大小写"
// @Param category query []string false "分类" collectionFormat(multi)
// @Param difficulty query []string false "难度" collectionFormat(multi) Enums(Beginner, Intermediate, Advanced)
// @Param tag query []string false "标签" collectionFormat(multi)
// @Success 200 {object} util.Response{data=util.ListResponse}
// @Router /api/courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	var query service.CourseQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	courses, err := async.Load(ctx.Request.Context(), c.Latency, func(context.Context) ([]model.Course, error) {
		return c.CatalogService.SearchCourses(query), nil
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, util.ListResponse{
		List:  service.Summaries(courses),
		Total: len(courses),
	})
}

// @Summary 获取课程筛选项
// @Description 返回全部分类、难度和标签
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response{data=model.CourseFacets}
// @Router /api/courses/facets [get]
func (c *CourseController) GetFacets(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.Facets())
}

// @Summary 获取课程分类
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses/categories [get]
func (c *CourseController) GetCategories(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.Facets().Categories)
}

// @Summary 获取课程标签
// @Tags 课程
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/courses/tags [get]
func (c *CourseController) GetTags(ctx *gin.Context) {
	util.Success(ctx, c.CatalogService.Facets().Tags)
}

// @Summary 获取课程详情
// @Description 包含课程大纲、时长、是否已报名以及当前用户的完成度
// @Tags 课程
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.CourseDetail}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	userID := util.GetUserIDFromContext(ctx)
	courseID := ctx.Param("id")

	detail, err := async.Load(ctx.Request.Context(), c.Latency, func(rctx context.Context) (*model.CourseDetail, error) {
		return c.CourseService.CourseDetail(rctx, userID, courseID)
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, detail)
}

// @Summary 报名课程
// @Description 新报名返回 201，重复报名返回 200
// @Tags 课程
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response
// @Success 201 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/enroll [post]
func (c *CourseController) Enroll(ctx *gin.Context) {
	userID := util.GetUserIDFromContext(ctx)
	courseID := ctx.Param("id")

	added, err := c.UserService.Enroll(userID, courseID)
	if err != nil {
		respondError(ctx, err)
		return
	}

	resp := gin.H{"courseId": courseID, "enrolled": true}
	if added {
		util.Created(ctx, resp)
		return
	}
	util.Success(ctx, resp)
}
