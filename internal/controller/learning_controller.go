package controller

import (
	"educanvas_backend/internal/model"
	"educanvas_backend/internal/service"
	"educanvas_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

// bindCursor module 与 lesson 都未传时返回 nil，表示从第一个课时开始
func bindCursor(ctx *gin.Context) (*model.LessonCursor, error) {
	_, hasModule := ctx.GetQuery("module")
	_, hasLesson := ctx.GetQuery("lesson")
	if !hasModule && !hasLesson {
		return nil, nil
	}

	var cursor model.LessonCursor
	if err := ctx.ShouldBindQuery(&cursor); err != nil {
		return nil, err
	}
	return &cursor, nil
}

// @Summary 获取学习页
// @Description 返回当前课时、课程大纲、上一个/下一个课时以及完成度
// @Tags 学习
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Param id path string true "课程ID"
// @Param module query int false "模块下标"
// @Param lesson query int false "课时下标"
// @Success 200 {object} util.Response{data=model.LessonView}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/learn [get]
func (c *LearningController) GetLesson(ctx *gin.Context) {
	cursor, err := bindCursor(ctx)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := util.GetUserIDFromContext(ctx)
	view, err := c.LearningService.LessonView(ctx.Request.Context(), userID, ctx.Param("id"), cursor)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// @Summary 完成当前课时并前进
// @Description 将当前课时标记为完成并返回下一个课时，最后一个课时停留原地
// @Tags 学习
// @Accept json
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Param id path string true "课程ID"
// @Param request body model.LessonCursor true "当前课时位置"
// @Success 200 {object} util.Response{data=model.LessonView}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/learn/next [post]
func (c *LearningController) Next(ctx *gin.Context) {
	var cursor model.LessonCursor
	if err := ctx.ShouldBindJSON(&cursor); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := util.GetUserIDFromContext(ctx)
	view, err := c.LearningService.Advance(ctx.Request.Context(), userID, ctx.Param("id"), cursor)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, view)
}
