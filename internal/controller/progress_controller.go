package controller

import (
	"educanvas_backend/internal/service"
	"educanvas_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// QuizScoreRequest 提交测验成绩
type QuizScoreRequest struct {
	Score *float64 `json:"score" binding:"required,gte=0,lte=100"`
}

// @Summary 获取课程进度
// @Description 未学习过的课程返回空进度
// @Tags 学习进度
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Param id path string true "课程ID"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Router /api/courses/{id}/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	userID := util.GetUserIDFromContext(ctx)

	progress, err := c.ProgressService.CourseProgress(ctx.Request.Context(), userID, ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 标记课时完成
// @Description 重复标记不会改变进度
// @Tags 学习进度
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Param id path string true "课程ID"
// @Param lessonId path string true "课时ID"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/lessons/{lessonId}/complete [post]
func (c *ProgressController) CompleteLesson(ctx *gin.Context) {
	userID := util.GetUserIDFromContext(ctx)

	progress, err := c.ProgressService.CompleteLesson(ctx.Request.Context(), userID, ctx.Param("id"), ctx.Param("lessonId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 提交测验成绩
// @Description 只接受测验类型的课时，成绩范围 0-100，重复提交覆盖之前的成绩
// @Tags 学习进度
// @Accept json
// @Produce json
// @Param X-User-ID header string false "用户ID"
// @Param id path string true "课程ID"
// @Param quizId path string true "测验课时ID"
// @Param request body QuizScoreRequest true "成绩"
// @Success 200 {object} util.Response{data=model.CourseProgress}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/quizzes/{quizId}/score [post]
func (c *ProgressController) SubmitQuizScore(ctx *gin.Context) {
	var req QuizScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	userID := util.GetUserIDFromContext(ctx)
	progress, err := c.ProgressService.RecordQuizScore(ctx.Request.Context(), userID, ctx.Param("id"), ctx.Param("quizId"), *req.Score)
	if err != nil {
		respondError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
