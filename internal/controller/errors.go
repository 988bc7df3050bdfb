package controller

import (
	"context"
	"educanvas_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// respondError 将领域错误映射为 HTTP 状态码，其余错误记录日志后返回 500
func respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrCourseNotFound):
		util.NotFoundWithMessage(ctx, util.ErrCourseNotFound.Error())
	case errors.Is(err, util.ErrLessonNotFound):
		util.NotFoundWithMessage(ctx, util.ErrLessonNotFound.Error())
	case errors.Is(err, util.ErrNotAQuiz), errors.Is(err, util.ErrInvalidScore):
		util.BadRequest(ctx, err.Error())
	case errors.Is(err, util.ErrUserNotFound):
		util.Unauthorized(ctx)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		util.Error(ctx, http.StatusServiceUnavailable, "Request cancelled")
	default:
		util.LogInternalError(ctx, err)
	}
}
