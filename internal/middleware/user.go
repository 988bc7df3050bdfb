package middleware

import (
	"educanvas_backend/internal/repository"
	"educanvas_backend/internal/util"
	"educanvas_backend/pkg/logger"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CurrentUser 从 X-User-ID 请求头解析当前用户，缺省时使用 defaultUserID。
// 用户不存在返回 401。
func CurrentUser(users *repository.UserRepository, defaultUserID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(util.HeaderUserID))
		if userID == "" {
			userID = defaultUserID
		}

		if _, err := users.FindByID(userID); err != nil {
			logger.Log.Debug("Unknown user",
				zap.String("user_id", userID),
				zap.String("path", c.Request.URL.Path),
			)
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(util.ContextUserID, userID)
		c.Next()
	}
}
