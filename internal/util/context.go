package util

import "github.com/gin-gonic/gin"

// GetUserIDFromContext 返回中间件解析出的当前用户ID
func GetUserIDFromContext(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
