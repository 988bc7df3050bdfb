package middleware

import (
	"educanvas_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID 沿用客户端传入的请求ID，否则生成一个
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(util.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(util.HeaderRequestID, id)
		c.Header(util.HeaderRequestID, id)
		c.Next()
	}
}
