package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/pkg/response"
)

// RequestTimeoutMiddleware 给请求上下文挂超时。
// 超时属于传输层的取消语义：已经开始的存储操作不会被中途打断回滚，
// 只是后续读取 ctx 的环节会尽早放弃。
func RequestTimeoutMiddleware(logger *core.ZapLogger, timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			response.RespondError(c, http.StatusGatewayTimeout, response.CodeInternal, "request timed out")
			c.Abort()
		}
	}
}
