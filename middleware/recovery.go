package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/pkg/response"
)

// ErrorHandlingMiddleware 捕获后续中间件与 handler 的 panic，
// 记录堆栈后返回统一的 500 响应，避免进程崩溃。
func ErrorHandlingMiddleware(logger *core.ZapLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("请求处理发生 panic",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.Stack("stack"),
				)
				response.RespondError(c, http.StatusInternalServerError, response.CodeInternal, "internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}
