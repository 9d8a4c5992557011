package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/myErrors"
)

// 业务错误码，与 HTTP 状态码配合使用
const (
	CodeSuccess      = 0
	CodeInvalidInput = 40001
	CodeUnauthorized = 40101
	CodeForbidden    = 40301
	CodeNotFound     = 40401
	CodeConflict     = 40901
	CodeInternal     = 50000
)

// APIResponse 统一响应信封
type APIResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// RespondSuccess 写出成功响应，data 可为零值
func RespondSuccess[T any](c *gin.Context, data T, message string) {
	if message == "" {
		message = "success"
	}
	c.JSON(http.StatusOK, APIResponse[T]{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// RespondError 写出错误响应
func RespondError(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, APIResponse[any]{
		Code:    code,
		Message: message,
	})
}

// RespondDomainError 按错误分类映射 HTTP 状态码后写出响应。
// 错误消息原样透出，包装时携带的 id/slug 等上下文随消息返回。
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, myErrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, myErrors.ErrConflict):
		RespondError(c, http.StatusConflict, CodeConflict, err.Error())
	case errors.Is(err, myErrors.ErrForbidden):
		RespondError(c, http.StatusForbidden, CodeForbidden, err.Error())
	case errors.Is(err, myErrors.ErrValidation):
		RespondError(c, http.StatusBadRequest, CodeInvalidInput, err.Error())
	default:
		RespondError(c, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}
