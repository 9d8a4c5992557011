package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Xushengqwer/content_service/middleware"
	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/pkg/response"
)

// parseIDParam 解析路径中的数字 ID，失败时直接写出 400 并返回 false
func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, response.CodeInvalidInput, "无效的路径参数: "+name)
		return 0, false
	}
	return id, true
}

// principal 取出认证中间件注入的主体，取不到时写出 401 并返回 false。
// 只应在挂了 AuthMiddleware 的路由中使用。
func principal(c *gin.Context) (uint64, enums.UserRole, bool) {
	userID, role, ok := middleware.PrincipalFromContext(c)
	if !ok {
		response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, "无法获取用户信息")
		return 0, "", false
	}
	return userID, role, true
}
