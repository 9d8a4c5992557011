package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Xushengqwer/content_service/models/enums"
	"github.com/Xushengqwer/content_service/pkg/core"
	"github.com/Xushengqwer/content_service/pkg/response"
	"github.com/Xushengqwer/content_service/service"
)

// gin context 中主体信息的 Key
const (
	ctxKeyUserID = "principal_user_id"
	ctxKeyRole   = "principal_role"
)

// AuthMiddleware 解析 Bearer Token 并将 {userID, role} 注入请求上下文。
// 业务层完全信任这里给出的主体，所有权判定都以它为准。
// 缺失或非法的令牌直接以 401 终止请求。
func AuthMiddleware(jwtCfg core.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, "missing or malformed authorization header")
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims := &service.UserClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtCfg.Secret), nil
		})
		if err != nil || !token.Valid || !claims.Role.Valid() {
			response.RespondError(c, http.StatusUnauthorized, response.CodeUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(ctxKeyUserID, claims.UserID)
		c.Set(ctxKeyRole, claims.Role)
		c.Next()
	}
}

// PrincipalFromContext 取出认证中间件注入的主体信息。
// 只应在挂了 AuthMiddleware 的路由中调用，取不到说明路由配置有误。
func PrincipalFromContext(c *gin.Context) (uint64, enums.UserRole, bool) {
	idVal, ok := c.Get(ctxKeyUserID)
	if !ok {
		return 0, "", false
	}
	roleVal, ok := c.Get(ctxKeyRole)
	if !ok {
		return 0, "", false
	}

	userID, ok := idVal.(uint64)
	if !ok {
		return 0, "", false
	}
	role, ok := roleVal.(enums.UserRole)
	if !ok {
		return 0, "", false
	}
	return userID, role, true
}
