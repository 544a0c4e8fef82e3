package middleware

import (
	"net/http"
	"strings"

	"kama_community_server/pkg/errorx"
	"kama_community_server/pkg/util/jwt"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey gin 上下文中保存当前用户 ID 的键
const ContextUserIDKey = "user_id"

// JWTAuth JWT 认证中间件
// 校验 Bearer Access Token，并将用户 ID 存入上下文；失败时返回 401 {"error":"unauthenticated"}
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := parseBearer(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errorx.ErrUnauthenticated.Msg})
			return
		}
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func parseBearer(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	claims, err := jwt.ParseToken(parts[1])
	if err != nil || claims.Subject != "access_token" || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}

// CurrentUserID 读取当前请求的用户 ID
// 未经过 JWTAuth 的公开路由上返回 ("", false)
func CurrentUserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return "", false
	}
	userID, ok := v.(string)
	return userID, ok && userID != ""
}
