package middleware

import (
	"Faceoff/internal/pkg/consts"
	"Faceoff/internal/pkg/security"
	"strings"

	"github.com/gin-gonic/gin"
)

const CallerIDKey = "caller_id"

// IdentityMiddleware 身份解析：优先取 Bearer Token 里的 caller 声明，
// 其次取匿名 ID 头，都没有则落到 anonymous 哨兵值。解析失败不拒绝请求。
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		callerID := consts.AnonymousCaller

		authHeader := c.GetHeader("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := security.ValidateToken(token); err == nil {
				callerID = claims.CallerID
			}
		}

		if callerID == consts.AnonymousCaller {
			if anonID := c.GetHeader(consts.HeaderAnonymousID); anonID != "" {
				callerID = anonID
			}
		}

		c.Set(CallerIDKey, callerID)
		c.Next()
	}
}

// CallerID 从请求上下文取出解析后的身份
func CallerID(c *gin.Context) string {
	if id, ok := c.Get(CallerIDKey); ok {
		if callerID, ok := id.(string); ok && callerID != "" {
			return callerID
		}
	}
	return consts.AnonymousCaller
}

// IsAnonymous 是否为未识别身份
func IsAnonymous(callerID string) bool {
	return callerID == consts.AnonymousCaller
}
