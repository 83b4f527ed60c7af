package jwt

import (
	"strings"

	"social-system/pkg/logger"
	"social-system/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// ContextIdentityKey 已校验身份在gin.Context中的键名
	ContextIdentityKey = "identity"

	invalidTokenMessage = "Invalid Access Token"
)

// AuthMiddleware JWT认证中间件
// 从请求头中提取Authorization: Bearer <token>
// 校验失败直接返回401，后续handler不会执行
func (s *JWTService) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(tokenString) == "" {
			response.Unauthorized(c, invalidTokenMessage)
			c.Abort()
			return
		}

		identity, err := s.Verify(strings.TrimSpace(tokenString))
		if err != nil {
			logger.Warn("JWT验证失败",
				zap.Error(err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			response.Unauthorized(c, invalidTokenMessage)
			c.Abort()
			return
		}

		// 将用户身份存入Context
		c.Set(ContextIdentityKey, identity)

		logger.Debug("用户访问接口",
			zap.Uint("user_id", identity.UserID),
			zap.String("username", identity.Username),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
		)

		c.Next()
	}
}

// GetIdentity 从gin.Context中获取已校验身份
func GetIdentity(c *gin.Context) (*Identity, bool) {
	if v, exists := c.Get(ContextIdentityKey); exists {
		if id, ok := v.(*Identity); ok && id != nil {
			return id, true
		}
	}
	return nil, false
}
