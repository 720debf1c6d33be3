package middleware

import (
	"dept_form_backend/internal/config"
	"dept_form_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 从会话 Cookie 取 JWT 并校验。
// 缺失、篡改、过期统一按无会话处理，一律 401，不向调用方区分原因
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(util.SessionCookie)
		if err != nil || tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
