package app

import (
	"Gin_sports_equipment_portal/db"
	"Gin_sports_equipment_portal/session"
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// SessionChecker 查某个 jti 是否还在会话白名单里。
// 传 nil 则跳过白名单（handler 测试不起 Redis）。
type SessionChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

func AuthRequired(cfg Config, sessions SessionChecker, repo *db.Repo) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		token := raw
		if strings.HasPrefix(strings.ToLower(token), "bearer ") {
			token = strings.TrimSpace(token[7:])
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}

		claims, err := session.ParseToken(cfg.JWTSecret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid token"})
			return
		}
		if sessions != nil {
			ok, err := sessions.Exists(c.Request.Context(), claims.ID)
			if err != nil || !ok {
				c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "invalid session"})
				return
			}
		}

		// 确认用户仍存在，后续 handler 直接用 userID
		u, err := repo.FindUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, H{"error": "unauthorized"})
			return
		}
		c.Set("userID", u.ID)
		c.Set("email", u.Email)
		c.Set("sessionID", claims.ID)

		c.Next()
	}
}
