package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
	"github.com/fahadturjmi/GPA-Calculator/internal/service"
	"github.com/fahadturjmi/GPA-Calculator/pkg/response"
)

// SessionIDKey gin.Context 中的工作区 ID 键
const SessionIDKey = "session_id"

// Session 会话中间件
// 从 Cookie 取出工作区 ID；缺失或已过期时新建工作区并下发 Cookie
// 不涉及账号，Cookie 只是内存工作区的句柄
func Session(cfg *config.SessionConfig, wsSvc service.WorkspaceService, logger *zap.Logger) gin.HandlerFunc {
	sameSite := parseSameSite(cfg.SameSite)
	maxAge := int(cfg.TTL.Seconds())

	return func(c *gin.Context) {
		current, _ := c.Cookie(cfg.CookieName)

		id, created, err := wsSvc.Ensure(c.Request.Context(), current)
		if err != nil {
			logger.Error("会话初始化失败", zap.Error(err))
			response.InternalError(c)
			c.Abort()
			return
		}

		// 每次请求都续期 Cookie
		c.SetSameSite(sameSite)
		c.SetCookie(cfg.CookieName, id, maxAge, "/", "", cfg.Secure, true)
		if created {
			c.Header("X-Session-Created", "true")
		}

		c.Set(SessionIDKey, id)
		c.Next()
	}
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(v) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
