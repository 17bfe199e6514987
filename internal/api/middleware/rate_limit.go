package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fahadturjmi/GPA-Calculator/pkg/memstore"
	"github.com/fahadturjmi/GPA-Calculator/pkg/response"
)

// RateLimit 基于内存固定窗口的速率限制中间件
// limit: 窗口内允许的最大请求数
// window: 窗口时长
// store 为 nil 时放行
func RateLimit(store *memstore.Client, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if store == nil {
			c.Next()
			return
		}

		key := fmt.Sprintf("%s:%s", c.ClientIP(), c.FullPath())
		allowed, err := store.CheckRateLimit(key, limit, window)
		if err != nil {
			c.Next()
			return
		}

		if !allowed {
			response.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
