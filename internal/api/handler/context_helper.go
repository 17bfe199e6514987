package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fahadturjmi/GPA-Calculator/internal/api/middleware"
	"github.com/fahadturjmi/GPA-Calculator/internal/service"
	"github.com/fahadturjmi/GPA-Calculator/pkg/response"
)

// MustGetSessionID 从 Gin 上下文中安全提取工作区 ID。
// 如果会话中间件未注入，返回 false 并写入 500 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.SessionIDKey)
	if !exists {
		response.InternalError(c)
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.InternalError(c)
		return "", false
	}
	return s, true
}

// bindJSON 绑定并校验请求体，失败时写入响应
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if middleware.IsBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "请求体过大")
			return false
		}
		response.ValidationFailed(c, err)
		return false
	}
	return true
}

// bindOptionalJSON 与 bindJSON 相同，但请求体为空（含分块传输的空体）时视为零值
func bindOptionalJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return true
		}
		if middleware.IsBodyTooLarge(err) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "请求体过大")
			return false
		}
		response.ValidationFailed(c, err)
		return false
	}
	return true
}

// handleWorkspaceError 工作区相关业务错误到响应的映射
func handleWorkspaceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkspaceNotFound):
		response.NotFound(c, response.CodeWorkspaceNotFound, "工作区不存在或已过期")
	case errors.Is(err, service.ErrCourseNotFound):
		response.NotFound(c, response.CodeCourseNotFound, "课程不存在")
	case errors.Is(err, service.ErrInvalidScale):
		response.BadRequest(c, response.CodeInvalidScale, "评分体系只能是 4.0 或 5.0")
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}
