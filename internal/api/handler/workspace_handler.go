package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
	"github.com/fahadturjmi/GPA-Calculator/internal/service"
	"github.com/fahadturjmi/GPA-Calculator/pkg/response"
)

// WorkspaceHandler 工作区（评分体系、主题、快照）HTTP 处理器
type WorkspaceHandler struct {
	wsSvc service.WorkspaceService
}

// NewWorkspaceHandler 创建 WorkspaceHandler
func NewWorkspaceHandler(wsSvc service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{wsSvc: wsSvc}
}

// GetWorkspace 获取当前会话的课程列表与计算结果
// GET /api/v1/workspace
func (h *WorkspaceHandler) GetWorkspace(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	ws, err := h.wsSvc.Get(c.Request.Context(), id)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.OK(c, ws)
}

// SetScale 切换评分体系
// PUT /api/v1/workspace/scale
func (h *WorkspaceHandler) SetScale(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	var req dto.SetScaleRequest
	if !bindJSON(c, &req) {
		return
	}

	ws, err := h.wsSvc.SetScale(c.Request.Context(), id, req.Scale)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.OK(c, ws)
}

// SetTheme 切换深色模式
// PUT /api/v1/workspace/theme
func (h *WorkspaceHandler) SetTheme(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	var req dto.SetThemeRequest
	if !bindJSON(c, &req) {
		return
	}

	ws, err := h.wsSvc.SetDarkMode(c.Request.Context(), id, *req.DarkMode)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.OK(c, ws)
}

// ResetWorkspace 丢弃当前课程与设置，恢复默认工作区
// DELETE /api/v1/workspace
func (h *WorkspaceHandler) ResetWorkspace(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	ws, err := h.wsSvc.Reset(c.Request.Context(), id)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.OK(c, ws)
}
