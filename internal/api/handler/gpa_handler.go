package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
	"github.com/fahadturjmi/GPA-Calculator/internal/service"
	"github.com/fahadturjmi/GPA-Calculator/pkg/response"
)

// GPAHandler 等级对照表与无状态计算 HTTP 处理器
type GPAHandler struct {
	gpaSvc service.GPAService
}

// NewGPAHandler 创建 GPAHandler
func NewGPAHandler(gpaSvc service.GPAService) *GPAHandler {
	return &GPAHandler{gpaSvc: gpaSvc}
}

// GetGrades 等级对照表、学分选项与评分体系
// GET /api/v1/grades
func (h *GPAHandler) GetGrades(c *gin.Context) {
	response.OK(c, h.gpaSvc.GradeTable(c.Request.Context()))
}

// Evaluate 计算请求体中的课程列表，不读写工作区
// POST /api/v1/gpa/evaluate
func (h *GPAHandler) Evaluate(c *gin.Context) {
	var req dto.EvaluateRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.gpaSvc.Evaluate(c.Request.Context(), &req)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.OK(c, res)
}
