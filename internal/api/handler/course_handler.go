package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
	"github.com/fahadturjmi/GPA-Calculator/internal/service"
	"github.com/fahadturjmi/GPA-Calculator/pkg/response"
)

// CourseHandler 课程列表 HTTP 处理器
// 每个写操作都返回完整的新快照与重新计算的结果
type CourseHandler struct {
	wsSvc service.WorkspaceService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(wsSvc service.WorkspaceService) *CourseHandler {
	return &CourseHandler{wsSvc: wsSvc}
}

// AddCourse 新增课程（请求体可省略）
// POST /api/v1/workspace/courses
func (h *CourseHandler) AddCourse(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	var req dto.AddCourseRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	ws, err := h.wsSvc.AddCourse(c.Request.Context(), id, &req)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.Created(c, ws)
}

// UpdateCourse 按字段更新课程
// PATCH /api/v1/workspace/courses/:id
func (h *CourseHandler) UpdateCourse(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	courseID := c.Param("id")
	if courseID == "" {
		response.BadRequest(c, response.CodeValidation, "课程ID不能为空")
		return
	}

	var req dto.UpdateCourseRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Empty() {
		response.BadRequest(c, response.CodeValidation, "至少需要一个待更新字段")
		return
	}

	ws, err := h.wsSvc.UpdateCourse(c.Request.Context(), id, courseID, &req)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.OK(c, ws)
}

// RemoveCourse 删除课程
// DELETE /api/v1/workspace/courses/:id
func (h *CourseHandler) RemoveCourse(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	courseID := c.Param("id")
	if courseID == "" {
		response.BadRequest(c, response.CodeValidation, "课程ID不能为空")
		return
	}

	ws, err := h.wsSvc.RemoveCourse(c.Request.Context(), id, courseID)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.OK(c, ws)
}

// ClearCourses 清空课程列表
// DELETE /api/v1/workspace/courses
func (h *CourseHandler) ClearCourses(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	ws, err := h.wsSvc.ClearCourses(c.Request.Context(), id)
	if err != nil {
		handleWorkspaceError(c, err)
		return
	}

	response.OK(c, ws)
}
