package handler

import "github.com/fahadturjmi/GPA-Calculator/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Workspace *WorkspaceHandler
	Course    *CourseHandler
	GPA       *GPAHandler
	Report    *ReportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Workspace: NewWorkspaceHandler(svc.Workspace),
		Course:    NewCourseHandler(svc.Workspace),
		GPA:       NewGPAHandler(svc.GPA),
		Report:    NewReportHandler(svc.Report),
	}
}
