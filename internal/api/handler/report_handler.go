package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/fahadturjmi/GPA-Calculator/internal/service"
	"github.com/fahadturjmi/GPA-Calculator/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportTemplate HTML 报告模板名
const ReportTemplate = "report.html"

// ReportHandler 报告模块 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// GetReport 报告数据（JSON）
// GET /api/v1/report
func (h *ReportHandler) GetReport(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	rep, err := h.reportSvc.Build(c.Request.Context(), id)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	response.OK(c, rep)
}

// RenderReport 可打印的 HTML 报告页
// GET /report
func (h *ReportHandler) RenderReport(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	rep, err := h.reportSvc.Build(c.Request.Context(), id)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	c.HTML(http.StatusOK, ReportTemplate, rep)
}

// ExportReport 导出 Excel 报告
// GET /api/v1/report/export
func (h *ReportHandler) ExportReport(c *gin.Context) {
	id, ok := MustGetSessionID(c)
	if !ok {
		return
	}

	buf, filename, err := h.reportSvc.ExportXLSX(c.Request.Context(), id)
	if err != nil {
		h.handleReportError(c, err)
		return
	}

	// 设置下载响应头
	encodedFilename := url.PathEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ReportHandler) handleReportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrReportGenerateFail):
		_ = c.Error(err)
		response.InternalError(c)
	default:
		handleWorkspaceError(c, err)
	}
}
