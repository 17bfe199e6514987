package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	"github.com/fahadturjmi/GPA-Calculator/internal/report"
	"github.com/fahadturjmi/GPA-Calculator/internal/repository"
	apperrors "github.com/fahadturjmi/GPA-Calculator/pkg/errors"
	"github.com/fahadturjmi/GPA-Calculator/pkg/metrics"
)

// ── 报告模块业务错误 ──

var ErrReportGenerateFail = errors.New("生成报告文件失败")

// ReportService 报告业务接口
//
// 设计说明：
//   - Build 返回渲染所需的全部数据（汇总、明细、柱状图），HTML 与 JSON 共用
//   - ExportXLSX 以 bytes.Buffer 返回，由 Handler 层设置下载响应头
//   - 打印 / 另存为 PDF 由浏览器完成，不在服务端处理
type ReportService interface {
	Build(ctx context.Context, id string) (*dto.ReportResponse, error)
	ExportXLSX(ctx context.Context, id string) (*bytes.Buffer, string, error)
}

type reportService struct {
	cfg     *config.ReportConfig
	repo    *repository.Repository
	metrics *metrics.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewReportService 创建 ReportService 实例
func NewReportService(cfg *config.ReportConfig, repo *repository.Repository, m *metrics.Metrics, logger *zap.Logger) ReportService {
	return &reportService{cfg: cfg, repo: repo, metrics: m, logger: logger, now: time.Now}
}

// ────────────────────── Build ──────────────────────

func (s *reportService) Build(ctx context.Context, id string) (*dto.ReportResponse, error) {
	ws, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	r := report.Build(ws.Courses, ws.Scale, s.now())
	if s.metrics != nil {
		s.metrics.ReportExportsTotal.WithLabelValues("html").Inc()
	}

	return toReportResponse(r, ws.DarkMode), nil
}

// ────────────────────── ExportXLSX ──────────────────────

func (s *reportService) ExportXLSX(ctx context.Context, id string) (*bytes.Buffer, string, error) {
	ws, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}

	now := s.now()
	r := report.Build(ws.Courses, ws.Scale, now)

	buf, err := report.WriteXLSX(r)
	if err != nil {
		s.logger.Error("写入 Excel 失败", zap.String("session_id", id), zap.Error(err))
		return nil, "", ErrReportGenerateFail
	}
	if s.metrics != nil {
		s.metrics.ReportExportsTotal.WithLabelValues("xlsx").Inc()
	}

	filename := fmt.Sprintf("%s_%s.xlsx", s.cfg.FilenamePrefix, now.Format("20060102"))
	return buf, filename, nil
}

// ── 内部辅助方法 ──

func (s *reportService) load(ctx context.Context, id string) (*model.Workspace, error) {
	ws, err := s.repo.Workspace.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrRecordNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		s.logger.Error("查询工作区失败", zap.String("session_id", id), zap.Error(err))
		return nil, err
	}
	return ws, nil
}

func toReportResponse(r *report.Report, dark bool) *dto.ReportResponse {
	rows := make([]dto.ReportRow, 0, len(r.Rows))
	for _, rw := range r.Rows {
		rows = append(rows, dto.ReportRow{
			Name:          rw.Name,
			Credits:       rw.Credits,
			GradeLabel:    rw.GradeLabel,
			Points:        rw.Points,
			PointsDisplay: report.FormatPoints(rw.Points),
		})
	}

	bars := make([]dto.ReportBar, 0, len(r.Chart.Bars))
	for _, b := range r.Chart.Bars {
		bars = append(bars, dto.ReportBar{Label: b.Label, Value: b.Value, Ratio: b.Ratio})
	}

	return &dto.ReportResponse{
		GeneratedAt: r.GeneratedAt.Format("2006-01-02"),
		Scale:       string(r.Scale),
		DarkMode:    dark,
		Summary:     toGPAResultResponse(r.Summary),
		Rows:        rows,
		Chart: dto.ReportChart{
			AxisMax: r.Chart.AxisMax,
			Ticks:   r.Chart.Ticks,
			Bars:    bars,
		},
	}
}
