package service

import (
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
	"github.com/fahadturjmi/GPA-Calculator/internal/repository"
	"github.com/fahadturjmi/GPA-Calculator/pkg/metrics"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Workspace WorkspaceService
	GPA       GPAService
	Report    ReportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	m *metrics.Metrics,
	logger *zap.Logger,
) *Service {
	return &Service{
		Workspace: NewWorkspaceService(&cfg.Session, repo, m, logger),
		GPA:       NewGPAService(m, logger),
		Report:    NewReportService(&cfg.Report, repo, m, logger),
	}
}
