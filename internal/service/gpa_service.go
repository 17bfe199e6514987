package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
	"github.com/fahadturjmi/GPA-Calculator/internal/gpa"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	"github.com/fahadturjmi/GPA-Calculator/pkg/metrics"
)

// GPAService 无状态计算与静态选项查询
type GPAService interface {
	// GradeTable 等级对照表、可选学分与评分体系
	GradeTable(ctx context.Context) *dto.GradeTableResponse
	// Evaluate 对请求中的课程列表直接计算，不读写工作区
	Evaluate(ctx context.Context, req *dto.EvaluateRequest) (*dto.GPAResultResponse, error)
}

type gpaService struct {
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewGPAService 创建 GPAService 实例
func NewGPAService(m *metrics.Metrics, logger *zap.Logger) GPAService {
	return &gpaService{metrics: m, logger: logger}
}

func (s *gpaService) GradeTable(_ context.Context) *dto.GradeTableResponse {
	opts := gpa.GradeOptions()
	grades := make([]dto.GradeOptionResponse, 0, len(opts))
	for _, o := range opts {
		grades = append(grades, dto.GradeOptionResponse{
			Label:       o.Label,
			DisplayName: o.DisplayName,
			Points4:     o.PointsOnFourScale,
			Points5:     o.PointsOnFiveScale,
		})
	}

	scales := make([]string, 0, len(model.Scales))
	for _, sc := range model.Scales {
		scales = append(scales, string(sc))
	}

	return &dto.GradeTableResponse{
		Grades:         grades,
		CreditOptions:  gpa.CreditOptions(),
		DefaultCredits: gpa.DefaultCredits,
		Scales:         scales,
	}
}

func (s *gpaService) Evaluate(_ context.Context, req *dto.EvaluateRequest) (*dto.GPAResultResponse, error) {
	scale, err := model.ParseGradeScale(req.Scale)
	if err != nil {
		return nil, err
	}

	courses := make([]model.Course, 0, len(req.Courses))
	for _, c := range req.Courses {
		courses = append(courses, model.Course{
			Name:       c.Name,
			GradeLabel: c.GradeLabel,
			Credits:    c.Credits,
		})
	}

	res := gpa.Evaluate(courses, scale)
	s.metrics.ObserveEvaluation(string(scale), res.Rating.String())
	s.logger.Debug("无状态计算完成",
		zap.String("scale", string(scale)),
		zap.Int("courses", len(courses)),
		zap.Float64("gpa", res.GPA),
	)

	out := toGPAResultResponse(res)
	return &out, nil
}
