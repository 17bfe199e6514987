package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
	"github.com/fahadturjmi/GPA-Calculator/internal/gpa"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	"github.com/fahadturjmi/GPA-Calculator/internal/repository"
	apperrors "github.com/fahadturjmi/GPA-Calculator/pkg/errors"
	"github.com/fahadturjmi/GPA-Calculator/pkg/metrics"
)

// ── 工作区模块业务错误 ──

var (
	ErrWorkspaceNotFound = errors.New("工作区不存在或已过期")
	ErrCourseNotFound    = errors.New("课程不存在")
	ErrInvalidScale      = apperrors.ErrInvalidScale
)

// WorkspaceService 课程列表（会话状态容器）业务接口
//
// 设计说明：
//   - 每个浏览器会话对应一个工作区，只存于内存，过期即丢弃
//   - 每次修改都生成新快照，并对完整课程列表重新计算 GPA 后返回
//   - 课程顺序在除删除以外的所有操作中保持不变
type WorkspaceService interface {
	// Ensure 返回可用的工作区 ID；id 无效或已过期时新建
	Ensure(ctx context.Context, id string) (string, bool, error)
	Get(ctx context.Context, id string) (*dto.WorkspaceResponse, error)
	AddCourse(ctx context.Context, id string, req *dto.AddCourseRequest) (*dto.WorkspaceResponse, error)
	UpdateCourse(ctx context.Context, id, courseID string, req *dto.UpdateCourseRequest) (*dto.WorkspaceResponse, error)
	RemoveCourse(ctx context.Context, id, courseID string) (*dto.WorkspaceResponse, error)
	ClearCourses(ctx context.Context, id string) (*dto.WorkspaceResponse, error)
	SetScale(ctx context.Context, id, scale string) (*dto.WorkspaceResponse, error)
	SetDarkMode(ctx context.Context, id string, dark bool) (*dto.WorkspaceResponse, error)
	// Reset 丢弃当前工作区，以同一 ID 按默认值重建
	Reset(ctx context.Context, id string) (*dto.WorkspaceResponse, error)
}

type workspaceService struct {
	cfg     *config.SessionConfig
	repo    *repository.Repository
	metrics *metrics.Metrics
	logger  *zap.Logger
	newID   func() string
}

// NewWorkspaceService 创建 WorkspaceService 实例
func NewWorkspaceService(cfg *config.SessionConfig, repo *repository.Repository, m *metrics.Metrics, logger *zap.Logger) WorkspaceService {
	return &workspaceService{
		cfg:     cfg,
		repo:    repo,
		metrics: m,
		logger:  logger,
		newID:   uuid.NewString,
	}
}

// ────────────────────── Ensure ──────────────────────

func (s *workspaceService) Ensure(ctx context.Context, id string) (string, bool, error) {
	if id != "" {
		if _, err := s.repo.Workspace.GetByID(ctx, id); err == nil {
			return id, false, nil
		} else if !errors.Is(err, apperrors.ErrRecordNotFound) {
			s.logger.Error("查询工作区失败", zap.String("session_id", id), zap.Error(err))
			return "", false, err
		}
	}

	ws := s.newWorkspace(s.newID())
	if err := s.repo.Workspace.Create(ctx, ws); err != nil {
		s.logger.Error("创建工作区失败", zap.Error(err))
		return "", false, err
	}
	if s.metrics != nil {
		s.metrics.WorkspacesCreatedTotal.Inc()
	}

	s.logger.Info("新建工作区", zap.String("session_id", ws.ID), zap.Int("courses", len(ws.Courses)))
	return ws.ID, true, nil
}

// ────────────────────── Get ──────────────────────

func (s *workspaceService) Get(ctx context.Context, id string) (*dto.WorkspaceResponse, error) {
	ws, err := s.repo.Workspace.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id)
	}
	return s.toWorkspaceResponse(ws), nil
}

// ────────────────────── AddCourse ──────────────────────

func (s *workspaceService) AddCourse(ctx context.Context, id string, req *dto.AddCourseRequest) (*dto.WorkspaceResponse, error) {
	course := model.Course{
		ID:         s.newID(),
		Name:       req.Name,
		GradeLabel: req.GradeLabel,
		Credits:    gpa.DefaultCredits,
	}
	if req.Credits != nil {
		course.Credits = *req.Credits
	}

	return s.update(ctx, id, func(ws *model.Workspace) error {
		ws.Courses = append(ws.Courses, course)
		return nil
	})
}

// ────────────────────── UpdateCourse ──────────────────────

func (s *workspaceService) UpdateCourse(ctx context.Context, id, courseID string, req *dto.UpdateCourseRequest) (*dto.WorkspaceResponse, error) {
	return s.update(ctx, id, func(ws *model.Workspace) error {
		i := ws.IndexOf(courseID)
		if i < 0 {
			return ErrCourseNotFound
		}

		c := &ws.Courses[i]
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.GradeLabel != nil {
			c.GradeLabel = *req.GradeLabel
		}
		if req.Credits != nil {
			c.Credits = *req.Credits
		}
		return nil
	})
}

// ────────────────────── RemoveCourse ──────────────────────

func (s *workspaceService) RemoveCourse(ctx context.Context, id, courseID string) (*dto.WorkspaceResponse, error) {
	return s.update(ctx, id, func(ws *model.Workspace) error {
		i := ws.IndexOf(courseID)
		if i < 0 {
			return ErrCourseNotFound
		}
		ws.Courses = append(ws.Courses[:i], ws.Courses[i+1:]...)
		return nil
	})
}

// ────────────────────── ClearCourses ──────────────────────

func (s *workspaceService) ClearCourses(ctx context.Context, id string) (*dto.WorkspaceResponse, error) {
	return s.update(ctx, id, func(ws *model.Workspace) error {
		ws.Courses = []model.Course{}
		return nil
	})
}

// ────────────────────── SetScale ──────────────────────

func (s *workspaceService) SetScale(ctx context.Context, id, scale string) (*dto.WorkspaceResponse, error) {
	sc, err := model.ParseGradeScale(scale)
	if err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(ws *model.Workspace) error {
		ws.Scale = sc
		return nil
	})
}

// ────────────────────── SetDarkMode ──────────────────────

func (s *workspaceService) SetDarkMode(ctx context.Context, id string, dark bool) (*dto.WorkspaceResponse, error) {
	return s.update(ctx, id, func(ws *model.Workspace) error {
		ws.DarkMode = dark
		return nil
	})
}

// ────────────────────── Reset ──────────────────────

func (s *workspaceService) Reset(ctx context.Context, id string) (*dto.WorkspaceResponse, error) {
	if err := s.repo.Workspace.Delete(ctx, id); err != nil {
		return nil, s.mapRepoError(err, id)
	}

	ws := s.newWorkspace(id)
	if err := s.repo.Workspace.Create(ctx, ws); err != nil {
		s.logger.Error("重建工作区失败", zap.String("session_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("工作区已重置", zap.String("session_id", id))
	res := s.toWorkspaceResponse(ws)
	s.metrics.ObserveEvaluation(res.Summary.Scale, res.Summary.Rating)
	return res, nil
}

// ── 内部辅助方法 ──

// newWorkspace 按会话配置生成默认工作区
func (s *workspaceService) newWorkspace(id string) *model.Workspace {
	scale, err := model.ParseGradeScale(s.cfg.DefaultScale)
	if err != nil {
		scale = model.Scale5
	}

	ws := &model.Workspace{
		ID:      id,
		Scale:   scale,
		Courses: []model.Course{},
	}
	if s.cfg.SeedSample {
		ws.Courses = s.sampleCourses()
	}
	return ws
}

func (s *workspaceService) update(ctx context.Context, id string, fn func(ws *model.Workspace) error) (*dto.WorkspaceResponse, error) {
	ws, err := s.repo.Workspace.Update(ctx, id, fn)
	if err != nil {
		return nil, s.mapRepoError(err, id)
	}
	res := s.toWorkspaceResponse(ws)
	s.metrics.ObserveEvaluation(res.Summary.Scale, res.Summary.Rating)
	return res, nil
}

func (s *workspaceService) mapRepoError(err error, id string) error {
	switch {
	case errors.Is(err, apperrors.ErrRecordNotFound):
		return ErrWorkspaceNotFound
	case errors.Is(err, ErrCourseNotFound):
		return err
	default:
		s.logger.Error("访问工作区失败", zap.String("session_id", id), zap.Error(err))
		return err
	}
}

// sampleCourses 新工作区的示例课程
func (s *workspaceService) sampleCourses() []model.Course {
	return []model.Course{
		{ID: s.newID(), Name: "الرياضيات 101", GradeLabel: "A+", Credits: 3},
		{ID: s.newID(), Name: "الفيزياء العامة", GradeLabel: "B+", Credits: 4},
	}
}

func (s *workspaceService) toWorkspaceResponse(ws *model.Workspace) *dto.WorkspaceResponse {
	res := gpa.Evaluate(ws.Courses, ws.Scale)

	courses := make([]dto.CourseResponse, 0, len(ws.Courses))
	for _, c := range ws.Courses {
		courses = append(courses, toCourseResponse(c, ws.Scale))
	}

	return &dto.WorkspaceResponse{
		ID:        ws.ID,
		Scale:     string(ws.Scale),
		DarkMode:  ws.DarkMode,
		Courses:   courses,
		Summary:   toGPAResultResponse(res),
		UpdatedAt: ws.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
