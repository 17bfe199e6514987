package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	"github.com/fahadturjmi/GPA-Calculator/internal/repository"
	apperrors "github.com/fahadturjmi/GPA-Calculator/pkg/errors"
)

var errMockStore = errors.New("mock store failure")

// ── Mock WorkspaceRepository ──

type mockWorkspaceRepo struct {
	workspaces map[string]*model.Workspace
	failGet    bool
	now        time.Time
}

func newMockWorkspaceRepo() *mockWorkspaceRepo {
	return &mockWorkspaceRepo{
		workspaces: make(map[string]*model.Workspace),
		now:        time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (m *mockWorkspaceRepo) Create(_ context.Context, ws *model.Workspace) error {
	ws.CreatedAt = m.now
	ws.UpdatedAt = m.now
	m.workspaces[ws.ID] = ws.Clone()
	return nil
}

func (m *mockWorkspaceRepo) GetByID(_ context.Context, id string) (*model.Workspace, error) {
	if m.failGet {
		return nil, errMockStore
	}
	if ws, ok := m.workspaces[id]; ok {
		return ws.Clone(), nil
	}
	return nil, apperrors.ErrRecordNotFound
}

func (m *mockWorkspaceRepo) Update(_ context.Context, id string, fn func(ws *model.Workspace) error) (*model.Workspace, error) {
	cur, ok := m.workspaces[id]
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.UpdatedAt = m.now
	m.workspaces[id] = next
	return next.Clone(), nil
}

func (m *mockWorkspaceRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.workspaces[id]; !ok {
		return apperrors.ErrRecordNotFound
	}
	delete(m.workspaces, id)
	return nil
}

func newMockRepository(ws *mockWorkspaceRepo) *repository.Repository {
	return &repository.Repository{Workspace: ws}
}

// seqID 生成可预测的 ID
func seqID(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
