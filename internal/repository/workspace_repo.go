package repository

import (
	"context"
	"sync"
	"time"

	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	apperrors "github.com/fahadturjmi/GPA-Calculator/pkg/errors"
	"github.com/fahadturjmi/GPA-Calculator/pkg/memstore"
)

// WorkspaceRepository 工作区（课程列表）数据访问接口
// 读写均以快照为单位：返回值是副本，修改需经 Update 提交
type WorkspaceRepository interface {
	Create(ctx context.Context, ws *model.Workspace) error
	GetByID(ctx context.Context, id string) (*model.Workspace, error)
	Update(ctx context.Context, id string, fn func(ws *model.Workspace) error) (*model.Workspace, error)
	Delete(ctx context.Context, id string) error
}

const workspacePrefix = "workspace:"

type workspaceRepo struct {
	store *memstore.Client
	mu    sync.Mutex // 所有对工作区键的写入（含续期）都在锁内
	now   func() time.Time
}

// NewWorkspaceRepo 创建 WorkspaceRepository 实例
func NewWorkspaceRepo(store *memstore.Client) WorkspaceRepository {
	return &workspaceRepo{store: store, now: time.Now}
}

func (r *workspaceRepo) Create(_ context.Context, ws *model.Workspace) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	ws.CreatedAt = now
	ws.UpdatedAt = now
	r.store.Set(workspacePrefix+ws.ID, ws.Clone())
	return nil
}

// GetByID 读取快照副本并续期；续期写回与 Update 共用同一把锁
func (r *workspaceRepo) GetByID(_ context.Context, id string) (*model.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ws, err := r.load(id)
	if err != nil {
		return nil, err
	}
	r.store.Set(workspacePrefix+id, ws)
	return ws.Clone(), nil
}

// Update 在锁内取出快照副本交给 fn 修改，fn 返回错误时不提交
func (r *workspaceRepo) Update(_ context.Context, id string, fn func(ws *model.Workspace) error) (*model.Workspace, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, err := r.load(id)
	if err != nil {
		return nil, err
	}

	next := cur.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	next.UpdatedAt = r.now()

	r.store.Set(workspacePrefix+id, next)
	return next.Clone(), nil
}

func (r *workspaceRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := r.load(id); err != nil {
		return err
	}
	r.store.Delete(workspacePrefix + id)
	return nil
}

func (r *workspaceRepo) load(id string) (*model.Workspace, error) {
	if id == "" {
		return nil, apperrors.ErrRecordNotFound
	}
	v, ok := r.store.Get(workspacePrefix + id)
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	ws, ok := v.(*model.Workspace)
	if !ok {
		return nil, apperrors.ErrRecordNotFound
	}
	return ws, nil
}
