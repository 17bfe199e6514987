package repository

import "github.com/fahadturjmi/GPA-Calculator/pkg/memstore"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Workspace WorkspaceRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(store *memstore.Client) *Repository {
	return &Repository{
		Workspace: NewWorkspaceRepo(store),
	}
}
