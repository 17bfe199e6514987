package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	apperrors "github.com/fahadturjmi/GPA-Calculator/pkg/errors"
	"github.com/fahadturjmi/GPA-Calculator/pkg/memstore"
)

func setupTestWorkspaceRepo(ttl time.Duration) WorkspaceRepository {
	store := memstore.NewClient(&config.SessionConfig{TTL: ttl, CleanupInterval: time.Minute}, zap.NewNop())
	return NewRepository(store).Workspace
}

func seedWorkspace(t *testing.T, repo WorkspaceRepository) *model.Workspace {
	t.Helper()
	ws := &model.Workspace{
		ID:    "ws-1",
		Scale: model.Scale5,
		Courses: []model.Course{
			{ID: "c1", Name: "الرياضيات 101", GradeLabel: "A+", Credits: 3},
		},
	}
	require.NoError(t, repo.Create(context.Background(), ws))
	return ws
}

func TestWorkspaceRepo_CreateAndGet(t *testing.T) {
	repo := setupTestWorkspaceRepo(time.Hour)
	seedWorkspace(t, repo)

	ws, err := repo.GetByID(context.Background(), "ws-1")
	require.NoError(t, err)
	assert.Equal(t, model.Scale5, ws.Scale)
	require.Len(t, ws.Courses, 1)
	assert.False(t, ws.CreatedAt.IsZero())
}

func TestWorkspaceRepo_GetReturnsCopy(t *testing.T) {
	repo := setupTestWorkspaceRepo(time.Hour)
	seedWorkspace(t, repo)

	ws, _ := repo.GetByID(context.Background(), "ws-1")
	ws.Courses[0].Name = "改名"
	ws.Courses = append(ws.Courses, model.Course{ID: "c2"})

	again, _ := repo.GetByID(context.Background(), "ws-1")
	assert.Equal(t, "الرياضيات 101", again.Courses[0].Name)
	assert.Len(t, again.Courses, 1)
}

func TestWorkspaceRepo_GetNotFound(t *testing.T) {
	repo := setupTestWorkspaceRepo(time.Hour)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)

	_, err = repo.GetByID(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
}

func TestWorkspaceRepo_UpdateSnapshot(t *testing.T) {
	repo := setupTestWorkspaceRepo(time.Hour)
	seedWorkspace(t, repo)

	before, _ := repo.GetByID(context.Background(), "ws-1")

	after, err := repo.Update(context.Background(), "ws-1", func(ws *model.Workspace) error {
		ws.Courses = append(ws.Courses, model.Course{ID: "c2", Credits: 3})
		ws.Scale = model.Scale4
		ws.ID = "hijack"
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "ws-1", after.ID)
	assert.Len(t, after.Courses, 2)
	assert.Equal(t, model.Scale4, after.Scale)
	assert.Equal(t, before.CreatedAt, after.CreatedAt)

	// 旧快照不受影响
	assert.Len(t, before.Courses, 1)
	assert.Equal(t, model.Scale5, before.Scale)
}

func TestWorkspaceRepo_UpdateAbortOnError(t *testing.T) {
	repo := setupTestWorkspaceRepo(time.Hour)
	seedWorkspace(t, repo)
	boom := errors.New("boom")

	_, err := repo.Update(context.Background(), "ws-1", func(ws *model.Workspace) error {
		ws.Courses = nil
		return boom
	})
	assert.ErrorIs(t, err, boom)

	ws, _ := repo.GetByID(context.Background(), "ws-1")
	assert.Len(t, ws.Courses, 1)
}

func TestWorkspaceRepo_Delete(t *testing.T) {
	repo := setupTestWorkspaceRepo(time.Hour)
	seedWorkspace(t, repo)

	require.NoError(t, repo.Delete(context.Background(), "ws-1"))
	_, err := repo.GetByID(context.Background(), "ws-1")
	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)

	assert.ErrorIs(t, repo.Delete(context.Background(), "ws-1"), apperrors.ErrRecordNotFound)
}

func TestWorkspaceRepo_Expires(t *testing.T) {
	repo := setupTestWorkspaceRepo(30 * time.Millisecond)
	seedWorkspace(t, repo)

	time.Sleep(60 * time.Millisecond)

	_, err := repo.GetByID(context.Background(), "ws-1")
	assert.ErrorIs(t, err, apperrors.ErrRecordNotFound)
}

func TestWorkspaceRepo_GetRefreshesTTL(t *testing.T) {
	repo := setupTestWorkspaceRepo(80 * time.Millisecond)
	seedWorkspace(t, repo)

	for i := 0; i < 4; i++ {
		time.Sleep(40 * time.Millisecond)
		_, err := repo.GetByID(context.Background(), "ws-1")
		require.NoError(t, err, "第 %d 次读取前应已续期", i+1)
	}
}

func TestWorkspaceRepo_ConcurrentGetDoesNotLoseUpdates(t *testing.T) {
	repo := setupTestWorkspaceRepo(time.Hour)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &model.Workspace{ID: "ws-1", Scale: model.Scale5}))

	const adds = 2000
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_, _ = repo.GetByID(ctx, "ws-1")
				}
			}
		}()
	}

	for i := 0; i < adds; i++ {
		id := "c" + strconv.Itoa(i)
		_, err := repo.Update(ctx, "ws-1", func(ws *model.Workspace) error {
			ws.Courses = append(ws.Courses, model.Course{ID: id, Credits: 3})
			return nil
		})
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()

	ws, err := repo.GetByID(ctx, "ws-1")
	require.NoError(t, err)
	assert.Len(t, ws.Courses, adds)
}
