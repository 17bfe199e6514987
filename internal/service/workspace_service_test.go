package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
	"github.com/fahadturjmi/GPA-Calculator/pkg/metrics"
)

// ── 测试辅助 ──

func setupTestWorkspaceService(seed bool) (*workspaceService, *mockWorkspaceRepo) {
	wsRepo := newMockWorkspaceRepo()
	cfg := &config.SessionConfig{DefaultScale: "5.0", SeedSample: seed}
	svc := NewWorkspaceService(cfg, newMockRepository(wsRepo), metrics.NewNop(), zap.NewNop()).(*workspaceService)
	svc.newID = seqID("id")
	return svc, wsRepo
}

func mustEnsure(t *testing.T, svc WorkspaceService) string {
	t.Helper()
	id, _, err := svc.Ensure(context.Background(), "")
	if err != nil {
		t.Fatalf("Ensure 应成功: %v", err)
	}
	return id
}

func intPtr(v int) *int { return &v }
func strPtr(v string) *string { return &v }
func f64(p *float64) float64 { return *p }

// ── Ensure 测试 ──

func TestWorkspaceService_Ensure_CreatesWithSample(t *testing.T) {
	svc, repo := setupTestWorkspaceService(true)

	id, created, err := svc.Ensure(context.Background(), "")
	if err != nil {
		t.Fatalf("Ensure 应成功: %v", err)
	}
	if !created {
		t.Error("期望新建工作区")
	}

	ws := repo.workspaces[id]
	if ws == nil {
		t.Fatal("工作区未写入存储")
	}
	if len(ws.Courses) != 2 {
		t.Fatalf("期望 2 门示例课程，实际=%d", len(ws.Courses))
	}
	if ws.Courses[0].GradeLabel != "A+" || ws.Courses[0].Credits != 3 {
		t.Errorf("第一门示例课程不符: %+v", ws.Courses[0])
	}
	if ws.Courses[1].GradeLabel != "B+" || ws.Courses[1].Credits != 4 {
		t.Errorf("第二门示例课程不符: %+v", ws.Courses[1])
	}
	if ws.Scale != "5.0" {
		t.Errorf("期望默认体系 5.0，实际=%s", ws.Scale)
	}
}

func TestWorkspaceService_Ensure_ReusesExisting(t *testing.T) {
	svc, _ := setupTestWorkspaceService(false)
	id := mustEnsure(t, svc)

	got, created, err := svc.Ensure(context.Background(), id)
	if err != nil {
		t.Fatalf("Ensure 应成功: %v", err)
	}
	if created || got != id {
		t.Errorf("期望复用 %s，实际=%s created=%v", id, got, created)
	}
}

func TestWorkspaceService_Ensure_ExpiredIDCreatesNew(t *testing.T) {
	svc, _ := setupTestWorkspaceService(false)

	got, created, err := svc.Ensure(context.Background(), "gone")
	if err != nil {
		t.Fatalf("Ensure 应成功: %v", err)
	}
	if !created || got == "gone" {
		t.Errorf("期望新建工作区，实际=%s created=%v", got, created)
	}
}

func TestWorkspaceService_Ensure_StoreError(t *testing.T) {
	svc, repo := setupTestWorkspaceService(false)
	repo.failGet = true

	_, _, err := svc.Ensure(context.Background(), "any")
	if !errors.Is(err, errMockStore) {
		t.Errorf("期望存储错误透传，实际: %v", err)
	}
}

func TestWorkspaceService_Ensure_InvalidDefaultScaleFallsBack(t *testing.T) {
	svc, repo := setupTestWorkspaceService(false)
	svc.cfg.DefaultScale = "10"

	id := mustEnsure(t, svc)
	if repo.workspaces[id].Scale != "5.0" {
		t.Errorf("期望回退到 5.0，实际=%s", repo.workspaces[id].Scale)
	}
}

// ── Get 测试 ──

func TestWorkspaceService_Get_SampleSummary(t *testing.T) {
	svc, _ := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)

	res, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	// (5×3 + 4.5×4) / 7 = 33/7
	if res.Summary.TotalCredits != 7 {
		t.Errorf("期望总学分 7，实际=%d", res.Summary.TotalCredits)
	}
	if res.Summary.GPADisplay != "4.71" {
		t.Errorf("期望 GPA 4.71，实际=%s", res.Summary.GPADisplay)
	}
	if res.Summary.Rating != "excellent_high" {
		t.Errorf("期望 excellent_high，实际=%s", res.Summary.Rating)
	}
	if res.Summary.Tone != "green" {
		t.Errorf("期望 green，实际=%s", res.Summary.Tone)
	}
	if len(res.Courses) != 2 || res.Courses[0].Points == nil || f64(res.Courses[0].Points) != 5 {
		t.Errorf("课程绩点不符: %+v", res.Courses)
	}
}

func TestWorkspaceService_Get_NotFound(t *testing.T) {
	svc, _ := setupTestWorkspaceService(false)

	_, err := svc.Get(context.Background(), "missing")
	if !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("期望 ErrWorkspaceNotFound，实际: %v", err)
	}
}

func TestWorkspaceService_Get_EmptyWorkspace(t *testing.T) {
	svc, _ := setupTestWorkspaceService(false)
	id := mustEnsure(t, svc)

	res, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if res.Summary.GPA != 0 || res.Summary.Rating != "none" || res.Summary.RatingLabel != "-" {
		t.Errorf("空列表应为 0 / none / -，实际: %+v", res.Summary)
	}
	if res.Summary.Tone != "gray" {
		t.Errorf("期望 gray，实际=%s", res.Summary.Tone)
	}
}

// ── AddCourse 测试 ──

func TestWorkspaceService_AddCourse_Defaults(t *testing.T) {
	svc, _ := setupTestWorkspaceService(false)
	id := mustEnsure(t, svc)

	res, err := svc.AddCourse(context.Background(), id, &dto.AddCourseRequest{})
	if err != nil {
		t.Fatalf("AddCourse 应成功: %v", err)
	}
	if len(res.Courses) != 1 {
		t.Fatalf("期望 1 门课程，实际=%d", len(res.Courses))
	}
	c := res.Courses[0]
	if c.Name != "" || c.GradeLabel != "" || c.Credits != 3 {
		t.Errorf("默认值不符: %+v", c)
	}
	if c.Points != nil {
		t.Error("未评分课程绩点应为 nil")
	}
	if res.Summary.TotalCredits != 0 {
		t.Errorf("未评分课程不计学分，实际=%d", res.Summary.TotalCredits)
	}
}

func TestWorkspaceService_AddCourse_AppendsInOrder(t *testing.T) {
	svc, _ := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)

	res, err := svc.AddCourse(context.Background(), id, &dto.AddCourseRequest{
		Name: "الكيمياء", GradeLabel: "C", Credits: intPtr(2),
	})
	if err != nil {
		t.Fatalf("AddCourse 应成功: %v", err)
	}
	if len(res.Courses) != 3 || res.Courses[2].Name != "الكيمياء" {
		t.Fatalf("新课程应追加到末尾: %+v", res.Courses)
	}
	if res.Summary.TotalCredits != 9 {
		t.Errorf("期望总学分 9，实际=%d", res.Summary.TotalCredits)
	}
}

func TestWorkspaceService_AddCourse_NotFound(t *testing.T) {
	svc, _ := setupTestWorkspaceService(false)

	_, err := svc.AddCourse(context.Background(), "missing", &dto.AddCourseRequest{})
	if !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("期望 ErrWorkspaceNotFound，实际: %v", err)
	}
}

// ── UpdateCourse 测试 ──

func TestWorkspaceService_UpdateCourse_PartialFields(t *testing.T) {
	svc, repo := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)
	first := repo.workspaces[id].Courses[0]

	res, err := svc.UpdateCourse(context.Background(), id, first.ID, &dto.UpdateCourseRequest{
		GradeLabel: strPtr("F"),
	})
	if err != nil {
		t.Fatalf("UpdateCourse 应成功: %v", err)
	}
	c := res.Courses[0]
	if c.GradeLabel != "F" || c.Name != first.Name || c.Credits != first.Credits {
		t.Errorf("仅应修改等级: %+v", c)
	}
	if c.Points == nil || f64(c.Points) != 1 {
		t.Errorf("5.0 体系下 F 应为 1，实际=%v", c.Points)
	}
}

func TestWorkspaceService_UpdateCourse_ClearGrade(t *testing.T) {
	svc, repo := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)
	first := repo.workspaces[id].Courses[0]

	res, err := svc.UpdateCourse(context.Background(), id, first.ID, &dto.UpdateCourseRequest{
		GradeLabel: strPtr(""),
	})
	if err != nil {
		t.Fatalf("UpdateCourse 应成功: %v", err)
	}
	if res.Summary.TotalCredits != 4 {
		t.Errorf("清除等级后只剩 4 学分，实际=%d", res.Summary.TotalCredits)
	}
}

func TestWorkspaceService_UpdateCourse_CourseNotFound(t *testing.T) {
	svc, repo := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)
	before := repo.workspaces[id].Clone()

	_, err := svc.UpdateCourse(context.Background(), id, "nope", &dto.UpdateCourseRequest{Name: strPtr("x")})
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
	if len(repo.workspaces[id].Courses) != len(before.Courses) {
		t.Error("失败的更新不应提交")
	}
}

// ── RemoveCourse / ClearCourses 测试 ──

func TestWorkspaceService_RemoveCourse(t *testing.T) {
	svc, repo := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)
	courses := repo.workspaces[id].Courses

	res, err := svc.RemoveCourse(context.Background(), id, courses[0].ID)
	if err != nil {
		t.Fatalf("RemoveCourse 应成功: %v", err)
	}
	if len(res.Courses) != 1 || res.Courses[0].ID != courses[1].ID {
		t.Errorf("删除后剩余课程不符: %+v", res.Courses)
	}
	// B+ 单独：4.5 / 5 = 90% → 优秀（高）
	if res.Summary.Rating != "excellent_high" {
		t.Errorf("期望 excellent_high，实际=%s", res.Summary.Rating)
	}
}

func TestWorkspaceService_RemoveCourse_NotFound(t *testing.T) {
	svc, _ := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)

	_, err := svc.RemoveCourse(context.Background(), id, "nope")
	if !errors.Is(err, ErrCourseNotFound) {
		t.Errorf("期望 ErrCourseNotFound，实际: %v", err)
	}
}

func TestWorkspaceService_ClearCourses(t *testing.T) {
	svc, _ := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)

	res, err := svc.ClearCourses(context.Background(), id)
	if err != nil {
		t.Fatalf("ClearCourses 应成功: %v", err)
	}
	if len(res.Courses) != 0 || res.Summary.GPA != 0 {
		t.Errorf("清空后应无课程且 GPA 为 0: %+v", res)
	}
	if res.Courses == nil {
		t.Error("Courses 应序列化为 [] 而非 null")
	}
}

// ── SetScale / SetDarkMode 测试 ──

func TestWorkspaceService_SetScale(t *testing.T) {
	svc, _ := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)

	res, err := svc.SetScale(context.Background(), id, "4.0")
	if err != nil {
		t.Fatalf("SetScale 应成功: %v", err)
	}
	// (4×3 + 3.5×4) / 7 = 26/7
	if res.Scale != "4.0" || res.Summary.GPADisplay != "3.71" {
		t.Errorf("切换体系后结果不符: scale=%s gpa=%s", res.Scale, res.Summary.GPADisplay)
	}
	if res.Courses[0].Points == nil || f64(res.Courses[0].Points) != 4 {
		t.Errorf("4.0 体系下 A+ 应为 4，实际=%v", res.Courses[0].Points)
	}
}

func TestWorkspaceService_SetScale_Invalid(t *testing.T) {
	svc, _ := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)

	_, err := svc.SetScale(context.Background(), id, "10.0")
	if !errors.Is(err, ErrInvalidScale) {
		t.Errorf("期望 ErrInvalidScale，实际: %v", err)
	}
}

func TestWorkspaceService_SetDarkMode(t *testing.T) {
	svc, _ := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)

	res, err := svc.SetDarkMode(context.Background(), id, true)
	if err != nil {
		t.Fatalf("SetDarkMode 应成功: %v", err)
	}
	if !res.DarkMode {
		t.Error("期望 DarkMode=true")
	}
	if res.Summary.TotalCredits != 7 {
		t.Error("切换主题不应影响计算结果")
	}
}

// ── Reset 测试 ──

func TestWorkspaceService_Reset(t *testing.T) {
	svc, repo := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)

	if _, err := svc.SetScale(context.Background(), id, "4.0"); err != nil {
		t.Fatalf("SetScale 应成功: %v", err)
	}
	if _, err := svc.ClearCourses(context.Background(), id); err != nil {
		t.Fatalf("ClearCourses 应成功: %v", err)
	}

	res, err := svc.Reset(context.Background(), id)
	if err != nil {
		t.Fatalf("Reset 应成功: %v", err)
	}
	if res.ID != id {
		t.Errorf("重置后应沿用会话 ID %s，实际=%s", id, res.ID)
	}
	if res.Scale != "5.0" || len(res.Courses) != 2 {
		t.Errorf("重置后应恢复默认体系与示例课程: scale=%s courses=%d", res.Scale, len(res.Courses))
	}
	if len(repo.workspaces) != 1 {
		t.Errorf("期望仅 1 个工作区，实际=%d", len(repo.workspaces))
	}
}

func TestWorkspaceService_Reset_NotFound(t *testing.T) {
	svc, _ := setupTestWorkspaceService(false)

	_, err := svc.Reset(context.Background(), "missing")
	if !errors.Is(err, ErrWorkspaceNotFound) {
		t.Errorf("期望 ErrWorkspaceNotFound，实际: %v", err)
	}
}

// ── 指标 ──

func TestWorkspaceService_EvaluationsCountMutationsOnly(t *testing.T) {
	svc, _ := setupTestWorkspaceService(true)
	id := mustEnsure(t, svc)
	counter := svc.metrics.EvaluationsTotal.WithLabelValues("5.0", "excellent_high")

	for i := 0; i < 3; i++ {
		if _, err := svc.Get(context.Background(), id); err != nil {
			t.Fatalf("Get 应成功: %v", err)
		}
		if _, _, err := svc.Ensure(context.Background(), id); err != nil {
			t.Fatalf("Ensure 应成功: %v", err)
		}
	}
	if got := testutil.ToFloat64(counter); got != 0 {
		t.Errorf("读取不应计数，实际=%v", got)
	}

	if _, err := svc.SetDarkMode(context.Background(), id, true); err != nil {
		t.Fatalf("SetDarkMode 应成功: %v", err)
	}
	if got := testutil.ToFloat64(counter); got != 1 {
		t.Errorf("修改后应计数 1，实际=%v", got)
	}
}
