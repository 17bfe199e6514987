package dto

// ── 课程列表 DTO ──

// AddCourseRequest 新增课程请求；字段均可省略，省略时取默认值（空名称、未评分、3 学分）
type AddCourseRequest struct {
	Name       string `json:"name"`
	GradeLabel string `json:"grade_label" binding:"omitempty,gradelabel"`
	Credits    *int   `json:"credits"`
}

// UpdateCourseRequest 按字段更新课程；nil 表示不修改
type UpdateCourseRequest struct {
	Name       *string `json:"name"`
	GradeLabel *string `json:"grade_label" binding:"omitempty,gradelabel"`
	Credits    *int    `json:"credits"`
}

// Empty 是否没有任何待更新字段
func (r *UpdateCourseRequest) Empty() bool {
	return r.Name == nil && r.GradeLabel == nil && r.Credits == nil
}

// SetScaleRequest 切换评分体系
type SetScaleRequest struct {
	Scale string `json:"scale" binding:"required,oneof=4.0 5.0"`
}

// SetThemeRequest 切换深色模式
type SetThemeRequest struct {
	DarkMode *bool `json:"dark_mode" binding:"required"`
}

// CourseResponse 课程信息
type CourseResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	GradeLabel string   `json:"grade_label"`
	Credits    int      `json:"credits"`
	Points     *float64 `json:"points"` // 当前体系下的绩点，未评分为 null
}

// WorkspaceResponse 工作区快照 + 实时计算结果
type WorkspaceResponse struct {
	ID        string            `json:"id"`
	Scale     string            `json:"scale"`
	DarkMode  bool              `json:"dark_mode"`
	Courses   []CourseResponse  `json:"courses"`
	Summary   GPAResultResponse `json:"summary"`
	UpdatedAt string            `json:"updated_at"`
}
