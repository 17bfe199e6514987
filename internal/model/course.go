package model

import "time"

// Course 课程记录 — 仅 GradeLabel 与 Credits 参与计算
type Course struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	GradeLabel string `json:"grade_label"` // 为空表示未评分
	Credits    int    `json:"credits"`
}

// Workspace 会话状态容器：课程列表 + 评分体系 + 主题
// 存储层只保存快照，每次修改都生成新的 Courses 切片
type Workspace struct {
	ID        string     `json:"id"`
	Courses   []Course   `json:"courses"`
	Scale     GradeScale `json:"scale"`
	DarkMode  bool       `json:"dark_mode"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Clone 深拷贝，调用方可安全修改返回值
func (w *Workspace) Clone() *Workspace {
	cp := *w
	cp.Courses = make([]Course, len(w.Courses))
	copy(cp.Courses, w.Courses)
	return &cp
}

// IndexOf 按 ID 查找课程下标，未找到返回 -1
func (w *Workspace) IndexOf(courseID string) int {
	for i := range w.Courses {
		if w.Courses[i].ID == courseID {
			return i
		}
	}
	return -1
}
