package dto

// ── 绩点计算 DTO ──

// EvaluateCourse 无状态计算接口中的单门课程
type EvaluateCourse struct {
	Name       string `json:"name"`
	GradeLabel string `json:"grade_label" binding:"omitempty,gradelabel"`
	Credits    int    `json:"credits"`
}

// EvaluateRequest 无状态计算请求
type EvaluateRequest struct {
	Scale   string           `json:"scale"   binding:"required,oneof=4.0 5.0"`
	Courses []EvaluateCourse `json:"courses" binding:"dive"`
}

// GPAResultResponse 计算结果
type GPAResultResponse struct {
	Scale        string  `json:"scale"`
	GPA          float64 `json:"gpa"`
	GPADisplay   string  `json:"gpa_display"` // 两位小数
	TotalPoints  float64 `json:"total_points"`
	TotalCredits int     `json:"total_credits"`
	Rating       string  `json:"rating"`       // 档位键，如 excellent_high
	RatingLabel  string  `json:"rating_label"` // 展示文字
	Tone         string  `json:"tone"`         // 展示色调
}

// GradeOptionResponse 等级对照表条目
type GradeOptionResponse struct {
	Label       string  `json:"label"`
	DisplayName string  `json:"display_name"`
	Points4     float64 `json:"points_4"`
	Points5     float64 `json:"points_5"`
}

// GradeTableResponse 输入端所需的静态选项
type GradeTableResponse struct {
	Grades         []GradeOptionResponse `json:"grades"`
	CreditOptions  []int                 `json:"credit_options"`
	DefaultCredits int                   `json:"default_credits"`
	Scales         []string              `json:"scales"`
}
