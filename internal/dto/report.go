package dto

// ── 报告 DTO ──

// ReportResponse 报告数据（JSON 与 HTML 共用）
type ReportResponse struct {
	GeneratedAt string            `json:"generated_at"`
	Scale       string            `json:"scale"`
	DarkMode    bool              `json:"dark_mode"`
	Summary     GPAResultResponse `json:"summary"`
	Rows        []ReportRow       `json:"rows"`
	Chart       ReportChart       `json:"chart"`
}

// ReportRow 明细表行
type ReportRow struct {
	Name          string   `json:"name"`
	Credits       int      `json:"credits"`
	GradeLabel    string   `json:"grade_label"`
	Points        *float64 `json:"points"`
	PointsDisplay string   `json:"points_display"`
}

// ReportChart 柱状图
type ReportChart struct {
	AxisMax float64     `json:"axis_max"`
	Ticks   []float64   `json:"ticks"`
	Bars    []ReportBar `json:"bars"`
}

// ReportBar 柱子；Ratio 为相对坐标轴最大值的比例
type ReportBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Ratio float64 `json:"ratio"`
}
