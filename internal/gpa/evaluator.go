package gpa

import "github.com/fahadturjmi/GPA-Calculator/internal/model"

// Result 一次计算的完整结果，每次输入变化都整体重算
type Result struct {
	Scale        model.GradeScale `json:"scale"`
	GPA          float64          `json:"gpa"`
	TotalPoints  float64          `json:"total_points"`
	TotalCredits int              `json:"total_credits"`
	Rating       Rating           `json:"rating"`
}

// Tone 评级色调
func (r Result) Tone() Tone { return r.Rating.Tone() }

// RatingLabel 评级展示文字
func (r Result) RatingLabel() string { return r.Rating.Label() }

// Evaluate 计算加权平均绩点并分档。
//
// 未评分或标签不在对照表中的课程不计入分子和分母；学分不做校验，按原值参与运算。
// 没有任何已评分课程时 GPA 为 0，评级为 RatingNone。
func Evaluate(courses []model.Course, scale model.GradeScale) Result {
	var (
		totalPoints  float64
		totalCredits int
	)

	for _, c := range courses {
		g, ok := Lookup(c.GradeLabel)
		if !ok {
			continue
		}
		totalPoints += g.Points(scale) * float64(c.Credits)
		totalCredits += c.Credits
	}

	res := Result{
		Scale:        scale,
		TotalPoints:  totalPoints,
		TotalCredits: totalCredits,
		Rating:       RatingNone,
	}
	if totalCredits > 0 {
		res.GPA = totalPoints / float64(totalCredits)
		res.Rating = Classify(res.GPA, scale)
	}
	return res
}

// CoursePoints 单门课程在该体系下的绩点，未评分为 0（图表用）
func CoursePoints(c model.Course, scale model.GradeScale) float64 {
	g, ok := Lookup(c.GradeLabel)
	if !ok {
		return 0
	}
	return g.Points(scale)
}
