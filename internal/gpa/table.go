// Package gpa 实现累计绩点计算的核心规则：等级对照表、加权平均与评级分档。
// 包内无状态、无 I/O，所有函数对相同输入返回相同结果。
package gpa

import "github.com/fahadturjmi/GPA-Calculator/internal/model"

// DefaultCredits 新增课程的默认学分
const DefaultCredits = 3

// gradeTable 等级对照表，按从高到低排列（顺序只影响展示）
// 两套体系分别存储，5.0 体系并非 4.0 的线性换算
var gradeTable = [...]model.GradeOption{
	{Label: "A+", DisplayName: "أ+ (A+)", PointsOnFourScale: 4.0, PointsOnFiveScale: 5.0},
	{Label: "A", DisplayName: "أ (A)", PointsOnFourScale: 3.75, PointsOnFiveScale: 4.75},
	{Label: "B+", DisplayName: "ب+ (B+)", PointsOnFourScale: 3.5, PointsOnFiveScale: 4.5},
	{Label: "B", DisplayName: "ب (B)", PointsOnFourScale: 3.0, PointsOnFiveScale: 4.0},
	{Label: "C+", DisplayName: "ج+ (C+)", PointsOnFourScale: 2.5, PointsOnFiveScale: 3.5},
	{Label: "C", DisplayName: "ج (C)", PointsOnFourScale: 2.0, PointsOnFiveScale: 3.0},
	{Label: "D+", DisplayName: "د+ (D+)", PointsOnFourScale: 1.5, PointsOnFiveScale: 2.5},
	{Label: "D", DisplayName: "د (D)", PointsOnFourScale: 1.0, PointsOnFiveScale: 2.0},
	{Label: "F", DisplayName: "هـ (F)", PointsOnFourScale: 0.0, PointsOnFiveScale: 1.0},
}

var gradeIndex = func() map[string]int {
	idx := make(map[string]int, len(gradeTable))
	for i, g := range gradeTable {
		idx[g.Label] = i
	}
	return idx
}()

var creditOptions = [...]int{1, 2, 3, 4, 5, 6}

// GradeOptions 返回对照表副本（从高到低）
func GradeOptions() []model.GradeOption {
	out := make([]model.GradeOption, len(gradeTable))
	copy(out, gradeTable[:])
	return out
}

// Lookup 按等级标签精确匹配；空标签或未知标签返回 false
func Lookup(label string) (model.GradeOption, bool) {
	if label == "" {
		return model.GradeOption{}, false
	}
	i, ok := gradeIndex[label]
	if !ok {
		return model.GradeOption{}, false
	}
	return gradeTable[i], true
}

// IsKnownLabel 标签是否存在于对照表
func IsKnownLabel(label string) bool {
	_, ok := Lookup(label)
	return ok
}

// CreditOptions 输入端可选的学分值
func CreditOptions() []int {
	out := make([]int, len(creditOptions))
	copy(out, creditOptions[:])
	return out
}
