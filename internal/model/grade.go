package model

import (
	"fmt"

	apperrors "github.com/fahadturjmi/GPA-Calculator/pkg/errors"
)

// GradeScale 评分体系（全局生效，不区分课程）
type GradeScale string

const (
	Scale4 GradeScale = "4.0"
	Scale5 GradeScale = "5.0"
)

// Scales 全部可选评分体系
var Scales = []GradeScale{Scale4, Scale5}

// ParseGradeScale 将字符串解析为评分体系
func ParseGradeScale(s string) (GradeScale, error) {
	switch GradeScale(s) {
	case Scale4, Scale5:
		return GradeScale(s), nil
	default:
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidScale, s)
	}
}

// Valid 是否为已知评分体系
func (s GradeScale) Valid() bool {
	return s == Scale4 || s == Scale5
}

// MaxGPA 该体系下的满分绩点；非 4.0 一律按 5.0 处理
func (s GradeScale) MaxGPA() float64 {
	if s == Scale4 {
		return 4.0
	}
	return 5.0
}

// GradeOption 等级 → 两套体系下的绩点（静态常量，启动后不可变）
type GradeOption struct {
	Label             string  `json:"label"`
	DisplayName       string  `json:"display_name"`
	PointsOnFourScale float64 `json:"points_4"`
	PointsOnFiveScale float64 `json:"points_5"`
}

// Points 按评分体系取绩点
func (g GradeOption) Points(scale GradeScale) float64 {
	if scale == Scale4 {
		return g.PointsOnFourScale
	}
	return g.PointsOnFiveScale
}
