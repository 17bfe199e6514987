// Package report 负责把课程列表与计算结果组装为可打印报告：
// 汇总卡片、课程明细表、逐课绩点柱状图，以及 Excel 导出。
package report

import (
	"math"
	"strconv"
	"time"

	"github.com/fahadturjmi/GPA-Calculator/internal/gpa"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
)

// UnnamedCourse 图表中未命名课程的占位标签
const UnnamedCourse = "مادة بدون اسم"

// Report 报告数据（与渲染方式无关）
type Report struct {
	GeneratedAt time.Time
	Scale       model.GradeScale
	Summary     gpa.Result
	Rows        []Row
	Chart       Chart
}

// Row 明细表一行
type Row struct {
	Name       string
	Credits    int
	GradeLabel string
	Points     *float64 // 未评分为 nil
}

// Chart 逐课绩点柱状图
type Chart struct {
	AxisMax float64
	Ticks   []float64
	Bars    []Bar
}

// Bar 单根柱子；Ratio = Value / AxisMax，取值 [0,1]
type Bar struct {
	Label string
	Value float64
	Ratio float64
}

// Build 组装报告；courses 顺序即展示顺序
func Build(courses []model.Course, scale model.GradeScale, generatedAt time.Time) *Report {
	r := &Report{
		GeneratedAt: generatedAt,
		Scale:       scale,
		Summary:     gpa.Evaluate(courses, scale),
		Rows:        make([]Row, 0, len(courses)),
		Chart:       buildChart(courses, scale),
	}

	for _, c := range courses {
		row := Row{Name: c.Name, Credits: c.Credits, GradeLabel: c.GradeLabel}
		if row.Name == "" {
			row.Name = "-"
		}
		if g, ok := gpa.Lookup(c.GradeLabel); ok {
			p := g.Points(scale)
			row.Points = &p
		}
		r.Rows = append(r.Rows, row)
	}

	return r
}

func buildChart(courses []model.Course, scale model.GradeScale) Chart {
	axisMax := scale.MaxGPA()
	ch := Chart{
		AxisMax: axisMax,
		Bars:    make([]Bar, 0, len(courses)),
	}
	for v := 0.0; v <= axisMax; v++ {
		ch.Ticks = append(ch.Ticks, v)
	}

	for _, c := range courses {
		label := c.Name
		if label == "" {
			label = UnnamedCourse
		}
		v := gpa.CoursePoints(c, scale)
		ch.Bars = append(ch.Bars, Bar{
			Label: label,
			Value: v,
			Ratio: math.Max(0, math.Min(1, v/axisMax)),
		})
	}
	return ch
}

// FormatGPA 保留两位小数
func FormatGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatPoints 绩点原样输出（3.75 / 4.5 / 4）；nil 为 "-"
func FormatPoints(p *float64) string {
	if p == nil {
		return "-"
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
