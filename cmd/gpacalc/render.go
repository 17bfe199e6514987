package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/fahadturjmi/GPA-Calculator/internal/gpa"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	"github.com/fahadturjmi/GPA-Calculator/internal/report"
)

// 评级色调到终端颜色
var toneColors = map[gpa.Tone]lipgloss.Color{
	gpa.ToneGreen:  lipgloss.Color("#22C55E"),
	gpa.ToneBlue:   lipgloss.Color("#3B82F6"),
	gpa.ToneYellow: lipgloss.Color("#EAB308"),
	gpa.ToneOrange: lipgloss.Color("#F97316"),
	gpa.ToneRed:    lipgloss.Color("#EF4444"),
	gpa.ToneGray:   lipgloss.Color("#9CA3AF"),
}

var (
	colorAccent = lipgloss.Color("#1D4ED8")
	colorMuted  = lipgloss.Color("#6B7280")

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 2)
)

// 表格列宽
const (
	colName    = 28
	colCredits = 10
	colGrade   = 8
	colPoints  = 8
)

func ratingStyle(t gpa.Tone) lipgloss.Style {
	c, ok := toneColors[t]
	if !ok {
		c = toneColors[gpa.ToneGray]
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}

func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(s)
}

func row(cols ...string) string {
	widths := []int{colName, colCredits, colGrade, colPoints}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = cell(c, widths[i])
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderSummary 汇总框：GPA、总绩点、总学分、评级
func renderSummary(res gpa.Result) string {
	points := res.TotalPoints
	lines := []string{
		titleStyle.Render("المعدل التراكمي: " + report.FormatGPA(res.GPA) + " / " + string(res.Scale)),
		"إجمالي النقاط: " + report.FormatPoints(&points),
		fmt.Sprintf("إجمالي الساعات: %d", res.TotalCredits),
		"التقدير العام: " + ratingStyle(res.Tone()).Render(res.RatingLabel()+" ("+res.Rating.String()+")"),
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderEvaluation 汇总框 + 课程明细
func renderEvaluation(courses []model.Course, res gpa.Result) string {
	if len(courses) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, renderSummary(res), mutedStyle.Render("لا توجد مواد مضافة"))
	}

	lines := []string{headerStyle.Render(row("المادة", "الساعات", "الدرجة", "النقاط"))}
	for _, c := range courses {
		name := c.Name
		if name == "" {
			name = "-"
		}
		grade, points := "-", "-"
		if g, ok := gpa.Lookup(c.GradeLabel); ok {
			grade = g.Label
			p := g.Points(res.Scale)
			points = report.FormatPoints(&p)
		}
		lines = append(lines, row(name, fmt.Sprint(c.Credits), grade, points))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderSummary(res),
		"",
		lipgloss.JoinVertical(lipgloss.Left, lines...),
	)
}

// renderGradeTable 等级对照表
func renderGradeTable(opts []model.GradeOption) string {
	widths := []int{8, 12, 8, 8}
	line := func(cols ...string) string {
		parts := make([]string, len(cols))
		for i, c := range cols {
			parts[i] = cell(c, widths[i])
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	lines := []string{headerStyle.Render(line("Grade", "الدرجة", "4.0", "5.0"))}
	for _, o := range opts {
		p4, p5 := o.PointsOnFourScale, o.PointsOnFiveScale
		lines = append(lines, line(o.Label, o.DisplayName, report.FormatPoints(&p4), report.FormatPoints(&p5)))
	}
	lines = append(lines, "", mutedStyle.Render(fmt.Sprintf("الساعات المتاحة: %v (الافتراضي %d)", gpa.CreditOptions(), gpa.DefaultCredits)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderExported(path string, res gpa.Result) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderSummary(res),
		mutedStyle.Render("تم حفظ التقرير: "+path),
	)
}
