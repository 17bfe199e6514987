// Package web 提供内嵌的 HTML 报告模板。
//
// 报告页为 RTL 布局，柱状图以内联 SVG 绘制，打印 / 另存为 PDF 交给浏览器。
package web

import (
	"crypto/sha256"
	"embed"
	"encoding/base64"
	"html/template"
	"strconv"

	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
)

//go:embed templates/*.html
var templateFS embed.FS

// 图表画布尺寸（像素）
const (
	chartWidth   = 640.0
	chartHeight  = 300.0
	chartPadLeft = 40.0
	chartPadTop  = 16.0
	chartPadBot  = 56.0
	barFill      = 0.6 // 柱宽占槽宽的比例
)

// printAction 打印按钮的内联处理器，报告页唯一的脚本
const printAction = "window.print()"

// reportCSP 报告页只有内联样式、内联 SVG 与打印按钮的事件处理器
var reportCSP = "default-src 'none'; " +
	"style-src 'unsafe-inline'; " +
	"script-src 'unsafe-hashes' 'sha256-" + scriptHash(printAction) + "'; " +
	"img-src data:; base-uri 'none'; form-action 'none'; frame-ancestors 'none'"

// ReportCSP 报告页的 Content-Security-Policy
func ReportCSP() string { return reportCSP }

func scriptHash(src string) string {
	sum := sha256.Sum256([]byte(src))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// Templates 解析全部内嵌模板，供 gin.Engine.SetHTMLTemplate 使用
func Templates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"chartLayout": ChartLayout,
		"toneClass":   toneClass,
		"printAction": func() template.JS { return template.JS(printAction) },
	}).ParseFS(templateFS, "templates/*.html")
}

// SVGChart 柱状图的绘制坐标
type SVGChart struct {
	Width  float64
	Height float64
	AxisX  float64
	BaseY  float64
	Right  float64
	Ticks  []SVGTick
	Bars   []SVGBar
}

// SVGTick 纵轴刻度
type SVGTick struct {
	Y     float64
	Label string
}

// SVGBar 单根柱子
type SVGBar struct {
	X, Y, W, H float64
	CenterX    float64
	Label      string
	Value      string
}

// ChartLayout 将报告图表数据换算为 SVG 坐标；纵轴上限取评分体系满分
func ChartLayout(ch dto.ReportChart) SVGChart {
	plotH := chartHeight - chartPadTop - chartPadBot
	plotW := chartWidth - chartPadLeft
	baseY := chartPadTop + plotH

	out := SVGChart{
		Width:  chartWidth,
		Height: chartHeight,
		AxisX:  chartPadLeft,
		BaseY:  baseY,
		Right:  chartWidth,
	}

	if ch.AxisMax <= 0 {
		return out
	}

	for _, t := range ch.Ticks {
		out.Ticks = append(out.Ticks, SVGTick{
			Y:     baseY - t/ch.AxisMax*plotH,
			Label: strconv.FormatFloat(t, 'f', -1, 64),
		})
	}

	if len(ch.Bars) == 0 {
		return out
	}
	slot := plotW / float64(len(ch.Bars))
	w := slot * barFill
	for i, b := range ch.Bars {
		h := b.Ratio * plotH
		x := chartPadLeft + float64(i)*slot + (slot-w)/2
		out.Bars = append(out.Bars, SVGBar{
			X:       x,
			Y:       baseY - h,
			W:       w,
			H:       h,
			CenterX: x + w/2,
			Label:   b.Label,
			Value:   strconv.FormatFloat(b.Value, 'f', -1, 64),
		})
	}
	return out
}

func toneClass(tone string) string {
	switch tone {
	case "green", "blue", "yellow", "orange", "red":
		return "tone-" + tone
	default:
		return "tone-gray"
	}
}
