package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	reportSheet = "تقرير المعدل"
	chartSheet  = "ChartData"

	detailHeaderRow = 7
)

// WriteXLSX 将报告写为 Excel：汇总区 + 明细表 + 柱状图
//
// 表格布局：
//   - 第 1 行标题，第 2 行生成日期
//   - 第 4/5 行汇总：GPA | 评级 | 总学分 | 评分体系
//   - 第 7 行起明细：课程 | 学分 | 等级 | 绩点
//   - 图表数据写在 ChartData 表（未评分按 0 绘制）
func WriteXLSX(r *Report) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(reportSheet)
	if err != nil {
		return nil, fmt.Errorf("创建工作表失败: %w", err)
	}
	f.SetActiveSheet(idx)
	// 删除默认 Sheet1
	f.DeleteSheet("Sheet1")

	rtl := true
	f.SetSheetView(reportSheet, -1, &excelize.ViewOptions{RightToLeft: &rtl})

	f.SetColWidth(reportSheet, "A", "A", 28)
	f.SetColWidth(reportSheet, "B", "D", 16)

	// 样式
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "#111827"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	gpaStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14, Color: "#1D4ED8"},
		NumFmt:    2, // 0.00
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	centerStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	// 标题
	f.SetCellValue(reportSheet, "A1", "تقرير المعدل التراكمي")
	f.MergeCell(reportSheet, "A1", "D1")
	f.SetCellStyle(reportSheet, "A1", "D1", titleStyle)
	f.SetCellValue(reportSheet, "A2", "تم الاستخراج بتاريخ: "+r.GeneratedAt.Format("2006-01-02"))

	// 汇总
	summaryHeaders := []string{"المعدل التراكمي", "التقدير العام", "إجمالي الساعات", "نظام المعدل"}
	for i, h := range summaryHeaders {
		f.SetCellValue(reportSheet, cell(colName(i), 4), h)
	}
	f.SetCellStyle(reportSheet, "A4", "D4", headerStyle)

	f.SetCellValue(reportSheet, "A5", r.Summary.GPA)
	f.SetCellStyle(reportSheet, "A5", "A5", gpaStyle)
	f.SetCellValue(reportSheet, "B5", r.Summary.RatingLabel())
	f.SetCellValue(reportSheet, "C5", r.Summary.TotalCredits)
	f.SetCellValue(reportSheet, "D5", "/ "+string(r.Scale))
	f.SetCellStyle(reportSheet, "B5", "D5", centerStyle)

	// 明细表
	detailHeaders := []string{"المادة", "الساعات", "الدرجة", "النقاط"}
	for i, h := range detailHeaders {
		f.SetCellValue(reportSheet, cell(colName(i), detailHeaderRow), h)
	}
	f.SetCellStyle(reportSheet, cell("A", detailHeaderRow), cell("D", detailHeaderRow), headerStyle)

	row := detailHeaderRow + 1
	for _, rw := range r.Rows {
		f.SetCellValue(reportSheet, cell("A", row), rw.Name)
		f.SetCellValue(reportSheet, cell("B", row), rw.Credits)
		f.SetCellValue(reportSheet, cell("C", row), rw.GradeLabel)
		if rw.Points != nil {
			f.SetCellValue(reportSheet, cell("D", row), *rw.Points)
		} else {
			f.SetCellValue(reportSheet, cell("D", row), "-")
		}
		f.SetCellStyle(reportSheet, cell("B", row), cell("D", row), centerStyle)
		row++
	}

	if len(r.Chart.Bars) > 0 {
		if err := addChart(f, r.Chart); err != nil {
			return nil, err
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("写入 Excel 失败: %w", err)
	}
	return buf, nil
}

func addChart(f *excelize.File, ch Chart) error {
	if _, err := f.NewSheet(chartSheet); err != nil {
		return fmt.Errorf("创建图表数据表失败: %w", err)
	}
	f.SetCellValue(chartSheet, "A1", "المادة")
	f.SetCellValue(chartSheet, "B1", "النقاط")
	for i, b := range ch.Bars {
		f.SetCellValue(chartSheet, cell("A", i+2), b.Label)
		f.SetCellValue(chartSheet, cell("B", i+2), b.Value)
	}
	last := len(ch.Bars) + 1

	minY, maxY := 0.0, ch.AxisMax
	err := f.AddChart(reportSheet, "F2", &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", chartSheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", chartSheet, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", chartSheet, last),
			Fill:       excelize.Fill{Type: "pattern", Color: []string{"#1D4ED8"}, Pattern: 1},
		}},
		Title:     []excelize.RichTextRun{{Text: "تحليل أداء المواد"}},
		Legend:    excelize.ChartLegend{Position: "none"},
		YAxis:     excelize.ChartAxis{Minimum: &minY, Maximum: &maxY, MajorUnit: 1, MajorGridLines: true},
		Dimension: excelize.ChartDimension{Width: 520, Height: 300},
	})
	if err != nil {
		return fmt.Errorf("生成图表失败: %w", err)
	}
	return nil
}

// ── 辅助函数 ──

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
