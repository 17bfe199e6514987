package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fahadturjmi/GPA-Calculator/internal/gpa"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	"github.com/fahadturjmi/GPA-Calculator/internal/report"
)

// evalOptions eval / export 共用参数
type evalOptions struct {
	file    string
	courses []string
	scale   string
}

func (o *evalOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.file, "file", "f", "", "课程文件（.yaml / .yml / .json）")
	cmd.Flags().StringArrayVarP(&o.courses, "course", "c", nil, "课程，格式 name:grade:credits，可重复")
	cmd.Flags().StringVarP(&o.scale, "scale", "s", "", "评分体系 4.0 或 5.0（覆盖文件中的设置，默认 5.0）")
}

// load 合并文件与命令行课程，返回最终课程列表与评分体系
func (o *evalOptions) load() ([]model.Course, model.GradeScale, error) {
	var (
		courses []model.Course
		scale   = string(model.Scale5)
	)

	if o.file != "" {
		cf, err := readCourseFile(o.file)
		if err != nil {
			return nil, "", err
		}
		if cf.Scale != "" {
			scale = cf.Scale
		}
		courses = append(courses, cf.toCourses()...)
	}

	for _, raw := range o.courses {
		c, err := parseCourseFlag(raw)
		if err != nil {
			return nil, "", err
		}
		courses = append(courses, c)
	}

	if o.scale != "" {
		scale = o.scale
	}
	sc, err := model.ParseGradeScale(scale)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", err, scale)
	}
	return courses, sc, nil
}

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "gpacalc",
		Short:        "绩点（GPA）计算器",
		Long:         "按学分加权计算平均绩点，支持 4.0 / 5.0 两种评分体系，并可导出 Excel 报告。",
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	root.AddCommand(newEvalCmd(), newGradesCmd(), newExportCmd())
	return root
}

// ────────────────────── eval ──────────────────────

func newEvalCmd() *cobra.Command {
	opts := &evalOptions{}
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "计算平均绩点与评级",
		Example: `  gpacalc eval -f courses.yaml
  gpacalc eval -c "Math 101:A+:3" -c "Physics:B+:4" --scale 4.0`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			courses, scale, err := opts.load()
			if err != nil {
				return err
			}
			res := gpa.Evaluate(courses, scale)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderEvaluation(courses, res))
			return err
		},
	}
	opts.bind(cmd)
	return cmd
}

// ────────────────────── grades ──────────────────────

func newGradesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grades",
		Short: "显示等级对照表",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderGradeTable(gpa.GradeOptions()))
			return err
		},
	}
}

// ────────────────────── export ──────────────────────

func newExportCmd() *cobra.Command {
	opts := &evalOptions{}
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "导出 Excel 报告",
		RunE: func(cmd *cobra.Command, _ []string) error {
			courses, scale, err := opts.load()
			if err != nil {
				return err
			}

			r := report.Build(courses, scale, time.Now())
			buf, err := report.WriteXLSX(r)
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("写入报告失败: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), renderExported(output, r.Summary))
			return err
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVarP(&output, "out", "o", "report.xlsx", "输出文件路径")
	return cmd
}
