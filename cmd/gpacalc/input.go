package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/fahadturjmi/GPA-Calculator/internal/gpa"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
)

// courseFile 课程文件格式
//
//	scale: "5.0"
//	courses:
//	  - name: الرياضيات 101
//	    grade: A+
//	    credits: 3
type courseFile struct {
	Scale   string        `yaml:"scale" json:"scale"`
	Courses []courseEntry `yaml:"courses" json:"courses"`
}

type courseEntry struct {
	Name    string `yaml:"name" json:"name"`
	Grade   string `yaml:"grade" json:"grade"`
	Credits *int   `yaml:"credits" json:"credits"`
}

func (f *courseFile) toCourses() []model.Course {
	out := make([]model.Course, 0, len(f.Courses))
	for _, e := range f.Courses {
		c := model.Course{
			ID:         uuid.NewString(),
			Name:       e.Name,
			GradeLabel: strings.TrimSpace(e.Grade),
			Credits:    gpa.DefaultCredits,
		}
		if e.Credits != nil {
			c.Credits = *e.Credits
		}
		out = append(out, c)
	}
	return out
}

func readCourseFile(path string) (*courseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取课程文件失败: %w", err)
	}

	var cf courseFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cf)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(data, &cf)
	default:
		return nil, fmt.Errorf("不支持的课程文件格式: %s", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("解析课程文件失败: %w", err)
	}
	return &cf, nil
}

// parseCourseFlag 解析 name:grade:credits；名称中可以包含冒号，grade 与 credits 可留空
func parseCourseFlag(raw string) (model.Course, error) {
	c := model.Course{ID: uuid.NewString(), Credits: gpa.DefaultCredits}

	last := strings.LastIndex(raw, ":")
	if last < 0 {
		return c, fmt.Errorf("课程参数格式应为 name:grade:credits: %q", raw)
	}
	mid := strings.LastIndex(raw[:last], ":")
	if mid < 0 {
		return c, fmt.Errorf("课程参数格式应为 name:grade:credits: %q", raw)
	}

	c.Name = raw[:mid]
	c.GradeLabel = strings.TrimSpace(raw[mid+1 : last])

	if credits := strings.TrimSpace(raw[last+1:]); credits != "" {
		n, err := strconv.Atoi(credits)
		if err != nil {
			return c, fmt.Errorf("学分必须是整数: %q", credits)
		}
		c.Credits = n
	}
	return c, nil
}
