package service

import (
	"github.com/fahadturjmi/GPA-Calculator/internal/dto"
	"github.com/fahadturjmi/GPA-Calculator/internal/gpa"
	"github.com/fahadturjmi/GPA-Calculator/internal/model"
	"github.com/fahadturjmi/GPA-Calculator/internal/report"
)

func toGPAResultResponse(res gpa.Result) dto.GPAResultResponse {
	return dto.GPAResultResponse{
		Scale:        string(res.Scale),
		GPA:          res.GPA,
		GPADisplay:   report.FormatGPA(res.GPA),
		TotalPoints:  res.TotalPoints,
		TotalCredits: res.TotalCredits,
		Rating:       res.Rating.String(),
		RatingLabel:  res.RatingLabel(),
		Tone:         string(res.Tone()),
	}
}

func toCourseResponse(c model.Course, scale model.GradeScale) dto.CourseResponse {
	out := dto.CourseResponse{
		ID:         c.ID,
		Name:       c.Name,
		GradeLabel: c.GradeLabel,
		Credits:    c.Credits,
	}
	if g, ok := gpa.Lookup(c.GradeLabel); ok {
		p := g.Points(scale)
		out.Points = &p
	}
	return out
}
