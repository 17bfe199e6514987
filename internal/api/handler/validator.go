package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/fahadturjmi/GPA-Calculator/internal/gpa"
)

// RegisterValidators 在 gin 的校验引擎上注册自定义规则
//
//   - gradelabel: 空字符串（未评分）或等级对照表中的标签
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("gradelabel", validateGradeLabel)
}

func validateGradeLabel(fl validator.FieldLevel) bool {
	label := fl.Field().String()
	return label == "" || gpa.IsKnownLabel(label)
}
