package service

import (
	"errors"
	"fmt"
	"reflect"

	"Tripnote/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// 错误信息里使用 label 作为字段名
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return f.Name
	})
	return v
}

// ValidateForm 表单校验，只返回第一条错误
func ValidateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return apperr.Wrap(apperr.ErrValidation, "表单校验失败", err)
	}
	return apperr.Validation(message(errs[0]))
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("请输入%s", fe.Field())
	case "eqfield":
		return "两次输入的密码不一致"
	case "min":
		return fmt.Sprintf("%s至少 %s 个字符", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s格式不正确", fe.Field())
	}
}
