package util

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateDTO 按 validate 标签校验，只报告第一个失败的字段，原始错误可用 errors.As 取出
func ValidateDTO(dto any) error {
	if err := validate.Struct(dto); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			firstError := vErrs[0]
			return fmt.Errorf("field [%s] failed validation rule [%s]: %w",
				firstError.Field(), firstError.Tag(), vErrs)
		}
		return err
	}
	return nil
}
