package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var zipRe = regexp.MustCompile(`^\d{5}$`)

func init() {
	validate = validator.New()

	// zip - пятизначный почтовый индекс США
	_ = validate.RegisterValidation("zip", func(fl validator.FieldLevel) bool {
		return zipRe.MatchString(fl.Field().String())
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
