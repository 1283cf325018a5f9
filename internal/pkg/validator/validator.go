package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jhlee0214/wakemeup/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	// report fields by their json names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// transport_mode accepts only the modes offered to clients (train, tram, bus)
	_ = validate.RegisterValidation("transport_mode", func(fl validator.FieldLevel) bool {
		mode, err := domain.ParseTransportMode(fl.Field().String())
		return err == nil && mode.IsSelectable()
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
