package validate

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phone numbers are stored in international format, e.g. +380501234567
var phoneRegexp = regexp.MustCompile(`^\+[0-9]{10,14}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phoneRegexp.MatchString(fl.Field().String())
	})
	return v
}

// Struct validates a DTO by its validate tags.
func Struct(s any) error {
	return validate.Struct(s)
}

func IsValidPhone(phone string) bool {
	return phoneRegexp.MatchString(phone)
}
