package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var postcodeRe = regexp.MustCompile(`^[0-9]{5}$`)

func init() {
	validate = validator.New()

	// French postal code: exactly five digits.
	_ = validate.RegisterValidation("postcode", func(fl validator.FieldLevel) bool {
		return postcodeRe.MatchString(fl.Field().String())
	})
}

// Validate struct fields, returning a field -> failed tag map, nil when valid.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		errors[err.Field()] = err.Tag()
	}
	return errors
}
