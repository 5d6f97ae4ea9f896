package courseValidator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the json field names the clients sent
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldErrors translates validator errors into a field -> message map
func fieldErrors(err error) map[string]string {
	errors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["body"] = "Invalid request body!"
		return errors
	}
	for _, e := range validationErrors {
		errors[e.Field()] = message(e)
	}
	return errors
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required!"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters long!"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param() + "!"
	case "uuid":
		return e.Field() + " must be a valid UUID!"
	case "url":
		return e.Field() + " must be a valid URL!"
	default:
		return e.Field() + " is invalid!"
	}
}
