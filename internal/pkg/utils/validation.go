package utils

import (
	"reflect"
	"strings"

	"dentalink-client/dentalink/schemas"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report wire names (json tags) instead of Go field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Let `required` see the underlying time so zero dates fail validation.
	validate.RegisterCustomTypeFunc(timeValue, schemas.Date{}, schemas.DateTime{})
}

func timeValue(field reflect.Value) interface{} {
	switch v := field.Interface().(type) {
	case schemas.Date:
		return v.Time
	case schemas.DateTime:
		return v.Time
	}
	return nil
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
