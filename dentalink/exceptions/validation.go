package exceptions

import (
	"errors"
	"strings"

	"dentalink-client/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

// FirstInvalidField returns the wire name of the first field that failed
// validation, or an empty string when err is not a validator error.
func FirstInvalidField(err error) string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return validationErrors[0].Field()
	}
	return ""
}

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrDevValidationFailed
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		firstErr := validationErrors[0]
		fieldName := strings.ToLower(firstErr.Field())
		tag := firstErr.Tag()
		customMessage, ok := constvars.CustomValidationErrorMessages[tag]
		if !ok {
			customMessage = "is invalid"
		}
		if constvars.TagsWithParams[tag] {
			customMessage = strings.Replace(customMessage, "%s", firstErr.Param(), 1)
		}
		return fieldName + " " + customMessage
	}
	return constvars.ErrDevValidationFailed
}
