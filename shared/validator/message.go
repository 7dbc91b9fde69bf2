package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required": "{field} is required",
	"max":      "{field} must be less than or equal to {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"boolean":  "{field} must be true or false",
	"day":      "{field} must be a date formatted as YYYY-MM-DD",
	"empty":    "{field} must be empty",
}

// message renders every field error as one sentence, joined in field order.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	sentences := make([]string, 0, len(fieldErrors))

	for _, fieldErr := range fieldErrors {
		template, ok := messages[fieldErr.Tag()]
		if !ok {
			sentences = append(sentences, fieldErr.Error())

			continue
		}

		sentences = append(sentences, strings.NewReplacer(
			"{field}", fieldErr.Field(),
			"{param}", fieldErr.Param(),
		).Replace(template))
	}

	return strings.Join(sentences, "; ")
}
