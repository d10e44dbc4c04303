package helper

import (
	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

// FormatValidationErrors flattens validator.v10 errors into the error map
// shape used by JsonValidationError.
func FormatValidationErrors(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{"invalid input"}
		return out
	}
	for _, fieldErr := range ve {
		field := fieldErr.Field()
		out[field] = append(out[field], fieldErr.Tag())
	}
	return out
}
