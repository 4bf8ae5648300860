package validator

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Fields turns a gin binding error into a {field: rule} map for the
// validation-error response. Non-validator errors (malformed JSON, type
// mismatches) get a single catch-all entry.
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "invalid"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}
