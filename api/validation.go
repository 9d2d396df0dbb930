package api

import (
	"github.com/go-playground/validator/v10"
)

var inputValidate = validator.New()

// ValidateInput checks the `validate` tags on a request input struct and
// returns a user-category AppError naming the offending fields, or nil.
func ValidateInput(m any) *AppError {
	err := inputValidate.Struct(m)
	if err == nil {
		return nil
	}

	return NewAppError(err, ErrorValidation, CategoryUser)
}
