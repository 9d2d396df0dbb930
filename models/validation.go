package models

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gobuffalo/validate/v3"

	"github.com/rubineta/claims-api/api"
)

// Model validation tool
var mValidate *validator.Validate

var fieldValidators = map[string]func(validator.FieldLevel) bool{
	"userRole": validateUserRole,
}

func validateModel(m any) *validate.Errors {
	vErrs := validate.NewErrors()

	if err := mValidate.Struct(m); err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			vErrs.Add(err.StructNamespace(), err.Error())
		}
	}
	return vErrs
}

// flattenPopErrors - pop validation errors are complex structures, this flattens them to a simple string
func flattenPopErrors(popErrs *validate.Errors) string {
	var msgs []string
	for key, val := range popErrs.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", key, strings.Join(val, ", ")))
	}
	return strings.Join(msgs, " |")
}

var validUserRoles = map[api.UserRole]struct{}{
	api.UserRoleAdmin:   {},
	api.UserRoleQuality: {},
}

func validateUserRole(field validator.FieldLevel) bool {
	if value, ok := field.Field().Interface().(api.UserRole); ok {
		_, valid := validUserRoles[value]
		return valid
	}
	return false
}
