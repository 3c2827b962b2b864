package service

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateParams checks a params struct against its validate tags.
func validateParams(p any) error {
	return validate.Struct(p)
}
