package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// RegisterValidators adds the custom binding tags used by the request DTOs.
func RegisterValidators(v *validator.Validate) error {
	return v.RegisterValidation("notblank", validators.NotBlank)
}
