package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request body structs.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks struct tags on the bound request. Violations are returned
// as-is; the handlers translate them into the shared error envelope.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
