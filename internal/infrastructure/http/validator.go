package http

import (
	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request structs.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
