// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"

	domainerrors "storefront/internal/domain/errors"
)

// CustomValidator validates bound request structs against their validate tags.
type CustomValidator struct {
	validate *playground.Validate
}

// New creates the validator used by the echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Violations surface as the invalid-input
// application error so the error middleware maps them to a 400.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	return nil
}
