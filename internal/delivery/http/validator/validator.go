// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	domainerrors "github.com/drbearcub/jw-deployable-app/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance so Echo's c.Validate
// runs struct tag validation on bound request bodies.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag failures surface as a validation
// error with the offending fields in the details.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
