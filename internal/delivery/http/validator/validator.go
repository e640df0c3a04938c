// Package validator plugs go-playground/validator into echo's Validator hook.
package validator

import (
	domainerrors "atlas/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator adapts validator.Validate to echo.Validator.
type echoValidator struct {
	validate *validator.Validate
}

// New creates the request validator used by all handlers.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct tags on a bound request DTO. Failures surface as
// the required-fields validation error of the wire contract.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
