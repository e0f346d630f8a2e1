// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// EchoValidator wraps a validator instance for use as echo.Validator.
type EchoValidator struct {
	validate *playground.Validate
}

// New creates an EchoValidator with struct tag validation enabled.
func New() *EchoValidator {
	return &EchoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator.
func (v *EchoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.Wrap(err, "request validation failed")
	}

	return nil
}
