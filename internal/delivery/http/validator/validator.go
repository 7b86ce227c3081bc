// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type echoValidator struct {
	validate *playground.Validate
}

// New builds the request validator installed on the echo server.
func New() echo.Validator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks a bound request struct against its validate tags. Handlers
// translate the returned error into a 400 response.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
