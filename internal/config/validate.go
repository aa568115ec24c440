package config

import (
	"errors"
	"fmt"
	"sync"

	gvalidator "github.com/go-playground/validator/v10"
)

var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

// ErrValidation is the first error in the chain when a config fails validation.
var ErrValidation = errors.New("invalid config")

const errStringFormat = "%s: value '%v' does not satisfy '%s'"

// Validate checks a Config against its validate tags. Every violated rule
// is joined behind ErrValidation.
func Validate(c *Config) error {
	initValidatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	})
	if err := validator.Struct(c); err != nil {
		return formatError(err)
	}
	return nil
}

func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidation}
	for _, fe := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, fe.Field(), fe.Value(), fe.ActualTag()))
	}
	return errors.Join(errs...)
}
