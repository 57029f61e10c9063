// Package validator wraps go-playground/validator with txharvest's error format.
//
// Struct fields are validated through `validate` tags; single values through Var.
// Failures are returned as one joined error led by ErrValidationFailed, followed
// by one human-readable message per violated rule.
package validator

import (
	"errors"
	"fmt"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error of every chain returned on validation failure.
var ErrValidationFailed = errors.New("validation failed")

// validator is the shared go-playground instance, created on package load.
var validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())

const (
	// fieldErrFormat describes a struct field failure, e.g.
	// "'Config.CacheBackend': value 'disk' does not meet the requirements for the 'oneof' validation".
	fieldErrFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

	// valueErrFormat describes a failure of a single value checked with Var.
	valueErrFormat = "value '%v' does not meet the requirements for the '%s' validation"
)

// formatError turns validator errors into the joined chain described in the package doc.
// Errors of any other type are returned unchanged.
func formatError(err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrValidationFailed}
	for _, fieldErr := range validationErrors {
		if fieldErr.Namespace() == "" {
			errs = append(errs, fmt.Errorf(valueErrFormat, fieldErr.Value(), fieldErr.Tag()))
			continue
		}

		errs = append(errs, fmt.Errorf(fieldErrFormat, fieldErr.Namespace(), fieldErr.Value(), fieldErr.Tag()))
	}

	return errors.Join(errs...)
}

// Validate checks v against its `validate` struct tags.
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(err)
	}

	return nil
}

// Var checks a single value against a tag expression such as "required,eth_addr".
func Var(v any, tag string) error {
	if err := validator.Var(v, tag); err != nil {
		return formatError(err)
	}

	return nil
}
