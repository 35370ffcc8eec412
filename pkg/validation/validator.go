package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates v against its `validate` struct tags and reports every
// failing field, not only the first.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	return formatValidationError(validate.Struct(v))
}

// formatValidationError converts validator errors to a more user-friendly format
func formatValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		msgs = append(msgs, describe(e))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(e validator.FieldError) string {
	field := e.Namespace()
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: field is required", field)
	case "required_if":
		return fmt.Sprintf("%s: field is required when %s", field, e.Param())
	case "uuid":
		return fmt.Sprintf("%s: %v is not a UUID", field, e.Value())
	case "oneof":
		return fmt.Sprintf("%s: %v is not one of [%s]", field, e.Value(), e.Param())
	case "min":
		return fmt.Sprintf("%s: must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s: must not exceed %s", field, e.Param())
	case "ip":
		return fmt.Sprintf("%s: %v is not an IP address", field, e.Value())
	case "mac":
		return fmt.Sprintf("%s: %v is not a MAC address", field, e.Value())
	default:
		return fmt.Sprintf("%s: validation failed (%s)", field, e.Tag())
	}
}
