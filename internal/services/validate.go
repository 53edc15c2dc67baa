package service

import (
	"fmt"
	"strings"

	"github.com/backoffice-labs/store-admin/internal/errors"
	"github.com/go-playground/validator/v10"
)

// validateStruct runs the payload through the validator and folds the
// field errors into one ValidationError the notifier can show.
func validateStruct(validate *validator.Validate, data any) error {

	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.InternalError("unexpected validation error").WithError(err)
	}

	var errMsgs []string

	for _, fieldErr := range validationErrs {

		var message string

		switch fieldErr.Tag() {
		case "required":
			message = fmt.Sprintf("Field %s is required", fieldErr.Field())
		case "email":
			message = fmt.Sprintf("Field %s must be a valid email address", fieldErr.Field())
		case "max":
			message = fmt.Sprintf("Field %s must be at most %s characters", fieldErr.Field(), fieldErr.Param())
		case "gt":
			message = fmt.Sprintf("Field %s must be greater than %s", fieldErr.Field(), fieldErr.Param())
		case "gte":
			message = fmt.Sprintf("Field %s must be at least %s", fieldErr.Field(), fieldErr.Param())
		case "oneof":
			message = fmt.Sprintf("Field %s must be one of: %s", fieldErr.Field(), fieldErr.Param())
		default:
			message = fmt.Sprintf("Field %s is invalid: %s=%s", fieldErr.Field(), fieldErr.Tag(), fieldErr.Param())
		}

		errMsgs = append(errMsgs, message)
	}

	return errors.ValidationError(strings.Join(errMsgs, "\n")).WithError(validationErrs)
}
