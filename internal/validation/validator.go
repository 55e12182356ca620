package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/alimikegami/content-service/pkg/errs"
	"github.com/go-playground/validator/v10"
)

// CustomValidator plugs go-playground/validator into echo and reports the
// first failing field the way clients of this API expect.
type CustomValidator struct {
	validator *validator.Validate
}

func CreateValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	err := cv.validator.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return errs.New(errs.ErrValidation, Describe(validationErrors[0]))
	}

	return errs.New(errs.ErrValidation, err.Error())
}

func Describe(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be less than or equal to %s", field, fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return fmt.Sprintf("%q must be a positive number", field)
		}
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%q must be a valid uri", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	default:
		return fmt.Sprintf("%q failed on the '%s' rule", field, fe.Tag())
	}
}
