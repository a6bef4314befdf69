// Package validation turns validator/v10 errors into field scoped failures with readable messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/savioruz/geoapi/pkg/failure"
)

func New() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Struct validates s and returns one Validation failure per violated rule, in field order.
func Struct(v *validator.Validate, s any) error {
	return convert(v.Struct(s))
}

// Var validates a single value reported under field.
func Var(v *validator.Validate, field string, value any, tag string) error {
	err := v.Var(value, tag)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]error, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, failure.Validation(field, message(field, fe)))
		}

		return failure.Join(out...)
	}

	return convert(err)
}

func convert(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return failure.BadRequest(err)
	}

	out := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, failure.Validation(fe.Field(), Message(fe)))
	}

	return failure.Join(out...)
}

// Message renders a validator field error.
func Message(fe validator.FieldError) string {
	return message(fe.Field(), fe)
}

func message(field string, fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("'%s' must not be empty.", field)
	case "max":
		if isString {
			return fmt.Sprintf("The length of '%s' must be %s characters or fewer. You entered %d characters.", field, fe.Param(), length(fe))
		}

		return fmt.Sprintf("'%s' must be less than or equal to '%s'.", field, fe.Param())
	case "min":
		if isString {
			return fmt.Sprintf("The length of '%s' must be at least %s characters. You entered %d characters.", field, fe.Param(), length(fe))
		}

		return fmt.Sprintf("'%s' must be greater than or equal to '%s'.", field, fe.Param())
	case "len":
		return fmt.Sprintf("'%s' must be %s characters in length. You entered %d characters.", field, fe.Param(), length(fe))
	case "email":
		return fmt.Sprintf("'%s' is not a valid email address.", field)
	case "latitude":
		return fmt.Sprintf("'%s' must be between -90 and 90. You entered %v.", field, fe.Value())
	case "longitude":
		return fmt.Sprintf("'%s' must be between -180 and 180. You entered %v.", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("'%s' must be one of: %s.", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "uuid":
		return fmt.Sprintf("'%s' is not a valid identifier.", field)
	default:
		return fmt.Sprintf("'%s' is not valid.", field)
	}
}

func length(fe validator.FieldError) int {
	if s, ok := fe.Value().(string); ok {
		return utf8.RuneCountInString(s)
	}

	return 0
}
