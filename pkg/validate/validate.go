// Package validate provides struct-tag validation with Laravel-style
// messages, built on go-playground/validator.
//
// Any validator/v10 rule may be used in the `validate` tag. The package adds:
//
//	phone      Russian phone number in the form +7(XXX)XXX-XX-XX
//	notblank   string must contain a non-space character
//
// Errors are keyed by the field's json name:
//
//	type Input struct {
//	    Name  string  `json:"supplier_name" validate:"notblank,max=255"`
//	    Email *string `json:"email"         validate:"omitempty,email"`
//	    Phone string  `json:"phone"         validate:"required,phone"`
//	}
//
//	errs := validate.Struct(in)   // {"phone": "The phone must be in the format +7(XXX)XXX-XX-XX."}
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PhoneFormat is the human-readable form of the accepted phone pattern.
const PhoneFormat = "+7(XXX)XXX-XX-XX"

var phoneRE = regexp.MustCompile(`^\+7\(\d{3}\)\d{3}-\d{2}-\d{2}$`)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	val.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})

	mustRegister(val, "phone", func(fl validator.FieldLevel) bool {
		return phoneRE.MatchString(fl.Field().String())
	})
	mustRegister(val, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return val
}

func mustRegister(val *validator.Validate, tag string, fn validator.Func) {
	if err := val.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validate: register %s: %v", tag, err))
	}
}

// ─── Public API ───────────────────────────────────────────────────────────────

// Struct validates s and returns a map of json field name → message.
// An empty map means no errors. Only the first failing rule per field is
// reported.
func Struct(s interface{}) map[string]string {
	errs := make(map[string]string)

	err := v.Struct(s)
	if err == nil {
		return errs
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// not a struct; nothing to report per field
		return errs
	}

	for _, fe := range fieldErrs {
		name := fe.Field()
		if _, seen := errs[name]; seen {
			continue
		}
		errs[name] = message(fe)
	}
	return errs
}

// Phone reports whether s is a valid phone number.
func Phone(s string) bool { return phoneRE.MatchString(s) }

// HasErrors returns true when the errs map is non-empty.
func HasErrors(errs map[string]string) bool { return len(errs) > 0 }

// ─── Messages ─────────────────────────────────────────────────────────────────

func message(fe validator.FieldError) string {
	field := fe.Field()
	param := fe.Param()
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "phone":
		return fmt.Sprintf("The %s must be in the format %s.", field, PhoneFormat)
	case "min":
		if isString {
			return fmt.Sprintf("The %s must be at least %s characters.", field, param)
		}
		return fmt.Sprintf("The %s must be at least %s.", field, param)
	case "max":
		if isString {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, param)
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, param)
	case "gte":
		return fmt.Sprintf("The %s must be greater than or equal to %s.", field, param)
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", field, param)
	case "lte":
		return fmt.Sprintf("The %s must be less than or equal to %s.", field, param)
	case "lt":
		return fmt.Sprintf("The %s must be less than %s.", field, param)
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
