package checkout

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,4}$`)

func NotOnlyWhitespace(value string) bool {
	return strings.TrimSpace(value) != ""
}

func IsEmailAddress(value string) bool {
	return emailPattern.MatchString(value)
}

// HasDigits reports whether value consists of exactly count decimal digits
func HasDigits(value string, count int) bool {
	if len(value) != count {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

type formValidator struct {
	validate *validator.Validate
}

func newFormValidator() *formValidator {
	validate := validator.New()

	// Report fields by the names used on the page
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterValidation("notonlywhitespace", func(fl validator.FieldLevel) bool {
		return NotOnlyWhitespace(fl.Field().String())
	})
	validate.RegisterValidation("emailaddress", func(fl validator.FieldLevel) bool {
		return IsEmailAddress(fl.Field().String())
	})
	validate.RegisterValidation("digits", func(fl validator.FieldLevel) bool {
		count, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return HasDigits(fl.Field().String(), count)
	})

	return &formValidator{
		validate: validate,
	}
}

// validateForm returns a message per invalid field, keyed by the field path as used on the page
func (v *formValidator) validateForm(form Form) map[string]string {
	problems := map[string]string{}

	err := v.validate.Struct(form)
	if err == nil {
		return problems
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		problems[""] = err.Error()
		return problems
	}

	for _, fieldErr := range validationErrors {
		problems[fieldPath(fieldErr.Namespace())] = message(fieldErr)
	}
	return problems
}

// fieldPath drops the leading struct name: "Form.customer.email" becomes "customer.email"
func fieldPath(namespace string) string {
	parts := strings.SplitN(namespace, ".", 2)
	if len(parts) < 2 {
		return namespace
	}
	return parts[1]
}

func message(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fieldErr.Param())
	case "emailaddress":
		return "must be a valid email address format"
	case "digits":
		return fmt.Sprintf("must be %s digits long", fieldErr.Param())
	default:
		// required and notonlywhitespace look the same to the user
		return "is required"
	}
}
