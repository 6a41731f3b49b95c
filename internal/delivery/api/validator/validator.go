// Package validator adapts go-playground/validator to echo and registers the
// profile field rules.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	phonePattern   = regexp.MustCompile(`^\+?[0-9. ()-]{7,25}$`)
	pincodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator that reports fields by their JSON names and knows
// the phone and pincode tags.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("phone", matches(phonePattern))
	_ = v.RegisterValidation("pincode", matches(pincodePattern))

	return &CustomValidator{validate: v}
}

// Validate runs the struct tags of i.
func (cv *CustomValidator) Validate(i any) error {
	return errors.WithStack(cv.validate.Struct(i))
}

// Details flattens validation failures into per-field messages. Other errors
// yield nil.
func Details(err error) []FieldError {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	details := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, FieldError{
			Field:   e.Field(),
			Message: message(e),
		})
	}

	return details
}

func matches(pattern *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return pattern.MatchString(fl.Field().String())
	}
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "phone":
		return "Invalid phone number"
	case "pincode":
		return "Pincode must be 6 digits"
	case "max":
		return "Must be at most " + e.Param() + " characters"
	default:
		return "Invalid value"
	}
}
