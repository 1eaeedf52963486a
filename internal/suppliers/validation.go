package suppliers

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/suppliermgmt/suppliermgmt/internal/platform/httpx"
)

const contactNumberMessage = "Contact number should be in 10 digits"

// Validator checks structural constraints on incoming payloads before any
// store access happens.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a Validator that reports violations under the JSON
// field names used on the wire.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Check validates the payload and returns the violation list, one entry per
// failing field. A nil result means the payload is acceptable.
func (v *Validator) Check(payload any) []httpx.FieldError {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var errs []httpx.FieldError
	for _, fieldErr := range err.(validator.ValidationErrors) {
		errs = append(errs, httpx.FieldError{
			Field:   fieldErr.Field(),
			Message: violationMessage(fieldErr),
		})
	}
	return errs
}

func violationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return fieldErr.Field() + " is required"
	case "len":
		if fieldErr.Field() == "contact_number" {
			return contactNumberMessage
		}
		return fieldErr.Field() + " must be exactly " + fieldErr.Param() + " characters"
	default:
		return fieldErr.Error()
	}
}
