package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("handle", func(fl validator.FieldLevel) bool {
		return ValidHandle(fl.Field().String())
	})
	return v
}

// ValidHandle reports whether s can be a sign-up handle. "/", "@" and ":" are
// recipient syntax (profile paths, mentions, URL schemes), so a handle holding
// one would not resolve to itself. Control characters are rejected too; the
// storage indexes use NUL as a key separator.
func ValidHandle(s string) bool {
	for _, r := range s {
		if r == '/' || r == '@' || r == ':' || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// ValidateStruct checks v against its `validate` tags and converts failures
// into a *ValidationError keyed by the json field name.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: describeTag(fe),
		})
	}
	return NewValidationErrors(fields)
}

// ValidateContent checks a message body: non-blank and at most maxLen characters.
// The returned error matches both ErrInvalidContent and ErrValidation.
func ValidateContent(content string, maxLen int) error {
	if maxLen <= 0 {
		maxLen = DefaultMaxContentLength
	}
	trimmed := strings.TrimSpace(content)
	if err := validate.Var(trimmed, fmt.Sprintf("required,max=%d", maxLen)); err != nil {
		var verrs validator.ValidationErrors
		msg := "invalid"
		if errors.As(err, &verrs) && len(verrs) > 0 {
			msg = describeTag(verrs[0])
		}
		return fmt.Errorf("%w: %w", ErrInvalidContent, NewValidationError("content", msg))
	}
	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return fmt.Sprintf("max %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("min %s characters", fe.Param())
	case "email":
		return "invalid email"
	case "handle":
		return "must not contain '/', '@', ':' or control characters"
	default:
		return "invalid"
	}
}
