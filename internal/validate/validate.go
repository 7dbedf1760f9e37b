// Package validate runs struct-tag validation and reports failures as
// domain validation errors keyed by JSON field name.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/dreamjournal-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	// bcrypt and similar consumers limit bytes, not runes.
	if err := v.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}
	return v
}

func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		panic(fmt.Sprintf("validate: bad maxbytes param %q", fl.Param()))
	}
	return len(fl.Field().String()) <= limit
}

// Struct validates s and converts every failed rule into a domain.FieldError.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, domain.FieldError{Field: e.Field(), Message: message(e)})
	}
	return domain.NewValidationErrors(fields)
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("max %s characters", e.Param())
	case "maxbytes":
		return fmt.Sprintf("max %s bytes", e.Param())
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}
