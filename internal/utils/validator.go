package utils

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/apperror"
)

// RequestValidator adapts validator/v10 to echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator keyed by json field names
func NewRequestValidator() *RequestValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// Validate returns an apperror validation error with one message per field
func (rv *RequestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Validation(err.Error(), nil)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return apperror.Validation("The given data was invalid.", fields)
}

// BindAndValidate binds the request body into req and validates it
func BindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apperror.Validation("Invalid request format", nil)
	}
	return c.Validate(req)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("The %s must be at least %s.", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("The %s may not be greater than %s.", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("The %s must be greater than %s.", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("The %s must be %s characters.", fe.Field(), fe.Param())
	case "numeric":
		return fmt.Sprintf("The %s must be numeric.", fe.Field())
	case "oneof":
		return fmt.Sprintf("The %s must be one of: %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("The %s field is invalid.", fe.Field())
	}
}
