package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/deppfellow/gym-membership/internal/errs"
)

// MissingOrInvalidData is the message every rejected payload carries.
const MissingOrInvalidData = "Missing or invalid data"

// Validatable is implemented by request payload types that know how to validate themselves.
//
// Typical pattern:
// - Define a request struct with validator tags (`validate:"required"`)
// - Implement Validate() error that runs validator.Struct(req)
type Validatable interface {
	Validate() error
}

// PathParamsOnly marks requests whose data comes only from the URL path.
// Their body and query string are never read.
type PathParamsOnly interface {
	PathParamsOnly()
}

// ValidationError reports that a payload is incomplete.
type ValidationError struct {
	Message string
	Fields  []errs.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Error)
	}
	return e.Message + ": " + strings.Join(parts, ", ")
}

var validate = validator.New()

// Struct runs validator tags on v. Exposed so request types share one
// validator instance and its struct cache.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) fills the payload from path params and the JSON body.
//     A PathParamsOnly payload is filled from path params alone.
//  2. payload.Validate() applies validation rules.
//
// Both failures come back as a 400 *errs.HTTPError; the cause is kept for logs.
// payload must be a pointer for Bind to fill it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := bind(c, payload); err != nil {
		return errs.NewBadRequestError(fmt.Errorf("bind request: %w", err))
	}

	if err := validateStruct(payload); err != nil {
		return errs.NewBadRequestError(err)
	}

	return nil
}

func bind(c echo.Context, payload Validatable) error {
	if _, ok := payload.(PathParamsOnly); ok {
		return (&echo.DefaultBinder{}).BindPathParams(c, payload)
	}
	return c.Bind(payload)
}

// validateStruct calls v.Validate() and converts failures into *ValidationError.
func validateStruct(v Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	if vErr, ok := err.(*ValidationError); ok {
		return vErr
	}

	return &ValidationError{
		Message: MissingOrInvalidData,
		Fields:  extractFieldErrors(err),
	}
}

func extractFieldErrors(err error) []errs.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []errs.FieldError{{Field: "payload", Error: err.Error()}}
	}

	var fieldErrors []errs.FieldError
	for _, fe := range validationErrors {
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}
		case "max":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}
		case "email":
			msg = "must be a valid email address"
		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s:%s", fe.Tag(), fe.Param())
			} else {
				msg = fe.Tag()
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: strings.ToLower(fe.Field()),
			Error: msg,
		})
	}

	return fieldErrors
}
