package middleware

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"connectrpc.com/connect"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the shared validator with the decimal rules registered.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		vld := validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON names
		vld.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		// decimal.Decimal is read directly; registering a custom type func that
		// returns the same type would loop forever.
		err := vld.RegisterValidation("nonnegative_decimal", func(fl validator.FieldLevel) bool {
			value, ok := fl.Field().Interface().(decimal.Decimal)
			if !ok {
				return false
			}
			return !value.IsNegative()
		})
		if err != nil {
			panic(fmt.Sprintf("register nonnegative_decimal: %v", err))
		}
		validate = vld
	})
	return validate
}

// ValidateMessage checks a request message against its validate tags.
// Only the first failing field is reported.
func ValidateMessage(msg any) error {
	err := getValidator().Struct(msg)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return formatValidationError(validationErrors[0])
	}
	return err
}

// ValidationInterceptor rejects malformed requests with CodeInvalidArgument
// before they reach the service.
func ValidationInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if msg := req.Any(); msg != nil {
				if err := ValidateMessage(msg); err != nil {
					return nil, connect.NewError(connect.CodeInvalidArgument, err)
				}
			}
			return next(ctx, req)
		}
	}
}

func formatValidationError(fe validator.FieldError) error {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Errorf("%s is required", field)
	case "max":
		return fmt.Errorf("%s must be at most %s long", field, fe.Param())
	case "min":
		return fmt.Errorf("%s must have at least %s entries", field, fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of [%s]", field, fe.Param())
	case "nonnegative_decimal":
		return fmt.Errorf("%s must not be negative", field)
	case "len", "alpha":
		return fmt.Errorf("%s must be a three-letter currency code", field)
	}
	return fmt.Errorf("%s failed %q check", field, fe.Tag())
}
