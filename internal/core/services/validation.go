package services

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// requestValidator checks the `validate` tags of request DTOs. Field names in
// errors follow the JSON names. Decimals reach the validator as their exact
// string form and are checked with the d* tags below.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	registerDecimalTag(v, "dgte", func(d decimal.Decimal, param string) bool {
		return d.GreaterThanOrEqual(decimal.RequireFromString(param))
	})
	registerDecimalTag(v, "dlt", func(d decimal.Decimal, param string) bool {
		return d.LessThan(decimal.RequireFromString(param))
	})
	registerDecimalTag(v, "dscale", func(d decimal.Decimal, param string) bool {
		places, err := strconv.ParseInt(param, 10, 32)
		if err != nil {
			panic(fmt.Sprintf("dscale: invalid param %q", param))
		}
		return d.Equal(d.Truncate(int32(places)))
	})
	return v
}

// registerDecimalTag adds a tag whose check sees the field as an exact decimal.
func registerDecimalTag(v *validator.Validate, tag string, check func(d decimal.Decimal, param string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		return check(d, fl.Param())
	})
	if err != nil {
		panic(err)
	}
}

// validateRequest runs the struct validation and converts failures into an
// *apperrors.ValidationError keyed by JSON field name.
func validateRequest(req any) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	vErr := &apperrors.ValidationError{}
	for _, fe := range fieldErrs {
		vErr.Add(fe.Field(), validationMessage(fe))
	}
	return vErr
}

func validationMessage(fe validator.FieldError) string {
	isString := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "dgte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "dlt":
		return fmt.Sprintf("must be less than %s", fe.Param())
	case "dscale":
		return fmt.Sprintf("must have at most %s decimal places", fe.Param())
	case "required":
		return "is required"
	case "gte", "min":
		if isString {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "max", "lte":
		if isString {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	}
	return "is invalid"
}
