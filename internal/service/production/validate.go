package production

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/prodcost-backend/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("field"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("decnonneg", decimalNonNegative)
	return v
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}

// validateStruct runs the struct tags of s and converts violations into a
// domain.ValidationError. extra field errors are appended to the result.
func validateStruct(s any, extra ...domain.FieldError) error {
	errs := append([]domain.FieldError(nil), extra...)

	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		for _, fe := range verrs {
			errs = append(errs, domain.FieldError{Field: fieldPath(fe), Message: fieldMessage(fe)})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// fieldPath drops the root struct name: "Input.records[0].unit" becomes
// "records[0].unit".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return "max " + fe.Param() + " items"
		}
		return "max " + fe.Param() + " characters"
	case "gte":
		return "must be >= " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "decnonneg":
		return "must not be negative"
	default:
		return "invalid"
	}
}
