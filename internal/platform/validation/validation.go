package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"pet-health-record/internal/platform/apperr"
	"pet-health-record/internal/platform/caldate"

	"github.com/go-playground/validator/v10"
)

// Validator envuelve validator/v10 y traduce sus errores a apperr.FieldErrors
// usando el nombre JSON del campo.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// isodate: string YYYY-MM-DD. Un string vacío no es fecha; usar omitempty.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := caldate.Parse(fl.Field().String())
		return err == nil
	})

	return &Validator{v: v}
}

// Struct valida s. Devuelve nil o apperr.FieldErrors.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := apperr.FieldErrors{}
	for _, fe := range verrs {
		fields.Add(fe.Field(), Message(fe))
	}
	return fields.OrNil()
}

// Message arma el texto visible para un error de campo.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is less than or equal to %s.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "oneof":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "isodate":
		return "Date has wrong format. Use one of these formats instead: YYYY-MM-DD."
	case "gt":
		return fmt.Sprintf("Ensure this value is greater than %s.", fe.Param())
	default:
		return "Invalid value."
	}
}
