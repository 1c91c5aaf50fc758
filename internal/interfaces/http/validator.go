package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// newValidator usa el nombre del tag json en los mensajes de error.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})
	return v
}

// validationDetails valida la estructura y devuelve campo → mensaje (nil si es válida).
func validationDetails(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return map[string]string{"body": err.Error()}
	}
	details := make(map[string]string, len(errs))
	for _, fe := range errs {
		details[fieldPath(fe)] = validationMessage(fe)
	}
	return details
}

// fieldPath quita el nombre del struct raíz: "PreviewFeeDetailLinesRequest.applied_taxes[0].id" → "applied_taxes[0].id".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "len":
		return fmt.Sprintf("debe tener %s caracteres", fe.Param())
	case "alpha":
		return "solo admite letras"
	case "uuid":
		return "debe ser un UUID"
	case "bcp47_language_tag":
		return "debe ser un locale BCP 47"
	default:
		return "inválido"
	}
}
