package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"transportes/internal/domain"
	"transportes/internal/utils"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Field rules live in `binding` tags on the models and inputs. gin checks them in
// ShouldBindJSON and the services check them again after normalizing.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(jsonFieldName)
	if err := v.RegisterValidation("hora", func(fl validator.FieldLevel) bool {
		return utils.ValidHour(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// validateStruct runs the binding tags of v and returns the first failure as a domain error.
func validateStruct(v any) error {
	err := binding.Validator.ValidateStruct(v)
	if err == nil {
		return nil
	}
	if verr := BindingError(err); verr != nil {
		return verr
	}
	return domain.InternalError{Msg: "no se pudo validar el payload", Err: err}
}

// BindingError converts validator failures into a domain.ValidationError naming the
// json field path (e.g. items[1].cantidad). Any other error yields nil.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return nil
	}
	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}
	if fe.Tag() == "required" {
		return domain.Required(field)
	}
	return domain.Invalid(field, describeRule(fe))
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		if fe.Param() == "0" {
			return "debe ser mayor a cero"
		}
		return "debe ser mayor a " + fe.Param()
	case "gte":
		if fe.Param() == "0" {
			return "no puede ser negativo"
		}
		return "debe ser al menos " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "requiere al menos " + fe.Param() + " elemento(s)"
		}
		return "minimo " + fe.Param() + " caracteres"
	case "max":
		return "maximo " + fe.Param() + " caracteres"
	case "oneof":
		return fmt.Sprintf("valor no permitido: %v", fe.Value())
	case "datetime":
		return "formato esperado YYYY-MM-DD"
	case "hora":
		return "formato esperado HH:MM"
	case "email":
		return "formato invalido"
	}
	return "valor invalido"
}

// fieldCheck accumulates the first failure of the rules tags cannot express.
type fieldCheck struct {
	err error
}

func (c *fieldCheck) required(field, v string) {
	if c.err == nil && strings.TrimSpace(v) == "" {
		c.err = domain.Required(field)
	}
}

// rule records msg against field when ok is false.
func (c *fieldCheck) rule(ok bool, field, msg string) {
	if c.err == nil && !ok {
		c.err = domain.Invalid(field, msg)
	}
}

// defaultLower trims and lower-cases v, falling back to def when empty.
func defaultLower(v, def string) string {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return def
	}
	return v
}
