package web

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ErrValidatorEngine indicates that gin does not use go-playground/validator.
var ErrValidatorEngine = errors.New("unexpected validator engine")

// SetupValidator makes gin's validator report json field names and registers
// the given custom validations by tag.
func SetupValidator(validations map[string]validator.Func) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrValidatorEngine
	}

	v.RegisterTagNameFunc(jsonTagName)

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}

func jsonTagName(fld reflect.StructField) string {
	for _, key := range []string{"json", "uri", "form"} {
		name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
		if name == "-" {
			return ""
		}

		if name != "" {
			return name
		}
	}

	return fld.Name
}

// GetErrorMsg renders the first validation error as a user facing message.
func GetErrorMsg(ve validator.ValidationErrors) string {
	if len(ve) == 0 {
		return "invalid request"
	}

	fe := ve[0]

	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "amount":
		return fe.Field() + " must be a number"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// BindingError renders any error returned by gin's ShouldBind* methods.
func BindingError(err error) Response {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return Response{Error: GetErrorMsg(ve)}
	}

	return Error(err)
}
