package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Charitie/DevConnector/pkg/response"
)

// Init configures the global validator used by Gin's binding to report
// errors under JSON tag names.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// fieldLabels maps json field names to the display labels the clients show.
// Fields not listed use the capitalized json name.
var fieldLabels = map[string]string{
	"fieldofstudy": "Field of study",
}

// ToErrors converts binding/validation errors into the legacy errors array.
func ToErrors(err error) []response.ErrorItem {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []response.ErrorItem{{Msg: "Invalid JSON payload"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.ErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.ErrorItem{
				Msg:   fieldMessage(fe),
				Param: fe.Field(),
			})
		}
		return out
	}

	return []response.ErrorItem{{Msg: "Invalid payload"}}
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	label, ok := fieldLabels[field]
	if !ok {
		label = capitalize(field)
	}

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		if field == "password" {
			return "Please enter a password with " + fe.Param() + " or more characters"
		}
		return label + " must be at least " + fe.Param() + " characters"
	case "max":
		return label + " must be at most " + fe.Param() + " characters"
	default:
		return label + " is invalid"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
