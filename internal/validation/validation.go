package validation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Indonesian mobile numbers: 08 followed by 8 to 11 digits.
var phonePattern = regexp.MustCompile(`^08\d{8,11}$`)

// FieldError reports the first field that failed validation, with a
// human-readable reason.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report fields by their JSON name, not the Go struct name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("idphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct checks s against its validate tags and returns the first failing
// field, or nil when the value is valid. It never aggregates errors.
func (v *Validator) Struct(s interface{}) *FieldError {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	ve, ok := err.(validator.ValidationErrors)
	if !ok || len(ve) == 0 {
		return &FieldError{Field: "", Message: "Invalid request body"}
	}
	first := ve[0]
	return &FieldError{Field: first.Field(), Message: message(first)}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "uuid":
		return fmt.Sprintf("%q must be a valid UUID", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "alphanum":
		return fmt.Sprintf("%q must only contain alphanumeric characters", field)
	case "min":
		return fmt.Sprintf("%q must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%q must be exactly %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fe.Param())
	case "datetime":
		return fmt.Sprintf("%q must be a valid date in YYYY-MM-DD format", field)
	case "idphone":
		return fmt.Sprintf("%q must be a valid mobile number (08 followed by 8-11 digits)", field)
	case "url":
		return fmt.Sprintf("%q must be a valid URL", field)
	default:
		return fmt.Sprintf("%q failed the %q rule", field, fe.Tag())
	}
}

var unknownFieldPattern = regexp.MustCompile(`unknown field "(.+)"`)

// DecodeBody unmarshals a JSON request body into dst, rejecting fields the
// payload schema does not declare.
func DecodeBody(body []byte, dst interface{}) *FieldError {
	if len(body) == 0 {
		body = []byte("{}")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if m := unknownFieldPattern.FindStringSubmatch(err.Error()); m != nil {
			return &FieldError{Field: m[1], Message: fmt.Sprintf("%q is not allowed", m[1])}
		}
		return &FieldError{Field: "", Message: "Invalid request body"}
	}
	// A body must be a single JSON value; trailing content is rejected.
	var trailing json.RawMessage
	if err := dec.Decode(&trailing); err != io.EOF {
		return &FieldError{Field: "", Message: "Invalid request body"}
	}
	return nil
}
