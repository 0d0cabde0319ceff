// Package validation wraps go-playground/validator and reports failures as
// per-field errors that handlers can render next to form inputs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// report fields under their form names, not the Go struct names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return v
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field string // form field name, e.g. "proficiency"
	Rule  string // failed validator tag, e.g. "max"
	Param string // tag parameter, e.g. "100"
}

// Error implements the error interface.
func (e FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field %q failed rule %q (param %s)", e.Field, e.Rule, e.Param)
	}

	return fmt.Sprintf("field %q failed rule %q", e.Field, e.Rule)
}

// Message returns a human readable message for form rendering.
func (e FieldError) Message() string {
	switch e.Rule {
	case "required":
		return "The " + e.Field + " field is required."
	case "url":
		return "The " + e.Field + " field must be a valid URL."
	case "email":
		return "The " + e.Field + " field must be a valid email address."
	case "min":
		return "The " + e.Field + " field must be at least " + e.Param + "."
	case "max":
		return "The " + e.Field + " field must not be greater than " + e.Param + "."
	default:
		return "The " + e.Field + " field is invalid."
	}
}

// Errors is the list of failed rules for one submitted form.
type Errors []FieldError

// Error implements the error interface.
func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}

	return strings.Join(msgs, "; ")
}

// Struct validates data against its validate tags. It returns nil on success
// and an Errors value describing every failed field otherwise.
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	out := make(Errors, 0, len(validationErrors))
	for _, ve := range validationErrors {
		out = append(out, FieldError{
			Field: ve.Field(),
			Rule:  ve.Tag(),
			Param: ve.Param(),
		})
	}

	return out
}
