// internal/app/system/inputval/inputval.go

// Package inputval runs declarative field validation against incoming
// write payloads before anything touches the database. Every rule is
// checked and every violation collected, so the client gets the full
// list of problems in one round trip instead of one at a time.
package inputval

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one field-level violation. Field is the json path into
// the payload, including indexes for nested arrays
// (e.g. "batches[0].slots[1].time").
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result accumulates field errors for one payload.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "" when the result is clean.
func (r Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// Add appends a violation. Used for checks that don't fit a struct tag.
func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Messages maps "<field pattern>|<rule tag>" to the message reported for
// that violation. Field patterns use "[]" for any index, so
// "batches[].slots[].time|required" covers every slot. A "*" rule tag
// matches any rule on that field.
type Messages map[string]string

var whatsappRe = regexp.MustCompile(`^\+\d{1,4}\d{10}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json names so errors line up with the wire
	// payload rather than Go struct fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// +<1-4 digit country code><10 digits>
	_ = v.RegisterValidation("whatsapp", func(fl validator.FieldLevel) bool {
		return whatsappRe.MatchString(fl.Field().String())
	})

	return v
}

// Validate checks v against its struct tags and translates every failure
// through msgs. It never stops at the first violation.
func Validate(v any, msgs Messages) Result {
	var res Result

	err := validate.Struct(v)
	if err == nil {
		return res
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		res.Add("", "Invalid request payload")
		return res
	}

	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		res.Add(field, messageFor(field, fe.Tag(), msgs))
	}
	return res
}

// fieldPath strips the payload type name from a namespace like
// "programPayload.batches[0].slots[1].time".
func fieldPath(ns string) string {
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

var indexRe = regexp.MustCompile(`\[\d+\]`)

func messageFor(field, tag string, msgs Messages) string {
	pattern := indexRe.ReplaceAllString(field, "[]")
	if m, ok := msgs[pattern+"|"+tag]; ok {
		return m
	}
	if m, ok := msgs[pattern+"|*"]; ok {
		return m
	}
	return "Invalid value for " + field
}
