package validation

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the Spanish labels shown to users
var FieldLabels = map[string]string{
	"Name":           "Nombre",
	"Email":          "Email",
	"Phone":          "Teléfono",
	"Subject":        "Asunto",
	"Message":        "Mensaje",
	"RecaptchaToken": "Token reCAPTCHA",
}

// FieldMessages carries the exact inline messages the website shows next to
// each input when its rule fails. Anything not listed here falls back to a
// generated message.
var FieldMessages = map[string]string{
	"Name":    "El nombre debe tener al menos 2 caracteres",
	"Email":   "Email inválido",
	"Subject": "El asunto debe tener al menos 5 caracteres",
	"Message": "El mensaje debe tener al menos 10 caracteres",
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Errors is a validation failure with per-field messages suitable for inline
// display. The server never sends these to clients; it answers with a single
// generic message and this detail stays available for local form rendering.
type Errors struct {
	Fields map[string]string
}

func (e *Errors) Error() string {
	if len(e.Fields) == 0 {
		return "invalid form data"
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

// Struct validates s against its `validate` tags. It is pure and synchronous:
// same input, same verdict, no side effects. Returns nil when every rule
// passes, otherwise an *Errors keyed by struct field name.
func Struct(s interface{}) *Errors {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &Errors{Fields: map[string]string{"": err.Error()}}
	}

	fields := make(map[string]string, len(validationErrors))
	for _, e := range validationErrors {
		fields[e.Field()] = formatSingleError(e)
	}
	return &Errors{Fields: fields}
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	if msg, ok := FieldMessages[e.Field()]; ok {
		return msg
	}

	label := getFieldLabel(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s es obligatorio", label)
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", label, e.Param())
	case "max":
		return fmt.Sprintf("%s debe tener como máximo %s caracteres", label, e.Param())
	case "email":
		return fmt.Sprintf("%s inválido", label)
	default:
		return fmt.Sprintf("%s no es válido", label)
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
