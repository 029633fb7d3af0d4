package validation_test

import (
	"testing"

	"zentherasoft-backend/internal/domain"
	"zentherasoft-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *domain.ContactRequest {
	return &domain.ContactRequest{
		Name:    "Ana Gomez",
		Email:   "ana@example.com",
		Subject: "Quiero un sitio web",
		Message: "Necesito una landing page para mi negocio.",
	}
}

func TestStruct_ContactRules(t *testing.T) {
	t.Run("Should pass for a valid submission", func(t *testing.T) {
		assert.Nil(t, validation.Struct(validRequest()))
	})

	t.Run("Should fail when name is shorter than 2 characters", func(t *testing.T) {
		req := validRequest()
		req.Name = "A"
		errs := validation.Struct(req)
		require.NotNil(t, errs)
		assert.Equal(t, "El nombre debe tener al menos 2 caracteres", errs.Fields["Name"])
	})

	t.Run("Should fail for invalid email regardless of other fields", func(t *testing.T) {
		req := validRequest()
		req.Email = "not-an-email"
		errs := validation.Struct(req)
		require.NotNil(t, errs)
		assert.Equal(t, "Email inválido", errs.Fields["Email"])
		assert.NotContains(t, errs.Fields, "Name")
	})

	t.Run("Should fail when subject is shorter than 5 characters", func(t *testing.T) {
		req := validRequest()
		req.Subject = "Hola"
		errs := validation.Struct(req)
		require.NotNil(t, errs)
		assert.Equal(t, "El asunto debe tener al menos 5 caracteres", errs.Fields["Subject"])
	})

	t.Run("Should fail when message is shorter than 10 characters", func(t *testing.T) {
		req := validRequest()
		req.Message = "corto"
		errs := validation.Struct(req)
		require.NotNil(t, errs)
		assert.Equal(t, "El mensaje debe tener al menos 10 caracteres", errs.Fields["Message"])
	})

	t.Run("Should accept any phone content including none", func(t *testing.T) {
		req := validRequest()
		assert.Nil(t, validation.Struct(req))

		req.Phone = "+54 11 5555-0000 (oficina)"
		assert.Nil(t, validation.Struct(req))
	})

	t.Run("Should not require a captcha token", func(t *testing.T) {
		req := validRequest()
		req.RecaptchaToken = ""
		assert.Nil(t, validation.Struct(req))
	})

	t.Run("Should report every failing field", func(t *testing.T) {
		errs := validation.Struct(&domain.ContactRequest{})
		require.NotNil(t, errs)
		assert.Contains(t, errs.Fields, "Name")
		assert.Contains(t, errs.Fields, "Email")
		assert.Contains(t, errs.Fields, "Subject")
		assert.Contains(t, errs.Fields, "Message")
	})

	t.Run("Should be deterministic", func(t *testing.T) {
		req := validRequest()
		req.Name = "A"
		first := validation.Struct(req)
		second := validation.Struct(req)
		require.NotNil(t, first)
		require.NotNil(t, second)
		assert.Equal(t, first.Fields, second.Fields)
	})
}

func TestErrors_Error(t *testing.T) {
	errs := &validation.Errors{Fields: map[string]string{
		"Name":  "El nombre debe tener al menos 2 caracteres",
		"Email": "Email inválido",
	}}
	assert.Equal(t, "Email: Email inválido; Name: El nombre debe tener al menos 2 caracteres", errs.Error())

	assert.Equal(t, "invalid form data", (&validation.Errors{}).Error())
}
