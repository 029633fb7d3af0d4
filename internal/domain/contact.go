package domain

import (
	"context"
	"errors"
	"html/template"
)

// ErrEmailNotConfigured means the Resend API key is absent. Nothing can be
// accepted in that state, so it is checked before any other work.
var ErrEmailNotConfigured = errors.New("email service is not configured")

// ContactRequest represents a contact form submission. The validate tags are
// the single source of the field rules; the website's inline validation uses
// the same rules so client and server never drift apart.
type ContactRequest struct {
	Name           string `json:"name" validate:"required,min=2"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"omitempty"`
	Subject        string `json:"subject" validate:"required,min=5"`
	Message        string `json:"message" validate:"required,min=10"`
	RecaptchaToken string `json:"recaptchaToken" validate:"omitempty"`
}

// NotificationData carries the sanitized fields embedded into the outbound
// emails. Every field has already been HTML-escaped (and Message had its
// newlines converted to <br>), which is why they are typed template.HTML:
// the email templates must not escape them a second time.
type NotificationData struct {
	Name    template.HTML
	Email   template.HTML
	Phone   template.HTML
	Subject template.HTML
	Message template.HTML
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates, gates and dispatches a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}

// ContactNotifier sends the outbound emails for an accepted submission.
type ContactNotifier interface {
	// IsConfigured reports whether the email provider credentials are present
	IsConfigured() bool
	// SendContactEmails dispatches the internal notification and the customer
	// confirmation. Delivery is best effort: failures are logged, not returned.
	SendContactEmails(ctx context.Context, data NotificationData)
}
