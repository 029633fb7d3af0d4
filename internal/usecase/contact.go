package usecase

import (
	"context"
	"html/template"

	"zentherasoft-backend/internal/domain"
	"zentherasoft-backend/pkg/captcha"
	"zentherasoft-backend/pkg/sanitize"
	"zentherasoft-backend/pkg/validation"
)

type contactUsecase struct {
	notifier domain.ContactNotifier
	verifier *captcha.Verifier
}

// NewContactUsecase creates the contact submission orchestrator
func NewContactUsecase(notifier domain.ContactNotifier, verifier *captcha.Verifier) domain.ContactUsecase {
	return &contactUsecase{
		notifier: notifier,
		verifier: verifier,
	}
}

// SendContactMessage runs the submission pipeline: config check, validation,
// captcha gate, sanitization, dual email dispatch. Stages run strictly in
// that order; a failure at any stage stops the pipeline before any later
// external call is made.
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	// Cheapest check first: a deployment without the Resend key can never
	// accept an inquiry, so no validation or captcha work is attempted.
	if !uc.notifier.IsConfigured() {
		return domain.ErrEmailNotConfigured
	}

	// Server-side validation; the client's identical rules are UX only and
	// are never trusted.
	if verr := validation.Struct(req); verr != nil {
		return verr
	}

	switch uc.verifier.Mode() {
	case captcha.ModeDisabled:
		// No secret configured, the gate is bypassed entirely.
	case captcha.ModeRequired:
		if req.RecaptchaToken == "" {
			return captcha.ErrTokenRequired
		}
		if !uc.verifier.Verify(ctx, req.RecaptchaToken) {
			return captcha.ErrVerificationFailed
		}
	}

	// Sanitize exactly once, right before composition. Message additionally
	// gets its newlines converted for HTML rendering.
	data := domain.NotificationData{
		Name:    template.HTML(sanitize.EscapeHTML(req.Name)),
		Email:   template.HTML(sanitize.EscapeHTML(req.Email)),
		Subject: template.HTML(sanitize.EscapeHTML(req.Subject)),
		Message: template.HTML(sanitize.EscapeMessage(req.Message)),
	}
	if req.Phone != "" {
		data.Phone = template.HTML(sanitize.EscapeHTML(req.Phone))
	}

	// Delivery is best effort once the inquiry is accepted: the notifier
	// logs per-email failures and they never bounce back to the submitter.
	uc.notifier.SendContactEmails(ctx, data)

	return nil
}
