package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"zentherasoft-backend/config"
	"zentherasoft-backend/internal/domain"
	"zentherasoft-backend/pkg/logger"

	"github.com/resend/resend-go/v2"
)

// Service composes and sends the two contact-form emails through Resend:
// an internal notification to the studio inbox and a confirmation back to
// the submitter.
type Service struct {
	client Client
	from   string
	to     string
}

// NewService creates the email service. With no API key the service stays
// unconfigured and IsConfigured returns false; nothing is ever sent.
func NewService(cfg *config.Config) *Service {
	s := &Service{
		from: cfg.ContactEmailFrom,
		to:   cfg.ContactEmailTo,
	}
	if cfg.ResendAPIKey != "" {
		s.client = newResendClient(cfg.ResendAPIKey)
	}
	return s
}

// NewServiceWithClient injects a custom client. Used by tests.
func NewServiceWithClient(client Client, from, to string) *Service {
	return &Service{client: client, from: from, to: to}
}

// IsConfigured reports whether a Resend API key was provided. The usecase
// checks this before validation so a broken deployment fails fast.
func (s *Service) IsConfigured() bool {
	return s.client != nil
}

// SendContactEmails dispatches both emails for an accepted submission. The
// two sends are independent and run concurrently; both are awaited before
// returning, and a failure of one never aborts the other. Failures are
// logged and swallowed: once validation and the captcha gate passed, the
// inquiry counts as received and delivery is best effort.
func (s *Service) SendContactEmails(ctx context.Context, data domain.NotificationData) {
	type result struct {
		kind string
		err  error
	}

	results := make(chan result, 2)
	go func() {
		results <- result{"internal", s.sendInternal(ctx, data)}
	}()
	go func() {
		results <- result{"confirmation", s.sendConfirmation(ctx, data)}
	}()

	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			logger.Log.Error("Failed to send contact email", "email", r.kind, "error", r.err)
		}
	}
}

// sendInternal delivers the notification to the studio inbox. Reply-To is the
// submitter's address so a reply from the inbox goes straight to the customer.
func (s *Service) sendInternal(ctx context.Context, data domain.NotificationData) error {
	body, err := render(internalTmpl, data)
	if err != nil {
		return fmt.Errorf("failed to render internal email: %w", err)
	}

	_, err = s.client.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{s.to},
		Subject: fmt.Sprintf("🚀 Nuevo contacto: %s", data.Subject),
		Html:    body,
		ReplyTo: string(data.Email),
	})
	if err != nil {
		return fmt.Errorf("failed to send internal email: %w", err)
	}
	return nil
}

// sendConfirmation delivers the acknowledgment to the submitter.
func (s *Service) sendConfirmation(ctx context.Context, data domain.NotificationData) error {
	body, err := render(confirmationTmpl, data)
	if err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	_, err = s.client.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{string(data.Email)},
		Subject: "✅ Gracias por contactarnos - ZentheraSoft",
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	return nil
}

func render(tmpl *template.Template, data domain.NotificationData) (string, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}
