package email

import (
	"context"

	"github.com/resend/resend-go/v2"
)

// Client is the slice of the Resend API the service needs. In production it
// is Resend's Emails service; tests substitute a fake that records requests.
type Client interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

func newResendClient(apiKey string) Client {
	return resend.NewClient(apiKey).Emails
}
