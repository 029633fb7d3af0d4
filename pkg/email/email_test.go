package email_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"zentherasoft-backend/config"
	"zentherasoft-backend/internal/domain"
	"zentherasoft-backend/pkg/email"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	studioFrom = "ZentheraSoft <contacto@zentherasoft.com>"
	studioTo   = "contacto@zentherasoft.com"
)

// fakeClient records every send and can be told to fail selected requests.
type fakeClient struct {
	mu       sync.Mutex
	requests []*resend.SendEmailRequest
	failFor  func(*resend.SendEmailRequest) error
}

func (f *fakeClient) SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, params)
	if f.failFor != nil {
		if err := f.failFor(params); err != nil {
			return nil, err
		}
	}
	return &resend.SendEmailResponse{Id: "email_123"}, nil
}

func (f *fakeClient) sent() []*resend.SendEmailRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*resend.SendEmailRequest(nil), f.requests...)
}

func sampleData() domain.NotificationData {
	return domain.NotificationData{
		Name:    "Ana Gomez",
		Email:   "ana@example.com",
		Subject: "Quiero un sitio web",
		Message: "Necesito una landing page para mi negocio.",
	}
}

// splitSent separates the internal notification from the confirmation.
func splitSent(t *testing.T, sent []*resend.SendEmailRequest) (internal, confirmation *resend.SendEmailRequest) {
	t.Helper()
	require.Len(t, sent, 2)
	for _, req := range sent {
		require.Len(t, req.To, 1)
		if req.To[0] == studioTo {
			internal = req
		} else {
			confirmation = req
		}
	}
	require.NotNil(t, internal, "internal notification missing")
	require.NotNil(t, confirmation, "confirmation missing")
	return internal, confirmation
}

func TestIsConfigured(t *testing.T) {
	assert.False(t, email.NewService(&config.Config{}).IsConfigured())
	assert.True(t, email.NewService(&config.Config{ResendAPIKey: "re_test"}).IsConfigured())
}

func TestSendContactEmails(t *testing.T) {
	t.Run("Should dispatch exactly two emails", func(t *testing.T) {
		fake := &fakeClient{}
		svc := email.NewServiceWithClient(fake, studioFrom, studioTo)

		svc.SendContactEmails(context.Background(), sampleData())

		internal, confirmation := splitSent(t, fake.sent())

		assert.Equal(t, studioFrom, internal.From)
		assert.Equal(t, "ana@example.com", internal.ReplyTo)
		assert.Contains(t, internal.Subject, "Quiero un sitio web")
		assert.Contains(t, internal.Html, "Ana Gomez")
		assert.Contains(t, internal.Html, "ana@example.com")

		assert.Equal(t, []string{"ana@example.com"}, confirmation.To)
		assert.Equal(t, "✅ Gracias por contactarnos - ZentheraSoft", confirmation.Subject)
		assert.Contains(t, confirmation.Html, "Necesito una landing page")
	})

	t.Run("Should include phone only when present", func(t *testing.T) {
		fake := &fakeClient{}
		svc := email.NewServiceWithClient(fake, studioFrom, studioTo)

		svc.SendContactEmails(context.Background(), sampleData())
		internal, _ := splitSent(t, fake.sent())
		assert.NotContains(t, internal.Html, "Teléfono")

		fake2 := &fakeClient{}
		svc2 := email.NewServiceWithClient(fake2, studioFrom, studioTo)
		data := sampleData()
		data.Phone = "+54 11 5555-0000"
		svc2.SendContactEmails(context.Background(), data)
		internal2, _ := splitSent(t, fake2.sent())
		assert.Contains(t, internal2.Html, "Teléfono")
		assert.Contains(t, internal2.Html, "+54 11 5555-0000")
	})

	t.Run("Should not re-escape pre-sanitized fields", func(t *testing.T) {
		fake := &fakeClient{}
		svc := email.NewServiceWithClient(fake, studioFrom, studioTo)

		data := sampleData()
		data.Message = "hola&#039; mundo<br>segunda línea"
		svc.SendContactEmails(context.Background(), data)

		internal, _ := splitSent(t, fake.sent())
		assert.Contains(t, internal.Html, "hola&#039; mundo<br>segunda línea")
		assert.NotContains(t, internal.Html, "&amp;#039;")
	})

	t.Run("Should still send the confirmation when the internal email fails", func(t *testing.T) {
		fake := &fakeClient{
			failFor: func(req *resend.SendEmailRequest) error {
				if req.To[0] == studioTo {
					return errors.New("resend: 500")
				}
				return nil
			},
		}
		svc := email.NewServiceWithClient(fake, studioFrom, studioTo)

		svc.SendContactEmails(context.Background(), sampleData())

		_, confirmation := splitSent(t, fake.sent())
		assert.Equal(t, []string{"ana@example.com"}, confirmation.To)
	})

	t.Run("Should still send the internal email when the confirmation fails", func(t *testing.T) {
		fake := &fakeClient{
			failFor: func(req *resend.SendEmailRequest) error {
				if req.To[0] != studioTo {
					return errors.New("resend: invalid recipient")
				}
				return nil
			},
		}
		svc := email.NewServiceWithClient(fake, studioFrom, studioTo)

		svc.SendContactEmails(context.Background(), sampleData())

		internal, _ := splitSent(t, fake.sent())
		assert.True(t, strings.Contains(internal.Subject, "Nuevo contacto"))
	})
}
