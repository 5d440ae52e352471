package capability

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends action emails via SendGrid
type SendGridMailer struct {
	apiKey string
	from   string
}

// NewSendGridMailer creates a new mailer instance
func NewSendGridMailer(apiKey, from string) *SendGridMailer {
	if from == "" {
		from = "actions@zero.example"
	}
	return &SendGridMailer{
		apiKey: apiKey,
		from:   from,
	}
}

// Available implements Mailer.
func (m *SendGridMailer) Available() bool {
	return m.apiKey != ""
}

// Send delivers one plain-text email on the user's behalf.
func (m *SendGridMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.apiKey == "" {
		return fmt.Errorf("SendGrid API key not configured")
	}
	if to == "" {
		return fmt.Errorf("recipient address is empty")
	}

	from := mail.NewEmail("Zero Actions", m.from)
	recipient := mail.NewEmail("", to)
	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	if response.StatusCode >= 400 {
		return fmt.Errorf("SendGrid API error: status %d, body: %s", response.StatusCode, response.Body)
	}

	return nil
}
