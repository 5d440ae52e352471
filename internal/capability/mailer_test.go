package capability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSendGridMailer_DefaultFrom(t *testing.T) {
	mailer := NewSendGridMailer("key", "")
	assert.Equal(t, "actions@zero.example", mailer.from)

	mailer = NewSendGridMailer("key", "support@zero.example")
	assert.Equal(t, "support@zero.example", mailer.from)
}

func TestSendGridMailer_Available(t *testing.T) {
	assert.False(t, NewSendGridMailer("", "").Available())
	assert.True(t, NewSendGridMailer("key", "").Available())
}

func TestSendGridMailer_Send_NoAPIKey(t *testing.T) {
	mailer := NewSendGridMailer("", "")

	err := mailer.Send(context.Background(), "user@example.com", "RSVP", "Yes, attending.")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SendGrid API key not configured")
}

func TestSendGridMailer_Send_EmptyRecipient(t *testing.T) {
	mailer := NewSendGridMailer("key", "")

	err := mailer.Send(context.Background(), "", "RSVP", "Yes, attending.")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "recipient address is empty")
}
