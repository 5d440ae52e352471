package cards

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zero-actions/internal/models"
)

func rawEmail(lines ...string) *strings.Reader {
	return strings.NewReader(strings.Join(lines, "\r\n"))
}

func TestFromEmail_PlainText(t *testing.T) {
	card, err := FromEmail(rawEmail(
		"From: Acme Store <orders@acme.example>",
		"To: sam@example.com",
		"Subject: Your order has shipped",
		"Date: Wed, 15 Oct 2025 09:30:00 +0000",
		"Message-ID: <abc123@acme.example>",
		"",
		"Good news! Your order is on its way.",
		"Tracking number: 1Z999AA10123456784",
	))
	require.NoError(t, err)

	assert.Equal(t, "abc123@acme.example", card.ID, "card id follows the Message-ID")
	assert.Equal(t, "Your order has shipped", card.Title)
	assert.Equal(t, "Acme Store", card.Sender)
	assert.Equal(t, "orders@acme.example", card.SenderEmail)
	require.NotNil(t, card.ReceivedAt)
	assert.Equal(t, time.Date(2025, 10, 15, 9, 30, 0, 0, time.UTC), *card.ReceivedAt)
	assert.Contains(t, card.Body, "Tracking number: 1Z999AA10123456784")

	assert.Equal(t, "shopping", card.Category)
	require.Len(t, card.SuggestedActions, 2)
	assert.Equal(t, models.ActionTrackPackage, card.SuggestedActions[0].Type)
	assert.Equal(t, "act_01", card.SuggestedActions[0].ID)
	assert.Equal(t, "1Z999AA10123456784", card.SuggestedActions[0].Context["trackingNumber"])
	assert.Equal(t, models.ActionComposeReply, card.SuggestedActions[1].Type)
}

func TestFromEmail_EncodedSubjectAndGeneratedID(t *testing.T) {
	card, err := FromEmail(rawEmail(
		"From: no-reply@cafe.example",
		"Subject: =?UTF-8?Q?Caf=C3=A9_receipt?=",
		"",
		"Thanks for visiting.",
	))
	require.NoError(t, err)

	assert.Equal(t, "Café receipt", card.Title)
	_, err = uuid.Parse(card.ID)
	assert.NoError(t, err, "no Message-ID, so the id is generated")
	assert.Equal(t, "no-reply@cafe.example", card.Sender)
	assert.Equal(t, "no-reply@cafe.example", card.SenderEmail)
}

func TestFromEmail_NoSubject(t *testing.T) {
	card, err := FromEmail(rawEmail(
		"From: someone@example.com",
		"",
		"hello",
	))
	require.NoError(t, err)
	assert.Equal(t, "(no subject)", card.Title)
}

func TestFromEmail_MultipartPrefersPlainText(t *testing.T) {
	card, err := FromEmail(rawEmail(
		"From: billing@utility.example",
		"Subject: Statement ready",
		"MIME-Version: 1.0",
		`Content-Type: multipart/alternative; boundary="frontier"`,
		"",
		"--frontier",
		"Content-Type: text/plain; charset=utf-8",
		"Content-Transfer-Encoding: quoted-printable",
		"",
		"Caf=C3=A9 purchase: $42.50 due Friday.",
		"--frontier",
		"Content-Type: text/html",
		"",
		"<p>Ignore the HTML version.</p>",
		"--frontier--",
	))
	require.NoError(t, err)

	assert.Equal(t, "Café purchase: $42.50 due Friday.", card.Body)
	assert.NotContains(t, card.Body, "HTML")
}

func TestFromEmail_NestedMultipart(t *testing.T) {
	card, err := FromEmail(rawEmail(
		"From: trips@airline.example",
		"Subject: Check in for your flight",
		`Content-Type: multipart/mixed; boundary="outer"`,
		"",
		"--outer",
		`Content-Type: multipart/alternative; boundary="inner"`,
		"",
		"--inner",
		"Content-Type: text/plain",
		"Content-Transfer-Encoding: base64",
		"",
		"Q29uZmlybWF0aW9uOiBRWDdSMk0u",
		"--inner--",
		"--outer",
		"Content-Type: application/pdf",
		"Content-Disposition: attachment",
		"",
		"%PDF-not-really",
		"--outer--",
	))
	require.NoError(t, err)

	assert.Equal(t, "Confirmation: QX7R2M.", card.Body)
	assert.Equal(t, "travel", card.Category)
	require.NotEmpty(t, card.SuggestedActions)
	assert.Equal(t, models.ActionFlightCheckin, card.SuggestedActions[0].Type)
	assert.Equal(t, "QX7R2M", card.SuggestedActions[0].Context["confirmationCode"])
}

func TestFromEmail_HTMLOnlyFallsBackToStrippedText(t *testing.T) {
	card, err := FromEmail(rawEmail(
		"From: deals@shop.example",
		"Subject: Flash sale",
		"Content-Type: text/html",
		"",
		"<html><body><h1>Flash sale!</h1><script>track();</script>",
		"<p>Everything 20% off. Sale ends October 31.</p>",
		"<p>Shop now at https://shop.example/deals</p></body></html>",
	))
	require.NoError(t, err)

	assert.Contains(t, card.Body, "Flash sale!")
	assert.Contains(t, card.Body, "Everything 20% off.")
	assert.NotContains(t, card.Body, "track()")
	assert.NotContains(t, card.Body, "<p>")

	require.NotEmpty(t, card.SuggestedActions)
	first := card.SuggestedActions[0]
	assert.Equal(t, models.ActionSchedulePurchase, first.Type)
	assert.Equal(t, "Flash sale", first.Context["productName"])
	assert.Equal(t, "https://shop.example/deals", first.Context["productUrl"])
	assert.Equal(t, "October 31", first.Context["saleDate"])
}

func TestFromEmail_ListUnsubscribeHeader(t *testing.T) {
	card, err := FromEmail(rawEmail(
		"From: newsletter@digest.example",
		"Subject: Weekly digest",
		"List-Unsubscribe: <mailto:leave@digest.example>, <https://digest.example/unsubscribe?u=42>",
		"",
		"Your week in review.",
	))
	require.NoError(t, err)

	var unsubscribe *models.EmailAction
	for i := range card.SuggestedActions {
		if card.SuggestedActions[i].Type == models.ActionUnsubscribe {
			unsubscribe = &card.SuggestedActions[i]
		}
	}
	require.NotNil(t, unsubscribe)
	assert.Equal(t, "https://digest.example/unsubscribe?u=42", unsubscribe.Context["unsubscribeUrl"],
		"the https entry wins over mailto")

	last := card.SuggestedActions[len(card.SuggestedActions)-1]
	assert.Equal(t, models.ActionComposeReply, last.Type)
}

func TestFromEmail_NotAnEmail(t *testing.T) {
	_, err := FromEmail(strings.NewReader("this is not an rfc 822 message"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read email message")
}
