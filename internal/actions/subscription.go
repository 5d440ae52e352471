package actions

import (
	"context"
	"fmt"

	"zero-actions/internal/extract"
	"zero-actions/internal/models"
)

// cancelSubscriptionExecutor emails the service's support address asking
// for cancellation. Without a configured mailer it hands the user a
// prepared compose draft instead.
type cancelSubscriptionExecutor struct {
	deps Deps
}

func (e *cancelSubscriptionExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	sc := req.Context.(SubscriptionContext)
	service := firstNonEmpty(sc.ServiceName, req.Card.Sender)
	recipient := firstNonEmpty(sc.SupportEmail, req.Card.SenderEmail)

	rows := appendRow(nil, "Service", service)
	rows = appendRow(rows, "Price", firstNonEmpty(sc.Price, priceFromCard(req.Card)))
	rows = appendRow(rows, "Contact", recipient)

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Cancel Subscription",
	}
	if recipient == "" {
		resp.Warnings = append(resp.Warnings, "No support address found for this subscription")
		resp.Disabled = true
	} else if !e.deps.mailerAvailable() {
		resp.Warnings = append(resp.Warnings, "We'll prepare the email for you to send")
	}
	return resp
}

func (e *cancelSubscriptionExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	sc := req.Context.(SubscriptionContext)
	recipient := firstNonEmpty(sc.SupportEmail, req.Card.SenderEmail)
	if recipient == "" {
		return nil, NewMissingContextError("supportEmail")
	}

	service := firstNonEmpty(sc.ServiceName, req.Card.Sender, "my subscription")
	subject := fmt.Sprintf("Cancellation request: %s", service)
	body := fmt.Sprintf("Hello,\n\nPlease cancel my subscription to %s, effective immediately.\n\nThank you.", service)

	var directives []models.Directive
	if sc.CancelURL != "" {
		directives = append(directives, openURL(sc.CancelURL))
	}

	if !e.deps.mailerAvailable() {
		directives = append(directives, composeEmail(recipient, subject, body))
		return &Outcome{
			Banner:     warningBanner("Email ready to send", "Sending isn't configured. Review the cancellation email and send it yourself."),
			Directives: directives,
		}, nil
	}

	if err := e.deps.Mailer.Send(ctx, recipient, subject, body); err != nil {
		return nil, NewDeliveryFailedError(err)
	}
	return &Outcome{
		Banner:     successBanner("Cancellation requested", fmt.Sprintf("Cancellation email sent to %s", recipient)),
		Directives: directives,
		Effects:    []string{fmt.Sprintf("cancellation email sent to %s", recipient)},
	}, nil
}

// unsubscribeExecutor prefers the list's one-click unsubscribe link and
// falls back to mailing the list address.
type unsubscribeExecutor struct {
	deps Deps
}

func (e *unsubscribeExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	uc := req.Context.(UnsubscribeContext)
	recipient := firstNonEmpty(uc.ListEmail, req.Card.SenderEmail)

	rows := appendRow(nil, "List", firstNonEmpty(uc.ListName, req.Card.Sender))
	if uc.UnsubscribeURL == "" {
		rows = appendRow(rows, "Contact", recipient)
	}

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Unsubscribe",
	}
	if uc.UnsubscribeURL == "" && recipient == "" {
		resp.Warnings = append(resp.Warnings, "No unsubscribe link or contact address found")
		resp.Disabled = true
	}
	return resp
}

func (e *unsubscribeExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	uc := req.Context.(UnsubscribeContext)
	list := firstNonEmpty(uc.ListName, req.Card.Sender, "this list")

	if uc.UnsubscribeURL != "" {
		return &Outcome{
			Banner:     successBanner("Unsubscribing", fmt.Sprintf("Opening the unsubscribe page for %s", list)),
			Directives: []models.Directive{openURL(uc.UnsubscribeURL)},
		}, nil
	}

	recipient := firstNonEmpty(uc.ListEmail, req.Card.SenderEmail)
	if recipient == "" {
		return nil, NewMissingContextError("unsubscribeUrl")
	}

	subject := "Unsubscribe"
	body := "Please remove this address from your mailing list.\n\nThank you."
	if !e.deps.mailerAvailable() {
		return &Outcome{
			Banner:     warningBanner("Email ready to send", "Sending isn't configured. Review the unsubscribe email and send it yourself."),
			Directives: []models.Directive{composeEmail(recipient, subject, body)},
		}, nil
	}

	if err := e.deps.Mailer.Send(ctx, recipient, subject, body); err != nil {
		return nil, NewDeliveryFailedError(err)
	}
	return &Outcome{
		Banner:  successBanner("Unsubscribed", fmt.Sprintf("Unsubscribe request sent to %s", recipient)),
		Effects: []string{fmt.Sprintf("unsubscribe email sent to %s", recipient)},
	}, nil
}

// priceFromCard pulls a price from the card text, empty when none matches.
func priceFromCard(card *models.EmailCard) string {
	price, _ := extract.Price(card.Text())
	return price
}
