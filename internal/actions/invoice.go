package actions

import (
	"context"
	"fmt"

	"zero-actions/internal/models"
)

// invoiceExecutor opens the payment page for an invoice. The amount is
// cosmetic; context first, then the card text ladder.
type invoiceExecutor struct {
	deps Deps
}

func (e *invoiceExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	ic := req.Context.(InvoiceContext)
	amount := firstNonEmpty(ic.Amount, priceFromCard(req.Card))

	rows := appendRow(nil, "Merchant", firstNonEmpty(ic.Merchant, req.Card.Sender))
	rows = appendRow(rows, "Invoice", ic.InvoiceNumber)
	rows = appendRow(rows, "Amount", amount)
	rows = appendRow(rows, "Due", ic.DueDate)

	return &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Pay",
	}
}

func (e *invoiceExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	ic := req.Context.(InvoiceContext)
	amount := firstNonEmpty(ic.Amount, priceFromCard(req.Card))

	message := "Opening the payment page"
	if amount != "" {
		message = fmt.Sprintf("Opening the payment page for %s", amount)
	}
	return &Outcome{
		Banner:     successBanner("Ready to pay", message),
		Directives: []models.Directive{openURL(ic.PaymentURL)},
	}, nil
}
