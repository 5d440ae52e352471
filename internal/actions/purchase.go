package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zero-actions/internal/dates"
	"zero-actions/internal/extract"
	"zero-actions/internal/models"
	"zero-actions/internal/purchases"
)

// purchaseExecutor schedules a purchase for when a sale ends. The heavy
// lifting lives in the purchases service; this executor resolves the sale
// date and translates service errors into action errors.
type purchaseExecutor struct {
	deps Deps
}

func (e *purchaseExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	pc := req.Context.(PurchaseContext)
	scheduled := dates.Resolve(pc.SaleDate, e.deps.now())

	rows := appendRow(nil, "Product", pc.ProductName)
	rows = appendRow(rows, "Sale ends", pc.SaleDate)
	rows = appendRow(rows, "Scheduled for", dates.FormatBanner(scheduled))
	if price, ok := extract.Price(req.Card.Text()); ok {
		rows = appendRow(rows, "Price", price)
	}

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Schedule",
	}
	if e.deps.Purchases == nil {
		resp.Warnings = append(resp.Warnings, "Purchase scheduling is not available")
		resp.Disabled = true
	}
	return resp
}

func (e *purchaseExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	pc := req.Context.(PurchaseContext)
	if e.deps.Purchases == nil {
		return nil, NewCapabilityUnavailableError("purchase scheduling")
	}

	scheduled := dates.Resolve(pc.SaleDate, e.deps.now())
	purchase, created, err := e.deps.Purchases.Schedule(ctx, models.SchedulePurchaseRequest{
		UserID:        req.UserID,
		EmailID:       req.Card.ID,
		ProductName:   pc.ProductName,
		ProductURL:    pc.ProductURL,
		ScheduledTime: scheduled.Format(time.RFC3339),
		Timezone:      firstNonEmpty(req.Input["timezone"], "UTC"),
	})
	if err != nil {
		var verr *purchases.ValidationError
		if errors.As(err, &verr) {
			return nil, NewValidationError(verr.Field, verr.Message)
		}
		return nil, NewSchedulingFailedError(err)
	}

	when := dates.FormatBanner(purchase.ScheduledTime)
	if !created {
		return &Outcome{
			Banner:  successBanner("Already scheduled", fmt.Sprintf("A purchase for this email is already scheduled for %s", when)),
			Effects: []string{fmt.Sprintf("existing purchase %s returned", purchase.ID)},
		}, nil
	}
	return &Outcome{
		Banner:  successBanner("Purchase scheduled", fmt.Sprintf("Purchase scheduled for %s", when)),
		Effects: []string{fmt.Sprintf("purchase %s scheduled for %s", purchase.ID, when)},
	}, nil
}
