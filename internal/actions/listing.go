package actions

import (
	"context"
	"fmt"

	"zero-actions/internal/extract"
	"zero-actions/internal/models"
)

// viewListingExecutor opens a real-estate listing, decorating the preview
// with whatever facts the card text yields.
type viewListingExecutor struct {
	deps Deps
}

func (e *viewListingExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	lc := req.Context.(ListingContext)
	text := req.Card.Text()

	rows := appendRow(nil, "Address", lc.Address)
	if beds, ok := extract.Bedrooms(text); ok {
		rows = appendRow(rows, "Bedrooms", beds)
	}
	if price, ok := extract.Price(text); ok {
		rows = appendRow(rows, "Price", price)
	}

	return &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "View Listing",
	}
}

func (e *viewListingExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	lc := req.Context.(ListingContext)

	message := "Opening the listing"
	if lc.Address != "" {
		message = fmt.Sprintf("Opening the listing at %s", lc.Address)
	}
	return &Outcome{
		Banner:     successBanner("Viewing listing", message),
		Directives: []models.Directive{openURL(lc.ListingURL)},
	}, nil
}
