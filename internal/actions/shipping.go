package actions

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"zero-actions/internal/extract"
	"zero-actions/internal/models"
)

// trackPackageExecutor opens the carrier's tracking page. Emails without a
// direct link still work when a tracking number and carrier can be found.
type trackPackageExecutor struct {
	deps Deps
}

var carrierTrackingURLs = map[string]string{
	"ups":   "https://www.ups.com/track?tracknum=%s",
	"usps":  "https://tools.usps.com/go/TrackConfirmAction?tLabels=%s",
	"fedex": "https://www.fedex.com/fedextrack/?trknbr=%s",
	"dhl":   "https://www.dhl.com/en/express/tracking.html?AWB=%s",
}

func (e *trackPackageExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	tc := req.Context.(ShippingContext)
	number := trackingNumberFor(tc, req.Card)
	link := firstNonEmpty(tc.TrackingURL, trackingURLFor(tc.Carrier, number))

	rows := appendRow(nil, "Carrier", tc.Carrier)
	rows = appendRow(rows, "Tracking number", number)

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Track Package",
	}
	if link == "" && number == "" {
		resp.Warnings = append(resp.Warnings, "No tracking information found in this email")
		resp.Disabled = true
	}
	return resp
}

func (e *trackPackageExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	tc := req.Context.(ShippingContext)
	number := trackingNumberFor(tc, req.Card)
	link := firstNonEmpty(tc.TrackingURL, trackingURLFor(tc.Carrier, number))

	if link == "" {
		if number == "" {
			return nil, NewMissingContextError("trackingNumber")
		}
		return &Outcome{
			Banner: warningBanner("No tracking link", fmt.Sprintf("Couldn't find a tracking page. Your tracking number is %s", number)),
		}, nil
	}

	message := "Opening tracking"
	if number != "" {
		message = fmt.Sprintf("Tracking package %s", number)
	}
	return &Outcome{
		Banner:     successBanner("Tracking package", message),
		Directives: []models.Directive{openURL(link)},
	}, nil
}

func trackingNumberFor(tc ShippingContext, card *models.EmailCard) string {
	if tc.TrackingNumber != "" {
		return tc.TrackingNumber
	}
	number, _ := extract.TrackingNumber(card.Text())
	return number
}

// trackingURLFor builds a carrier tracking URL from the number, inferring
// the carrier from the number's shape when the email names none.
func trackingURLFor(carrier, number string) string {
	if number == "" {
		return ""
	}
	key := strings.ToLower(strings.TrimSpace(carrier))
	if key == "" {
		key = inferCarrier(number)
	}
	pattern, ok := carrierTrackingURLs[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf(pattern, url.QueryEscape(number))
}

func inferCarrier(number string) string {
	n := strings.ToUpper(strings.ReplaceAll(number, " ", ""))
	switch {
	case strings.HasPrefix(n, "1Z"):
		return "ups"
	case allDigits(n) && len(n) >= 20:
		return "usps"
	case allDigits(n) && (len(n) == 12 || len(n) == 15):
		return "fedex"
	}
	return ""
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
