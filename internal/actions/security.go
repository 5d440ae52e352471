package actions

import (
	"context"

	"zero-actions/internal/models"
)

// securityReviewExecutor surfaces a sign-in alert's details and sends the
// user to their account security page. Banners stay warning-kind; nothing
// about an alert is a success.
type securityReviewExecutor struct {
	deps Deps
}

func (e *securityReviewExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	sc := req.Context.(SecurityContext)

	rows := appendRow(nil, "Location", sc.Location)
	rows = appendRow(rows, "Device", sc.Device)
	rows = appendRow(rows, "Time", sc.AlertTime)

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Review Activity",
	}
	if sc.SecurityURL == "" {
		resp.Warnings = append(resp.Warnings, "No account link in this alert. Open your account settings directly.")
	}
	return resp
}

func (e *securityReviewExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	sc := req.Context.(SecurityContext)

	if sc.SecurityURL == "" {
		return &Outcome{
			Banner: warningBanner("Review your account", "Open your account's security settings and check recent activity"),
		}, nil
	}
	return &Outcome{
		Banner:     warningBanner("Review your account", "Check the recent activity shown and secure your account if it wasn't you"),
		Directives: []models.Directive{openURL(sc.SecurityURL)},
	}, nil
}
