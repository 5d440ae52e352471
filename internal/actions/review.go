package actions

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"zero-actions/internal/models"
)

// writeReviewExecutor opens the review page with the chosen star rating
// attached as a query parameter.
type writeReviewExecutor struct {
	deps Deps
}

func (e *writeReviewExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	rc := req.Context.(ReviewContext)

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   appendRow(nil, "Product", rc.ProductName),
		PrimaryLabel: "Write Review",
	}
	if rc.ReviewURL == "" {
		resp.Warnings = append(resp.Warnings, "No review link found in this email")
		resp.Disabled = true
	}
	return resp
}

func (e *writeReviewExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	rc := req.Context.(ReviewContext)

	rating, err := strconv.Atoi(strings.TrimSpace(req.Input["rating"]))
	if err != nil || rating < 1 || rating > 5 {
		return nil, NewValidationError("rating", "rating must be a number between 1 and 5")
	}
	if rc.ReviewURL == "" {
		return nil, NewMissingContextError("reviewUrl")
	}

	link := rc.ReviewURL
	if u, err := url.Parse(link); err == nil {
		q := u.Query()
		q.Set("rating", strconv.Itoa(rating))
		u.RawQuery = q.Encode()
		link = u.String()
	}

	product := firstNonEmpty(rc.ProductName, "your purchase")
	return &Outcome{
		Banner:     successBanner("Review started", fmt.Sprintf("Opening the review page with your %d-star rating", rating)),
		Directives: []models.Directive{openURL(link)},
		Effects:    []string{fmt.Sprintf("rating %d recorded for %s", rating, product)},
	}, nil
}

// signFormExecutor records the typed signature as consent and opens the
// document for the real signing flow.
type signFormExecutor struct {
	deps Deps
}

func (e *signFormExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	fc := req.Context.(FormContext)

	return &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   appendRow(nil, "Document", fc.DocumentName),
		PrimaryLabel: "Sign",
	}
}

func (e *signFormExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	fc := req.Context.(FormContext)

	signature := strings.TrimSpace(req.Input["signature"])
	if utf8.RuneCountInString(signature) < 2 {
		return nil, NewValidationError("signature", "signature must be at least 2 characters")
	}

	document := firstNonEmpty(fc.DocumentName, "the form")
	var directives []models.Directive
	if fc.DocumentURL != "" {
		directives = append(directives, openURL(fc.DocumentURL))
	}
	return &Outcome{
		Banner:     successBanner("Form signed", fmt.Sprintf("Signed %s as %s", document, signature)),
		Directives: directives,
		Effects:    []string{fmt.Sprintf("consent recorded for %s, signed %q", document, signature)},
	}, nil
}
