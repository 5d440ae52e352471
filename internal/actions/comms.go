package actions

import (
	"context"
	"fmt"

	"zero-actions/internal/capability"
	"zero-actions/internal/extract"
	"zero-actions/internal/models"
)

// composeReplyExecutor drafts a reply with the assist provider and hands
// it to the device's compose sheet. Assist always has a canned fallback,
// so this action never goes unavailable.
type composeReplyExecutor struct {
	deps Deps
}

func (e *composeReplyExecutor) assist() capability.Assist {
	if e.deps.Assist == nil {
		return capability.CannedAssist{}
	}
	return e.deps.Assist
}

func (e *composeReplyExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	cc := req.Context.(ReplyContext)
	tone := firstNonEmpty(cc.Tone, "friendly")

	rows := appendRow(nil, "To", req.Card.SenderEmail)
	rows = appendRow(rows, "Tone", tone)
	if suggestions, err := e.assist().SuggestReplies(ctx, req.Card, tone); err == nil {
		for _, s := range suggestions {
			rows = appendRow(rows, "Suggestion", s)
		}
	}

	return &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Reply",
	}
}

func (e *composeReplyExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	cc := req.Context.(ReplyContext)
	tone := firstNonEmpty(req.Input["tone"], cc.Tone, "friendly")

	reply := req.Input["reply"]
	if reply == "" {
		suggestions, err := e.assist().SuggestReplies(ctx, req.Card, tone)
		if err != nil || len(suggestions) == 0 {
			// The canned arm never errors; OpenAI failures fall back to it
			suggestions, _ = capability.CannedAssist{}.SuggestReplies(ctx, req.Card, tone)
		}
		if len(suggestions) > 0 {
			reply = suggestions[0]
		}
	}

	subject := "RE: " + req.Card.Title
	return &Outcome{
		Banner:     successBanner("Reply drafted", "Review the reply before sending"),
		Directives: []models.Directive{composeEmail(req.Card.SenderEmail, subject, reply)},
	}, nil
}

// placeCallExecutor starts a call to the number in the email.
type placeCallExecutor struct {
	deps Deps
}

func (e *placeCallExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	cc := req.Context.(CallContext)
	phone := phoneFor(cc, req.Card)

	rows := appendRow(nil, "Contact", cc.ContactName)
	rows = appendRow(rows, "Number", phone)

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Call",
	}
	if phone == "" {
		resp.Warnings = append(resp.Warnings, "No phone number found in this email")
		resp.Disabled = true
	} else if !deviceAllows(req.Device, "call") {
		resp.Warnings = append(resp.Warnings, "This device can't place calls")
		resp.Disabled = true
	}
	return resp
}

func (e *placeCallExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	cc := req.Context.(CallContext)
	phone := phoneFor(cc, req.Card)
	if phone == "" {
		return nil, NewMissingContextError("phoneNumber")
	}
	if !deviceAllows(req.Device, "call") {
		return nil, NewCapabilityUnavailableError("Calling")
	}

	who := firstNonEmpty(cc.ContactName, phone)
	return &Outcome{
		Banner:     successBanner("Calling", fmt.Sprintf("Calling %s", who)),
		Directives: []models.Directive{placeCall(phone)},
	}, nil
}

func phoneFor(cc CallContext, card *models.EmailCard) string {
	if cc.PhoneNumber != "" {
		return cc.PhoneNumber
	}
	phone, _ := extract.Phone(card.Text())
	return phone
}

// deviceAllows treats an empty capability list as unconstrained; only a
// device that declared capabilities and omitted this one is refused.
func deviceAllows(device models.DeviceInfo, capability string) bool {
	return len(device.Capabilities) == 0 || device.Supports(capability)
}

// directionsExecutor opens the maps app pointed at the address.
type directionsExecutor struct {
	deps Deps
}

func (e *directionsExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	dc := req.Context.(DirectionsContext)

	rows := appendRow(nil, "Place", dc.PlaceName)
	rows = appendRow(rows, "Address", dc.Address)

	return &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Get Directions",
	}
}

func (e *directionsExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	dc := req.Context.(DirectionsContext)
	destination := firstNonEmpty(dc.PlaceName, dc.Address)

	return &Outcome{
		Banner:     successBanner("Directions ready", fmt.Sprintf("Getting directions to %s", destination)),
		Directives: []models.Directive{mapsDirections(dc.Address)},
	}, nil
}

// shareExecutor presents the device share sheet.
type shareExecutor struct {
	deps Deps
}

func (e *shareExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	sc := req.Context.(ShareContext)

	rows := appendRow(nil, "Link", sc.URL)
	rows = appendRow(rows, "Text", sc.Text)

	return &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Share",
	}
}

func (e *shareExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	sc := req.Context.(ShareContext)

	return &Outcome{
		Banner:     successBanner("Share sheet ready", "Choose where to share this"),
		Directives: []models.Directive{shareSheet(sc.URL, firstNonEmpty(sc.Text, req.Card.Title))},
	}, nil
}
