package actions

import (
	"context"
	"fmt"

	"zero-actions/internal/extract"
	"zero-actions/internal/models"
)

// flightCheckinExecutor opens the airline's check-in page and, when the
// device has Wallet, offers the boarding pass alongside.
type flightCheckinExecutor struct {
	deps Deps
}

func (e *flightCheckinExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	fc := req.Context.(FlightContext)
	code := confirmationFor(fc, req.Card)

	rows := appendRow(nil, "Airline", firstNonEmpty(fc.Airline, req.Card.Sender))
	rows = appendRow(rows, "Confirmation", code)
	rows = appendRow(rows, "Departs", fc.DepartureDate)

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Check In",
	}
	if fc.CheckinURL == "" {
		resp.Warnings = append(resp.Warnings, "No check-in link found in this email")
		if !req.Device.Supports("wallet") || code == "" {
			resp.Disabled = true
		}
	}
	return resp
}

func (e *flightCheckinExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	fc := req.Context.(FlightContext)
	code := confirmationFor(fc, req.Card)

	var directives []models.Directive
	if fc.CheckinURL != "" {
		directives = append(directives, openURL(fc.CheckinURL))
	}
	if req.Device.Supports("wallet") && code != "" {
		directives = append(directives, addWalletPass("boardingPass", code))
	}
	if len(directives) == 0 {
		return nil, NewMissingContextError("checkinUrl")
	}

	message := "Opening check-in"
	if code != "" {
		message = fmt.Sprintf("Opening check-in. Confirmation %s", code)
	}
	return &Outcome{
		Banner:     successBanner("Check-in ready", message),
		Directives: directives,
	}, nil
}

func confirmationFor(fc FlightContext, card *models.EmailCard) string {
	if fc.ConfirmationCode != "" {
		return fc.ConfirmationCode
	}
	code, _ := extract.ConfirmationCode(card.Text())
	return code
}

// walletPassExecutor hands a pass to the device. Wallet is the one
// directive that hard-requires a declared device capability.
type walletPassExecutor struct {
	deps Deps
}

func (e *walletPassExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	wc := req.Context.(WalletContext)

	rows := appendRow(nil, "Pass type", wc.PassType)
	rows = appendRow(rows, "Barcode", wc.BarcodeValue)

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Add to Wallet",
	}
	if !req.Device.Supports("wallet") {
		resp.Warnings = append(resp.Warnings, "Wallet isn't available on this device")
		resp.Disabled = true
	}
	return resp
}

func (e *walletPassExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	if !req.Device.Supports("wallet") {
		return nil, NewCapabilityUnavailableError("Wallet")
	}

	wc := req.Context.(WalletContext)
	barcode := wc.BarcodeValue
	if barcode == "" {
		barcode, _ = extract.ConfirmationCode(req.Card.Text())
	}
	return &Outcome{
		Banner:     successBanner("Pass ready", "Adding the pass to Wallet"),
		Directives: []models.Directive{addWalletPass(firstNonEmpty(wc.PassType, "generic"), barcode)},
	}, nil
}
