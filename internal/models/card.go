package models

import (
	"strings"
	"time"
)

// ActionType identifies one of the supported email actions
type ActionType string

const (
	ActionSchedulePurchase   ActionType = "schedule_purchase"
	ActionCancelSubscription ActionType = "cancel_subscription"
	ActionUnsubscribe        ActionType = "unsubscribe"
	ActionPayInvoice         ActionType = "pay_invoice"
	ActionFlightCheckin      ActionType = "flight_checkin"
	ActionTrackPackage       ActionType = "track_package"
	ActionRSVP               ActionType = "rsvp"
	ActionAddCalendarEvent   ActionType = "add_calendar_event"
	ActionSetReminder        ActionType = "set_reminder"
	ActionWriteReview        ActionType = "write_review"
	ActionSignForm           ActionType = "sign_form"
	ActionComposeReply       ActionType = "compose_reply"
	ActionPlaceCall          ActionType = "place_call"
	ActionGetDirections      ActionType = "get_directions"
	ActionShare              ActionType = "share"
	ActionAddWalletPass      ActionType = "add_wallet_pass"
	ActionSecurityReview     ActionType = "security_review"
	ActionViewListing        ActionType = "view_listing"
)

// KnownActionTypes lists every action type the service can execute,
// in a stable order.
func KnownActionTypes() []ActionType {
	return []ActionType{
		ActionSchedulePurchase,
		ActionCancelSubscription,
		ActionUnsubscribe,
		ActionPayInvoice,
		ActionFlightCheckin,
		ActionTrackPackage,
		ActionRSVP,
		ActionAddCalendarEvent,
		ActionSetReminder,
		ActionWriteReview,
		ActionSignForm,
		ActionComposeReply,
		ActionPlaceCall,
		ActionGetDirections,
		ActionShare,
		ActionAddWalletPass,
		ActionSecurityReview,
		ActionViewListing,
	}
}

// Valid reports whether t is one of the known action types.
func (t ActionType) Valid() bool {
	for _, known := range KnownActionTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// EmailAction is one suggested action attached to a card. Context carries
// the action's wire payload as loose key/value pairs; it is parsed into a
// typed context at the API boundary and never consumed raw past it.
type EmailAction struct {
	ID          string            `json:"id" example:"act_01"`
	Type        ActionType        `json:"type" example:"schedule_purchase"`
	DisplayName string            `json:"displayName" example:"Schedule Purchase"`
	Context     map[string]string `json:"context,omitempty"`
}

// EmailCard is one actionable email as presented in the triage feed.
// Every field except ID and Title is optional; missing data is rendered
// as an omission, never as an error.
type EmailCard struct {
	ID               string        `json:"id" example:"card_8f2"`
	Title            string        `json:"title" example:"Your order has shipped"`
	Sender           string        `json:"sender,omitempty" example:"Acme Store"`
	SenderEmail      string        `json:"senderEmail,omitempty" example:"orders@acme.example"`
	Summary          string        `json:"summary,omitempty"`
	Body             string        `json:"body,omitempty"`
	ReceivedAt       *time.Time    `json:"receivedAt,omitempty"`
	Category         string        `json:"category,omitempty" example:"shopping"`
	SuggestedActions []EmailAction `json:"suggestedActions,omitempty"`
}

// Text returns the card's searchable text (title, summary, body in that
// order) for the fact extractors.
func (c *EmailCard) Text() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{c.Title, c.Summary, c.Body} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}

// ActionByID returns the suggested action with the given id, if present.
func (c *EmailCard) ActionByID(id string) (EmailAction, bool) {
	for _, a := range c.SuggestedActions {
		if a.ID == id {
			return a, true
		}
	}
	return EmailAction{}, false
}
