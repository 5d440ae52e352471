package cards

import (
	"fmt"
	"regexp"
	"strings"

	"zero-actions/internal/extract"
	"zero-actions/internal/models"
)

const maxKeywordSuggestions = 2

var urlRe = regexp.MustCompile(`https?://[^\s<>"']+`)

// suggestionRule maps body/title keywords to one suggested action. Rules
// are checked in order; earlier rules also decide the card's category.
type suggestionRule struct {
	actionType models.ActionType
	display    string
	category   string
	keywords   []string
	// context seeds the action's context map; returning nil skips the
	// suggestion when it would be unactionable.
	context func(card *models.EmailCard) map[string]string
}

var suggestionRules = []suggestionRule{
	{
		actionType: models.ActionSecurityReview,
		display:    "Review Activity",
		category:   "security",
		keywords:   []string{"new sign-in", "sign-in detected", "new login", "security alert", "suspicious activity", "wasn't you"},
		context: func(card *models.EmailCard) map[string]string {
			ctx := map[string]string{}
			if url := firstURL(card.Body); url != "" {
				ctx["securityUrl"] = url
			}
			return ctx
		},
	},
	{
		actionType: models.ActionTrackPackage,
		display:    "Track Package",
		category:   "shopping",
		keywords:   []string{"out for delivery", "has shipped", "shipment", "tracking number", "on its way"},
		context: func(card *models.EmailCard) map[string]string {
			ctx := map[string]string{}
			if number, ok := extract.TrackingNumber(card.Text()); ok {
				ctx["trackingNumber"] = number
			}
			return ctx
		},
	},
	{
		actionType: models.ActionPayInvoice,
		display:    "Pay Invoice",
		category:   "billing",
		keywords:   []string{"invoice", "amount due", "payment due", "your bill", "balance due"},
		context: func(card *models.EmailCard) map[string]string {
			url := firstURL(card.Body)
			if url == "" {
				return nil
			}
			ctx := map[string]string{"paymentUrl": url}
			if price, ok := extract.Price(card.Text()); ok {
				ctx["amount"] = price
			}
			return ctx
		},
	},
	{
		actionType: models.ActionFlightCheckin,
		display:    "Check In",
		category:   "travel",
		keywords:   []string{"your flight", "boarding pass", "check in online", "departure"},
		context: func(card *models.EmailCard) map[string]string {
			ctx := map[string]string{}
			if code, ok := extract.ConfirmationCode(card.Text()); ok {
				ctx["confirmationCode"] = code
			}
			if url := firstURL(card.Body); url != "" {
				ctx["checkinUrl"] = url
			}
			return ctx
		},
	},
	{
		actionType: models.ActionRSVP,
		display:    "RSVP",
		category:   "events",
		keywords:   []string{"rsvp", "you're invited", "invitation", "invites you"},
		context: func(card *models.EmailCard) map[string]string {
			return map[string]string{"eventTitle": card.Title}
		},
	},
	{
		actionType: models.ActionCancelSubscription,
		display:    "Cancel Subscription",
		category:   "billing",
		keywords:   []string{"subscription", "renews on", "renewal", "auto-renew"},
		context: func(card *models.EmailCard) map[string]string {
			ctx := map[string]string{}
			if price, ok := extract.Price(card.Text()); ok {
				ctx["price"] = price
			}
			return ctx
		},
	},
	{
		actionType: models.ActionSchedulePurchase,
		display:    "Schedule Purchase",
		category:   "shopping",
		keywords:   []string{"sale ends", "flash sale", "% off", "limited time", "price drop"},
		context: func(card *models.EmailCard) map[string]string {
			url := firstURL(card.Body)
			saleDate, ok := extract.SaleEndDate(card.Text())
			if url == "" || !ok {
				// Without a product link and an end date the purchase
				// flow rejects the context outright
				return nil
			}
			return map[string]string{
				"productName": card.Title,
				"productUrl":  url,
				"saleDate":    saleDate,
			}
		},
	},
	{
		actionType: models.ActionWriteReview,
		display:    "Write Review",
		category:   "shopping",
		keywords:   []string{"rate your", "review your", "how was your", "tell us what you think"},
		context: func(card *models.EmailCard) map[string]string {
			url := firstURL(card.Body)
			if url == "" {
				return nil
			}
			return map[string]string{"reviewUrl": url}
		},
	},
	{
		actionType: models.ActionViewListing,
		display:    "View Listing",
		category:   "housing",
		keywords:   []string{"new listing", "open house", "just listed", "bedroom"},
		context: func(card *models.EmailCard) map[string]string {
			url := firstURL(card.Body)
			if url == "" {
				return nil
			}
			return map[string]string{"listingUrl": url}
		},
	},
	{
		actionType: models.ActionAddCalendarEvent,
		display:    "Add to Calendar",
		category:   "events",
		keywords:   []string{"appointment", "meeting", "webinar", "save the date"},
		context: func(card *models.EmailCard) map[string]string {
			return map[string]string{"title": card.Title}
		},
	},
	{
		actionType: models.ActionSetReminder,
		display:    "Set Reminder",
		category:   "personal",
		keywords:   []string{"don't forget", "reminder", "due by", "expires"},
		context: func(card *models.EmailCard) map[string]string {
			return map[string]string{}
		},
	},
}

// suggestActions applies the keyword rules plus two structural signals:
// a List-Unsubscribe header and a known sender address.
func suggestActions(card *models.EmailCard, listUnsubscribe string) (string, []models.EmailAction) {
	text := strings.ToLower(card.Text())
	category := ""
	var actions []models.EmailAction

	add := func(actionType models.ActionType, display string, context map[string]string) {
		actions = append(actions, models.EmailAction{
			ID:          fmt.Sprintf("act_%02d", len(actions)+1),
			Type:        actionType,
			DisplayName: display,
			Context:     context,
		})
	}

	matched := 0
	for _, rule := range suggestionRules {
		if matched >= maxKeywordSuggestions {
			break
		}
		if !containsAny(text, rule.keywords) {
			continue
		}
		context := rule.context(card)
		if context == nil {
			continue
		}
		if category == "" {
			category = rule.category
		}
		add(rule.actionType, rule.display, context)
		matched++
	}

	if ctx := unsubscribeContext(listUnsubscribe); ctx != nil {
		add(models.ActionUnsubscribe, "Unsubscribe", ctx)
	}
	if card.SenderEmail != "" {
		add(models.ActionComposeReply, "Reply", nil)
	}

	if category == "" {
		category = "general"
	}
	return category, actions
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// unsubscribeContext reads an RFC 2369 List-Unsubscribe header. The https
// entry wins over mailto; no usable entry means no suggestion.
func unsubscribeContext(header string) map[string]string {
	if strings.TrimSpace(header) == "" {
		return nil
	}

	var mailto string
	for _, entry := range strings.Split(header, ",") {
		entry = strings.Trim(strings.TrimSpace(entry), "<>")
		switch {
		case strings.HasPrefix(entry, "https://"), strings.HasPrefix(entry, "http://"):
			return map[string]string{"unsubscribeUrl": entry}
		case strings.HasPrefix(entry, "mailto:"):
			mailto = strings.TrimPrefix(entry, "mailto:")
			if q := strings.Index(mailto, "?"); q >= 0 {
				mailto = mailto[:q]
			}
		}
	}
	if mailto != "" {
		return map[string]string{"listEmail": mailto}
	}
	return nil
}

func firstURL(text string) string {
	match := urlRe.FindString(text)
	return strings.TrimRight(match, ".,)")
}
