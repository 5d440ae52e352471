package actions

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"zero-actions/internal/models"
	"zero-actions/internal/purchases"
)

// Context is the typed form of an action's free-form context map. Every
// action type has its own struct; the raw map is parsed and validated once
// at the API boundary and never read past it.
type Context interface {
	Kind() models.ActionType
}

type PurchaseContext struct {
	ProductName string
	ProductURL  string
	SaleDate    string
}

func (PurchaseContext) Kind() models.ActionType { return models.ActionSchedulePurchase }

type SubscriptionContext struct {
	ServiceName  string
	SupportEmail string
	CancelURL    string
	Price        string
}

func (SubscriptionContext) Kind() models.ActionType { return models.ActionCancelSubscription }

type UnsubscribeContext struct {
	ListName       string
	UnsubscribeURL string
	ListEmail      string
}

func (UnsubscribeContext) Kind() models.ActionType { return models.ActionUnsubscribe }

type InvoiceContext struct {
	Merchant      string
	Amount        string
	PaymentURL    string
	InvoiceNumber string
	DueDate       string
}

func (InvoiceContext) Kind() models.ActionType { return models.ActionPayInvoice }

type FlightContext struct {
	Airline          string
	ConfirmationCode string
	CheckinURL       string
	DepartureDate    string
}

func (FlightContext) Kind() models.ActionType { return models.ActionFlightCheckin }

type ShippingContext struct {
	Carrier        string
	TrackingNumber string
	TrackingURL    string
}

func (ShippingContext) Kind() models.ActionType { return models.ActionTrackPackage }

type RSVPContext struct {
	EventTitle     string
	EventDate      string
	Location       string
	OrganizerEmail string
}

func (RSVPContext) Kind() models.ActionType { return models.ActionRSVP }

type EventContext struct {
	Title    string
	Date     string
	Location string
}

func (EventContext) Kind() models.ActionType { return models.ActionAddCalendarEvent }

type ReminderContext struct {
	Title string
	Date  string
}

func (ReminderContext) Kind() models.ActionType { return models.ActionSetReminder }

type ReviewContext struct {
	ProductName string
	ReviewURL   string
}

func (ReviewContext) Kind() models.ActionType { return models.ActionWriteReview }

type FormContext struct {
	DocumentName string
	DocumentURL  string
}

func (FormContext) Kind() models.ActionType { return models.ActionSignForm }

type ReplyContext struct {
	Tone string
}

func (ReplyContext) Kind() models.ActionType { return models.ActionComposeReply }

type CallContext struct {
	PhoneNumber string
	ContactName string
}

func (CallContext) Kind() models.ActionType { return models.ActionPlaceCall }

type DirectionsContext struct {
	Address   string
	PlaceName string
}

func (DirectionsContext) Kind() models.ActionType { return models.ActionGetDirections }

type ShareContext struct {
	URL  string
	Text string
}

func (ShareContext) Kind() models.ActionType { return models.ActionShare }

type WalletContext struct {
	PassType     string
	BarcodeValue string
}

func (WalletContext) Kind() models.ActionType { return models.ActionAddWalletPass }

type SecurityContext struct {
	Location    string
	Device      string
	AlertTime   string
	SecurityURL string
}

func (SecurityContext) Kind() models.ActionType { return models.ActionSecurityReview }

type ListingContext struct {
	ListingURL string
	Address    string
}

func (ListingContext) Kind() models.ActionType { return models.ActionViewListing }

const urlPattern = "^https?://"

// contextSchemas declares, per action type, which context keys must be
// present and which must look like URLs. Unknown keys pass through
// unvalidated; upstream extractors attach keys this service never reads.
var contextSchemas = map[models.ActionType]map[string]interface{}{
	models.ActionSchedulePurchase: {
		"type": "object",
		"properties": map[string]interface{}{
			"productName": map[string]interface{}{"type": "string"},
			"productUrl":  map[string]interface{}{"type": "string", "pattern": urlPattern},
			"saleDate":    map[string]interface{}{"type": "string"},
		},
		"required": []interface{}{"productName", "productUrl", "saleDate"},
	},
	models.ActionCancelSubscription: {
		"type": "object",
		"properties": map[string]interface{}{
			"cancelUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
	models.ActionUnsubscribe: {
		"type": "object",
		"properties": map[string]interface{}{
			"unsubscribeUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
	models.ActionPayInvoice: {
		"type": "object",
		"properties": map[string]interface{}{
			"paymentUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
		"required": []interface{}{"paymentUrl"},
	},
	models.ActionFlightCheckin: {
		"type": "object",
		"properties": map[string]interface{}{
			"checkinUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
	models.ActionTrackPackage: {
		"type": "object",
		"properties": map[string]interface{}{
			"trackingUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
	models.ActionRSVP:             {"type": "object"},
	models.ActionAddCalendarEvent: {"type": "object"},
	models.ActionSetReminder:      {"type": "object"},
	models.ActionWriteReview: {
		"type": "object",
		"properties": map[string]interface{}{
			"reviewUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
	models.ActionSignForm: {
		"type": "object",
		"properties": map[string]interface{}{
			"documentUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
	models.ActionComposeReply: {"type": "object"},
	models.ActionPlaceCall:    {"type": "object"},
	models.ActionGetDirections: {
		"type":     "object",
		"required": []interface{}{"address"},
		"properties": map[string]interface{}{
			"address": map[string]interface{}{"type": "string"},
		},
	},
	models.ActionShare: {
		"type":     "object",
		"required": []interface{}{"url"},
		"properties": map[string]interface{}{
			"url": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
	models.ActionAddWalletPass: {"type": "object"},
	models.ActionSecurityReview: {
		"type": "object",
		"properties": map[string]interface{}{
			"securityUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
	models.ActionViewListing: {
		"type":     "object",
		"required": []interface{}{"listingUrl"},
		"properties": map[string]interface{}{
			"listingUrl": map[string]interface{}{"type": "string", "pattern": urlPattern},
		},
	},
}

// ParseContext validates an action's raw context against its type's schema
// and binds it into the typed struct. Blank values are treated as absent,
// so empty strings behave like missing keys.
func ParseContext(action *models.EmailAction) (Context, *ActionError) {
	if !action.Type.Valid() {
		return nil, NewUnsupportedActionError(string(action.Type))
	}

	doc := make(map[string]interface{}, len(action.Context))
	for k, v := range action.Context {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			doc[k] = trimmed
		}
	}

	if err := validateContext(action.Type, doc); err != nil {
		if action.Type == models.ActionSchedulePurchase {
			// The purchase flow shows one fixed message for any missing field
			err.Message = purchases.MissingInfoMessage
		}
		return nil, err
	}

	get := func(key string) string {
		if v, ok := doc[key].(string); ok {
			return v
		}
		return ""
	}

	switch action.Type {
	case models.ActionSchedulePurchase:
		return PurchaseContext{
			ProductName: get("productName"),
			ProductURL:  get("productUrl"),
			SaleDate:    get("saleDate"),
		}, nil
	case models.ActionCancelSubscription:
		return SubscriptionContext{
			ServiceName:  get("serviceName"),
			SupportEmail: get("supportEmail"),
			CancelURL:    get("cancelUrl"),
			Price:        get("price"),
		}, nil
	case models.ActionUnsubscribe:
		return UnsubscribeContext{
			ListName:       get("listName"),
			UnsubscribeURL: get("unsubscribeUrl"),
			ListEmail:      get("listEmail"),
		}, nil
	case models.ActionPayInvoice:
		return InvoiceContext{
			Merchant:      get("merchant"),
			Amount:        get("amount"),
			PaymentURL:    get("paymentUrl"),
			InvoiceNumber: get("invoiceNumber"),
			DueDate:       get("dueDate"),
		}, nil
	case models.ActionFlightCheckin:
		return FlightContext{
			Airline:          get("airline"),
			ConfirmationCode: get("confirmationCode"),
			CheckinURL:       get("checkinUrl"),
			DepartureDate:    get("departureDate"),
		}, nil
	case models.ActionTrackPackage:
		return ShippingContext{
			Carrier:        get("carrier"),
			TrackingNumber: get("trackingNumber"),
			TrackingURL:    get("trackingUrl"),
		}, nil
	case models.ActionRSVP:
		return RSVPContext{
			EventTitle:     get("eventTitle"),
			EventDate:      get("eventDate"),
			Location:       get("location"),
			OrganizerEmail: get("organizerEmail"),
		}, nil
	case models.ActionAddCalendarEvent:
		return EventContext{
			Title:    get("title"),
			Date:     get("date"),
			Location: get("location"),
		}, nil
	case models.ActionSetReminder:
		return ReminderContext{
			Title: get("title"),
			Date:  get("date"),
		}, nil
	case models.ActionWriteReview:
		return ReviewContext{
			ProductName: get("productName"),
			ReviewURL:   get("reviewUrl"),
		}, nil
	case models.ActionSignForm:
		return FormContext{
			DocumentName: get("documentName"),
			DocumentURL:  get("documentUrl"),
		}, nil
	case models.ActionComposeReply:
		return ReplyContext{Tone: get("tone")}, nil
	case models.ActionPlaceCall:
		return CallContext{
			PhoneNumber: get("phoneNumber"),
			ContactName: get("contactName"),
		}, nil
	case models.ActionGetDirections:
		return DirectionsContext{
			Address:   get("address"),
			PlaceName: get("placeName"),
		}, nil
	case models.ActionShare:
		return ShareContext{
			URL:  get("url"),
			Text: get("text"),
		}, nil
	case models.ActionAddWalletPass:
		return WalletContext{
			PassType:     get("passType"),
			BarcodeValue: get("barcodeValue"),
		}, nil
	case models.ActionSecurityReview:
		return SecurityContext{
			Location:    get("location"),
			Device:      get("device"),
			AlertTime:   get("alertTime"),
			SecurityURL: get("securityUrl"),
		}, nil
	case models.ActionViewListing:
		return ListingContext{
			ListingURL: get("listingUrl"),
			Address:    get("address"),
		}, nil
	default:
		return nil, NewUnsupportedActionError(string(action.Type))
	}
}

func validateContext(actionType models.ActionType, doc map[string]interface{}) *ActionError {
	schema, ok := contextSchemas[actionType]
	if !ok {
		return NewUnsupportedActionError(string(actionType))
	}

	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(doc))
	if err != nil {
		return NewValidationError("", "context validation error: "+err.Error())
	}
	if result.Valid() {
		return nil
	}

	desc := result.Errors()[0]
	field := desc.Field()
	if prop, ok := desc.Details()["property"].(string); ok {
		// Required-key violations report the root object; the offending
		// key is in the details.
		field = prop
	}
	return NewValidationError(field, desc.Description())
}
