package models

// BannerKind classifies the feedback banner shown after an action attempt
type BannerKind string

const (
	BannerSuccess BannerKind = "success"
	BannerError   BannerKind = "error"
	BannerWarning BannerKind = "warning"
)

// Banner is the user-facing outcome of an action attempt. Error banners
// with Retryable set offer a manual retry; nothing retries automatically.
type Banner struct {
	Kind      BannerKind `json:"kind" example:"success"`
	Title     string     `json:"title" example:"Purchase scheduled"`
	Message   string     `json:"message,omitempty" example:"Purchase scheduled for Oct 31, 2025"`
	Retryable bool       `json:"retryable,omitempty"`
}

// DirectiveKind names a device-side capability the client should invoke
type DirectiveKind string

const (
	DirectiveOpenURL       DirectiveKind = "open_url"
	DirectiveComposeEmail  DirectiveKind = "compose_email"
	DirectiveComposeSMS    DirectiveKind = "compose_sms"
	DirectivePlaceCall     DirectiveKind = "place_call"
	DirectiveAddCalendar   DirectiveKind = "add_calendar"
	DirectiveAddReminder   DirectiveKind = "add_reminder"
	DirectiveAddWalletPass DirectiveKind = "add_wallet_pass"
	DirectiveShare         DirectiveKind = "share"
	DirectiveMaps          DirectiveKind = "maps"
)

// Directive is one device-side step the client performs on the user's
// behalf. The server never opens URLs or touches device frameworks itself.
type Directive struct {
	Kind    DirectiveKind     `json:"kind" example:"open_url"`
	URL     string            `json:"url,omitempty" example:"https://track.example/1Z999AA10123456784"`
	Payload map[string]string `json:"payload,omitempty"`
}

// DeviceInfo describes the capabilities of the requesting device
type DeviceInfo struct {
	Capabilities []string `json:"capabilities,omitempty" example:"wallet,calendar"`
}

// Supports reports whether the device declared the named capability.
func (d DeviceInfo) Supports(capability string) bool {
	for _, c := range d.Capabilities {
		if c == capability {
			return true
		}
	}
	return false
}

// DetailRow is one label/value line the action modal renders
type DetailRow struct {
	Label string `json:"label" example:"Product"`
	Value string `json:"value" example:"Noise Cancelling Headphones"`
}

// PreviewActionRequest is the wire body for POST /api/actions/preview
// @Description Request for the view-model an action modal renders
type PreviewActionRequest struct {
	UserID string      `json:"userId" example:"user_42"`
	Card   EmailCard   `json:"card"`
	Action EmailAction `json:"action"`
	Device DeviceInfo  `json:"device"`
}

// PreviewActionResponse is the modal view-model for one action
// @Description View-model for an action modal: detail rows, warnings, availability
type PreviewActionResponse struct {
	Title        string            `json:"title" example:"Schedule Purchase"`
	Subtitle     string            `json:"subtitle,omitempty" example:"Acme Store"`
	DetailRows   []DetailRow       `json:"detailRows,omitempty"`
	Facts        map[string]string `json:"facts,omitempty"`
	PrimaryLabel string            `json:"primaryLabel" example:"Schedule"`
	Warnings     []string          `json:"warnings,omitempty"`
	Disabled     bool              `json:"disabled"`
	Error        string            `json:"error,omitempty" example:""`
}

// ExecuteActionRequest is the wire body for POST /api/actions/execute.
// Input carries the user-entered modal fields (rsvp response, rating,
// signature, reply text and so on). RequestID deduplicates retries.
type ExecuteActionRequest struct {
	RequestID string            `json:"requestId,omitempty" example:"req_7c1d"`
	UserID    string            `json:"userId" example:"user_42"`
	Card      EmailCard         `json:"card"`
	Action    EmailAction       `json:"action"`
	Input     map[string]string `json:"input,omitempty"`
	Device    DeviceInfo        `json:"device"`
}

// ExecuteActionResponse is the wire result of an action attempt
// @Description Result of executing an action: banner, device directives, server effects
type ExecuteActionResponse struct {
	ActionID   string      `json:"actionId" example:"act_01"`
	Status     string      `json:"status" example:"completed"` // completed, failed, replayed
	Banner     Banner      `json:"banner"`
	Directives []Directive `json:"directives,omitempty"`
	Effects    []string    `json:"effects,omitempty" example:"purchase scheduled"`
	Error      string      `json:"error,omitempty" example:""`
}
