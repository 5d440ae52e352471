package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status       string            `json:"status" example:"healthy"`                 // Health status
	Timestamp    time.Time         `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version      string            `json:"version" example:"1.0.0"`                  // Application version
	Capabilities map[string]string `json:"capabilities,omitempty"`                   // Configured capability arms (mail, assist, dedup)
}

// DBHealthResponse represents a database health check response
// @Description Database health check response
type DBHealthResponse struct {
	Status    string        `json:"status" example:"healthy"`                   // Health status
	Timestamp time.Time     `json:"timestamp" example:"2023-01-01T00:00:00Z"`   // Timestamp of the check
	Connected bool          `json:"connected" example:"true"`                   // Database connection status
	Latency   time.Duration `json:"latency" swaggertype:"string" example:"1ms"` // Database ping latency
	Error     string        `json:"error,omitempty" example:""`                 // Error message if any
}

// ErrorResponse is the wire shape of any 4xx/5xx error
// @Description Error payload with the offending field when known
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required purchase information"`
	Field string `json:"field,omitempty" example:"productUrl"`
	Code  string `json:"code,omitempty" example:"VALIDATION_FAILED"`
}

// IngestCardRequest is the wire body for POST /api/cards/ingest
// @Description Raw RFC 822 message to convert into a card
type IngestCardRequest struct {
	Raw string `json:"raw"`
}

// ChipPlacement is one laid-out action chip
type ChipPlacement struct {
	ActionID string  `json:"actionId,omitempty" example:"act_01"`
	Label    string  `json:"label" example:"Track Package"`
	X        float64 `json:"x" example:"0"`
	Y        float64 `json:"y" example:"0"`
	Width    float64 `json:"width" example:"118"`
	Height   float64 `json:"height" example:"32"`
	Row      int     `json:"row" example:"0"`
}

// EnrichCardRequest is the wire body for POST /api/cards/enrich
// @Description Card plus the container geometry the client renders into
type EnrichCardRequest struct {
	Card           EmailCard `json:"card"`
	ContainerWidth float64   `json:"containerWidth" example:"360"`
	CharWidth      float64   `json:"charWidth,omitempty" example:"7.2"` // per-character width estimate, client-reported
}

// EnrichCardResponse carries extracted facts and the chip flow layout
// @Description Extracted facts and action-chip placements for one card
type EnrichCardResponse struct {
	Facts  map[string]string `json:"facts,omitempty"`
	Chips  []ChipPlacement   `json:"chips,omitempty"`
	Width  float64           `json:"width" example:"360"`
	Height float64           `json:"height" example:"72"`
	Cached bool              `json:"cached"`
	Error  string            `json:"error,omitempty" example:""`
}

// SummarizeRequest is the wire body for POST /api/assist/summarize
type SummarizeRequest struct {
	Card EmailCard `json:"card"`
}

// SummarizeResponse carries a card summary and which arm produced it
// @Description Card summary; provider is "openai" or "canned"
type SummarizeResponse struct {
	Summary  string `json:"summary" example:"Your package arrives Thursday."`
	Provider string `json:"provider" example:"canned"`
	Error    string `json:"error,omitempty" example:""`
}

// SuggestRepliesRequest is the wire body for POST /api/assist/reply
type SuggestRepliesRequest struct {
	Card EmailCard `json:"card"`
	Tone string    `json:"tone,omitempty" example:"friendly"` // friendly, formal, brief
}

// SuggestRepliesResponse carries short reply suggestions for a card
// @Description Reply suggestions; provider is "openai" or "canned"
type SuggestRepliesResponse struct {
	Suggestions []string `json:"suggestions"`
	Provider    string   `json:"provider" example:"canned"`
	Error       string   `json:"error,omitempty" example:""`
}
