package models

import "time"

// PurchaseStatus is the lifecycle state of a scheduled purchase
type PurchaseStatus string

const (
	PurchaseScheduled  PurchaseStatus = "scheduled"
	PurchaseProcessing PurchaseStatus = "processing"
	PurchaseCompleted  PurchaseStatus = "completed"
	PurchaseFailed     PurchaseStatus = "failed"
	PurchaseCancelled  PurchaseStatus = "cancelled"
)

// Cancellable reports whether a purchase in this state may still be cancelled.
func (s PurchaseStatus) Cancellable() bool {
	return s == PurchaseScheduled
}

// Purchase represents a scheduled purchase record
type Purchase struct {
	ID            string         `db:"id" json:"id" example:"c6f4c9e4-3dd1-4c0e-9b0a-7f1d2a5b8c11"`
	UserID        string         `db:"user_id" json:"userId" example:"user_42"`
	EmailID       string         `db:"email_id" json:"emailId" example:"card_8f2"`
	ProductName   string         `db:"product_name" json:"productName" example:"Noise Cancelling Headphones"`
	ProductURL    string         `db:"product_url" json:"productUrl" example:"https://example.com/p/headphones"`
	ScheduledTime time.Time      `db:"scheduled_time" json:"scheduledTime" example:"2025-10-31T17:00:00Z"` // always UTC
	Timezone      string         `db:"timezone" json:"timezone" example:"America/New_York"`
	Status        PurchaseStatus `db:"status" json:"status" example:"scheduled"`
	Variant       string         `db:"variant" json:"variant" example:"control"` // experiment arm, stable per user+email
	Attempts      int            `db:"attempts" json:"attempts,omitempty"`
	LastError     *string        `db:"last_error" json:"lastError,omitempty"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`
}

// SchedulePurchaseRequest is the wire body for POST /api/purchases
// @Description Request to schedule a purchase at a future time
type SchedulePurchaseRequest struct {
	UserID        string `json:"userId" example:"user_42"`
	EmailID       string `json:"emailId" example:"card_8f2"`
	ProductName   string `json:"productName" example:"Noise Cancelling Headphones"`
	ProductURL    string `json:"productUrl" example:"https://example.com/p/headphones"`
	ScheduledTime string `json:"scheduledTime" example:"2025-10-31T17:00:00Z"` // ISO-8601, UTC
	Timezone      string `json:"timezone" example:"America/New_York"`
}

// PurchaseListResponse is the wire body for GET /api/purchases/user/{userId}
// @Description A user's scheduled purchases
type PurchaseListResponse struct {
	Purchases []Purchase `json:"purchases"`
	Count     int        `json:"count" example:"2"`
}
