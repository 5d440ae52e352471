package models

import "time"

// Reminder is a user-requested nudge created by the set_reminder action.
type Reminder struct {
	ID        string    `db:"id" json:"id" example:"9d1b6a2e-0f3c-4b7d-a1e5-2c8f9d0b4e66"`
	UserID    string    `db:"user_id" json:"userId" example:"user_42"`
	EmailID   string    `db:"email_id" json:"emailId" example:"card_8f2"`
	Title     string    `db:"title" json:"title" example:"Sign the permission form"`
	RemindAt  time.Time `db:"remind_at" json:"remindAt" example:"2025-10-31T17:00:00Z"` // always UTC
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
