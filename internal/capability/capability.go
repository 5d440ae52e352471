// Package capability holds the injected services action execution depends
// on: outbound mail, assist (summaries and reply suggestions), checkout,
// and the clock. Executors see interfaces only, so tests and degraded
// deployments swap arms freely.
package capability

import (
	"context"
	"time"

	"zero-actions/internal/models"
)

// Mailer sends action emails (RSVP replies, cancellation requests) on the
// user's behalf. Available reports whether sending is configured; callers
// degrade to compose directives when it is not.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
	Available() bool
}

// Assist produces card summaries and reply suggestions.
type Assist interface {
	Summarize(ctx context.Context, card *models.EmailCard) (string, error)
	SuggestReplies(ctx context.Context, card *models.EmailCard, tone string) ([]string, error)
	Provider() string
}

// Checkout completes a due scheduled purchase.
type Checkout interface {
	Execute(ctx context.Context, purchase *models.Purchase) error
}

// Clock abstracts time so date resolution and the runner are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock returns the real time in UTC.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now().UTC() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }
