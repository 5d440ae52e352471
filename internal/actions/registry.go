// Package actions maps each action type to an executor that turns a card,
// its typed context, and user input into a banner, device directives, and
// server-side effects. Executors receive injected capabilities and degrade
// to warnings when one is missing.
package actions

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"zero-actions/internal/capability"
	"zero-actions/internal/dedup"
	"zero-actions/internal/extract"
	"zero-actions/internal/metrics"
	"zero-actions/internal/models"
)

const (
	dedupTTL      = 24 * time.Hour
	dedupPrefix   = "action:"
	pendingMarker = `{"status":"pending"}`

	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusReplayed  = "replayed"
)

// Scheduler schedules purchases. Implemented by purchases.Service in
// process and purchases.Client over the wire.
type Scheduler interface {
	Schedule(ctx context.Context, req models.SchedulePurchaseRequest) (*models.Purchase, bool, error)
}

// ReminderCreator persists reminder rows.
type ReminderCreator interface {
	Create(ctx context.Context, reminder *models.Reminder) error
}

// Deps are the injected capabilities executors may use. Nil entries mean
// the capability is not configured; executors degrade instead of failing.
type Deps struct {
	Mailer    capability.Mailer
	Assist    capability.Assist
	Purchases Scheduler
	Reminders ReminderCreator
	Clock     capability.Clock
	Logger    zerolog.Logger
}

func (d Deps) now() time.Time {
	if d.Clock == nil {
		return time.Now().UTC()
	}
	return d.Clock.Now()
}

func (d Deps) mailerAvailable() bool {
	return d.Mailer != nil && d.Mailer.Available()
}

// Request is one preview or execute attempt with its context already
// parsed and validated.
type Request struct {
	UserID  string
	Card    *models.EmailCard
	Action  *models.EmailAction
	Context Context
	Input   map[string]string
	Device  models.DeviceInfo
}

// Outcome is what one executor produces: the user-visible banner plus the
// directives the device should run and audit strings for the effects the
// server performed.
type Outcome struct {
	Banner     models.Banner
	Directives []models.Directive
	Effects    []string
}

// Executor handles one action type.
type Executor interface {
	// Preview builds the modal view-model. Previews never perform effects.
	Preview(ctx context.Context, req *Request) *models.PreviewActionResponse
	// Execute performs the action. A returned error means nothing happened
	// (validation) or a downstream failure the user may retry manually.
	Execute(ctx context.Context, req *Request) (*Outcome, *ActionError)
}

// Registry routes preview and execute calls to per-type executors and owns
// the cross-cutting concerns: context parsing, idempotency, metrics, and
// attribution logging.
type Registry struct {
	deps      Deps
	dedup     dedup.Store
	executors map[models.ActionType]Executor
}

// NewRegistry wires an executor for every supported action type.
func NewRegistry(deps Deps, dedupStore dedup.Store) *Registry {
	r := &Registry{deps: deps, dedup: dedupStore}
	r.executors = map[models.ActionType]Executor{
		models.ActionSchedulePurchase:   &purchaseExecutor{deps},
		models.ActionCancelSubscription: &cancelSubscriptionExecutor{deps},
		models.ActionUnsubscribe:        &unsubscribeExecutor{deps},
		models.ActionPayInvoice:         &invoiceExecutor{deps},
		models.ActionFlightCheckin:      &flightCheckinExecutor{deps},
		models.ActionTrackPackage:       &trackPackageExecutor{deps},
		models.ActionRSVP:               &rsvpExecutor{deps},
		models.ActionAddCalendarEvent:   &calendarEventExecutor{deps},
		models.ActionSetReminder:        &setReminderExecutor{deps},
		models.ActionWriteReview:        &writeReviewExecutor{deps},
		models.ActionSignForm:           &signFormExecutor{deps},
		models.ActionComposeReply:       &composeReplyExecutor{deps},
		models.ActionPlaceCall:          &placeCallExecutor{deps},
		models.ActionGetDirections:      &directionsExecutor{deps},
		models.ActionShare:              &shareExecutor{deps},
		models.ActionAddWalletPass:      &walletPassExecutor{deps},
		models.ActionSecurityReview:     &securityReviewExecutor{deps},
		models.ActionViewListing:        &viewListingExecutor{deps},
	}
	return r
}

// Supported lists the action types this registry can execute.
func (r *Registry) Supported() []models.ActionType {
	types := make([]models.ActionType, 0, len(r.executors))
	for _, t := range models.KnownActionTypes() {
		if _, ok := r.executors[t]; ok {
			types = append(types, t)
		}
	}
	return types
}

// Preview builds the modal view-model for an action. Validation failures
// come back as errors; capability gaps surface as warnings and a disabled
// flag inside the response.
func (r *Registry) Preview(ctx context.Context, req *models.PreviewActionRequest) (*models.PreviewActionResponse, *ActionError) {
	executor, ok := r.executors[req.Action.Type]
	if !ok {
		return nil, NewUnsupportedActionError(string(req.Action.Type))
	}

	parsed, aerr := ParseContext(&req.Action)
	if aerr != nil {
		return nil, aerr
	}

	resp := executor.Preview(ctx, &Request{
		UserID:  req.UserID,
		Card:    &req.Card,
		Action:  &req.Action,
		Context: parsed,
		Device:  req.Device,
	})
	if resp.Facts == nil {
		resp.Facts = extract.Facts(req.Card.Text())
	}
	return resp, nil
}

// Execute runs an action once per request id. The dedup claim happens
// before any effect; a replayed request id gets the stored outcome back
// and performs nothing.
func (r *Registry) Execute(ctx context.Context, req *models.ExecuteActionRequest) (*models.ExecuteActionResponse, *ActionError) {
	log := r.deps.Logger.With().
		Str("action_type", string(req.Action.Type)).
		Str("action_id", req.Action.ID).
		Str("card_id", req.Card.ID).
		Str("user_id", req.UserID).
		Str("request_id", req.RequestID).
		Logger()

	executor, ok := r.executors[req.Action.Type]
	if !ok {
		metrics.ActionsExecuted.WithLabelValues(string(req.Action.Type), "unsupported").Inc()
		log.Warn().Msg("Unsupported action type")
		return nil, NewUnsupportedActionError(string(req.Action.Type))
	}

	parsed, aerr := ParseContext(&req.Action)
	if aerr != nil {
		metrics.ActionsExecuted.WithLabelValues(string(req.Action.Type), "rejected").Inc()
		log.Warn().Str("field", aerr.Field).Str("reason", aerr.Message).Msg("Action context rejected")
		return nil, aerr
	}

	if replayed := r.claim(ctx, req, log); replayed != nil {
		return replayed, nil
	}

	outcome, aerr := executor.Execute(ctx, &Request{
		UserID:  req.UserID,
		Card:    &req.Card,
		Action:  &req.Action,
		Context: parsed,
		Input:   req.Input,
		Device:  req.Device,
	})
	if aerr != nil {
		metrics.ActionsExecuted.WithLabelValues(string(req.Action.Type), "failed").Inc()
		log.Warn().Str("code", string(aerr.Code)).Str("reason", aerr.Message).Msg("Action failed")

		banner := models.Banner{
			Kind:      models.BannerError,
			Title:     "Action failed",
			Message:   aerr.Message,
			Retryable: aerr.Retryable,
		}
		if aerr.Code == CodeCapabilityUnavailable {
			// Not a failure the user can fix or retry; the modal shows a
			// warning and keeps the card
			banner = warningBanner("Not available", aerr.Message)
		}
		resp := &models.ExecuteActionResponse{
			ActionID: req.Action.ID,
			Status:   StatusFailed,
			Banner:   banner,
			Error:    aerr.Message,
		}
		r.save(ctx, req.RequestID, resp, log)
		return resp, aerr
	}

	resp := &models.ExecuteActionResponse{
		ActionID:   req.Action.ID,
		Status:     StatusCompleted,
		Banner:     outcome.Banner,
		Directives: outcome.Directives,
		Effects:    outcome.Effects,
	}
	r.save(ctx, req.RequestID, resp, log)

	metrics.ActionsExecuted.WithLabelValues(string(req.Action.Type), "completed").Inc()
	log.Info().
		Str("banner", string(outcome.Banner.Kind)).
		Int("directives", len(outcome.Directives)).
		Strs("effects", outcome.Effects).
		Msg("Action executed")
	return resp, nil
}

// claim reserves the request id before any effect runs. It returns a
// non-nil response when this request id has been seen before.
func (r *Registry) claim(ctx context.Context, req *models.ExecuteActionRequest, log zerolog.Logger) *models.ExecuteActionResponse {
	if req.RequestID == "" || r.dedup == nil {
		return nil
	}

	existing, replay, err := r.dedup.Claim(ctx, dedupPrefix+req.RequestID, []byte(pendingMarker), dedupTTL)
	if err != nil {
		// Dedup is best-effort; losing it costs idempotency, not correctness
		log.Error().Err(err).Msg("Dedup claim failed, executing without idempotency")
		return nil
	}
	if !replay {
		return nil
	}

	metrics.ActionReplays.Inc()

	var stored models.ExecuteActionResponse
	if err := json.Unmarshal(existing, &stored); err == nil && stored.Status != "" && stored.Status != "pending" {
		log.Info().Msg("Replayed stored action outcome")
		stored.Status = StatusReplayed
		return &stored
	}

	// Claimed but not saved yet: the first attempt is still in flight
	log.Info().Msg("Duplicate request while action in flight")
	return &models.ExecuteActionResponse{
		ActionID: req.Action.ID,
		Status:   StatusReplayed,
		Banner: models.Banner{
			Kind:    models.BannerWarning,
			Title:   "Already in progress",
			Message: "This action is already being processed",
		},
	}
}

func (r *Registry) save(ctx context.Context, requestID string, resp *models.ExecuteActionResponse, log zerolog.Logger) {
	if requestID == "" || r.dedup == nil {
		return
	}
	payload, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := r.dedup.Save(ctx, dedupPrefix+requestID, payload, dedupTTL); err != nil {
		log.Error().Err(err).Msg("Failed to store action outcome")
	}
}
