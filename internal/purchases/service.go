// Package purchases implements the scheduled-purchase lifecycle: the wire
// contract under /api/purchases, the SQL store behind it, and the runner
// that executes due purchases.
package purchases

import (
	"context"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"zero-actions/internal/capability"
	"zero-actions/internal/metrics"
	"zero-actions/internal/models"
)

// MissingInfoMessage is the exact message the client shows when required
// purchase fields are blank. The server returns the same string so both
// surfaces agree.
const MissingInfoMessage = "Missing required purchase information"

// ValidationError is a field-level rejection of a schedule request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var variants = [...]string{"control", "reminder"}

// variantFor derives a stable experiment arm from the user and email ids.
// Retries and duplicate submissions always land in the same arm.
func variantFor(userID, emailID string) string {
	h := fnv.New32a()
	h.Write([]byte(userID))
	h.Write([]byte(emailID))
	return variants[h.Sum32()%uint32(len(variants))]
}

// Service owns purchase scheduling semantics on top of the store
type Service struct {
	store  *Store
	clock  capability.Clock
	logger zerolog.Logger
}

// NewService creates a new purchase service
func NewService(store *Store, clock capability.Clock, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Schedule validates and stores a purchase request. When the user already
// has a scheduled purchase for the same email, the existing record is
// returned and created is false.
func (s *Service) Schedule(ctx context.Context, req models.SchedulePurchaseRequest) (*models.Purchase, bool, error) {
	required := []struct {
		field string
		value string
	}{
		{"userId", req.UserID},
		{"emailId", req.EmailID},
		{"productName", req.ProductName},
		{"productUrl", req.ProductURL},
		{"scheduledTime", req.ScheduledTime},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return nil, false, &ValidationError{Field: r.field, Message: MissingInfoMessage}
		}
	}

	scheduledTime, err := time.Parse(time.RFC3339, req.ScheduledTime)
	if err != nil {
		return nil, false, &ValidationError{
			Field:   "scheduledTime",
			Message: "scheduledTime must be an ISO-8601 timestamp",
		}
	}

	existing, err := s.store.ActiveForEmail(ctx, req.UserID, req.EmailID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		s.logger.Info().
			Str("purchase_id", existing.ID).
			Str("user_id", req.UserID).
			Str("email_id", req.EmailID).
			Msg("Purchase already scheduled, returning existing record")
		return existing, false, nil
	}

	now := s.clock.Now().UTC()
	purchase := &models.Purchase{
		ID:            uuid.NewString(),
		UserID:        req.UserID,
		EmailID:       req.EmailID,
		ProductName:   req.ProductName,
		ProductURL:    req.ProductURL,
		ScheduledTime: scheduledTime.UTC(),
		Timezone:      req.Timezone,
		Status:        models.PurchaseScheduled,
		Variant:       variantFor(req.UserID, req.EmailID),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(ctx, purchase); err != nil {
		return nil, false, err
	}

	metrics.PurchasesScheduled.Inc()
	s.logger.Info().
		Str("purchase_id", purchase.ID).
		Str("user_id", purchase.UserID).
		Str("product", purchase.ProductName).
		Time("scheduled_time", purchase.ScheduledTime).
		Str("variant", purchase.Variant).
		Msg("Purchase scheduled")

	return purchase, true, nil
}

// ListByUser returns all purchases for a user with a count, empty list for
// unknown users.
func (s *Service) ListByUser(ctx context.Context, userID string) (*models.PurchaseListResponse, error) {
	purchases, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.PurchaseListResponse{
		Purchases: purchases,
		Count:     len(purchases),
	}, nil
}

// Cancel cancels a scheduled purchase. ErrNotFound and ErrNotCancellable
// pass through for the handler to map.
func (s *Service) Cancel(ctx context.Context, id string) error {
	if err := s.store.Cancel(ctx, id, s.clock.Now().UTC()); err != nil {
		return err
	}
	s.logger.Info().Str("purchase_id", id).Msg("Purchase cancelled")
	return nil
}
