package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zero-actions/internal/capability"
	"zero-actions/internal/dedup"
	"zero-actions/internal/models"
)

var registryNow = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

func frozenClock() capability.Clock {
	return capability.ClockFunc(func() time.Time { return registryNow })
}

// fakeScheduler counts Schedule calls so replay tests can prove the effect
// ran exactly once.
type fakeScheduler struct {
	calls    int
	lastReq  models.SchedulePurchaseRequest
	existing bool
	err      error
}

func (f *fakeScheduler) Schedule(_ context.Context, req models.SchedulePurchaseRequest) (*models.Purchase, bool, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, false, f.err
	}
	scheduled, _ := time.Parse(time.RFC3339, req.ScheduledTime)
	return &models.Purchase{
		ID:            "purchase-1",
		UserID:        req.UserID,
		EmailID:       req.EmailID,
		ProductName:   req.ProductName,
		ProductURL:    req.ProductURL,
		ScheduledTime: scheduled,
		Status:        models.PurchaseScheduled,
	}, !f.existing, nil
}

func newTestRegistry(scheduler Scheduler, store dedup.Store) *Registry {
	return NewRegistry(Deps{Purchases: scheduler, Clock: frozenClock()}, store)
}

func purchaseExecuteRequest(requestID string) *models.ExecuteActionRequest {
	return &models.ExecuteActionRequest{
		RequestID: requestID,
		UserID:    "user_42",
		Card:      models.EmailCard{ID: "card_8f2", Title: "Flash sale ends soon", Sender: "Acme Store"},
		Action: models.EmailAction{
			ID:   "act_01",
			Type: models.ActionSchedulePurchase,
			Context: map[string]string{
				"productName": "Widget",
				"productUrl":  "https://example.com/p/widget",
				"saleDate":    "2025-10-31",
			},
		},
	}
}

func TestRegistry_SupportedCoversEveryKnownType(t *testing.T) {
	registry := newTestRegistry(&fakeScheduler{}, nil)

	assert.Equal(t, models.KnownActionTypes(), registry.Supported())
}

func TestRegistry_Preview_AttachesFacts(t *testing.T) {
	registry := newTestRegistry(&fakeScheduler{}, nil)

	resp, aerr := registry.Preview(context.Background(), &models.PreviewActionRequest{
		UserID: "user_42",
		Card: models.EmailCard{
			ID:    "card_8f2",
			Title: "Your order has shipped",
			Body:  "Tracking number: 1Z999AA10123456784. Total was $49.99.",
		},
		Action: models.EmailAction{
			ID:      "act_01",
			Type:    models.ActionShare,
			Context: map[string]string{"url": "https://example.com/order"},
		},
	})

	require.Nil(t, aerr)
	assert.Equal(t, "1Z999AA10123456784", resp.Facts["trackingNumber"])
	assert.Equal(t, "$49.99", resp.Facts["price"])
}

func TestRegistry_Preview_UnsupportedType(t *testing.T) {
	registry := newTestRegistry(&fakeScheduler{}, nil)

	resp, aerr := registry.Preview(context.Background(), &models.PreviewActionRequest{
		Action: models.EmailAction{Type: "teleport"},
	})

	assert.Nil(t, resp)
	require.NotNil(t, aerr)
	assert.Equal(t, CodeUnsupportedAction, aerr.Code)
}

func TestRegistry_Execute_Completes(t *testing.T) {
	scheduler := &fakeScheduler{}
	registry := newTestRegistry(scheduler, dedup.NewMemory())

	resp, aerr := registry.Execute(context.Background(), purchaseExecuteRequest("req-1"))

	require.Nil(t, aerr)
	assert.Equal(t, StatusCompleted, resp.Status)
	assert.Equal(t, "act_01", resp.ActionID)
	assert.Equal(t, models.BannerSuccess, resp.Banner.Kind)
	assert.Equal(t, 1, scheduler.calls)
	assert.Equal(t, "user_42", scheduler.lastReq.UserID)
	assert.Equal(t, "card_8f2", scheduler.lastReq.EmailID)
	assert.Equal(t, "2025-10-31T17:00:00Z", scheduler.lastReq.ScheduledTime)
}

func TestRegistry_Execute_ReplaySkipsEffect(t *testing.T) {
	scheduler := &fakeScheduler{}
	registry := newTestRegistry(scheduler, dedup.NewMemory())

	first, aerr := registry.Execute(context.Background(), purchaseExecuteRequest("req-1"))
	require.Nil(t, aerr)
	require.Equal(t, StatusCompleted, first.Status)

	second, aerr := registry.Execute(context.Background(), purchaseExecuteRequest("req-1"))

	require.Nil(t, aerr)
	assert.Equal(t, StatusReplayed, second.Status)
	assert.Equal(t, first.Banner.Title, second.Banner.Title)
	assert.Equal(t, first.Effects, second.Effects)
	assert.Equal(t, 1, scheduler.calls, "replay must not schedule twice")
}

func TestRegistry_Execute_DistinctRequestIDsBothRun(t *testing.T) {
	scheduler := &fakeScheduler{}
	registry := newTestRegistry(scheduler, dedup.NewMemory())

	_, aerr := registry.Execute(context.Background(), purchaseExecuteRequest("req-1"))
	require.Nil(t, aerr)
	_, aerr = registry.Execute(context.Background(), purchaseExecuteRequest("req-2"))
	require.Nil(t, aerr)

	assert.Equal(t, 2, scheduler.calls)
}

func TestRegistry_Execute_NoRequestIDSkipsDedup(t *testing.T) {
	scheduler := &fakeScheduler{}
	registry := newTestRegistry(scheduler, dedup.NewMemory())

	_, aerr := registry.Execute(context.Background(), purchaseExecuteRequest(""))
	require.Nil(t, aerr)
	_, aerr = registry.Execute(context.Background(), purchaseExecuteRequest(""))
	require.Nil(t, aerr)

	assert.Equal(t, 2, scheduler.calls)
}

func TestRegistry_Execute_FailureStoredForReplay(t *testing.T) {
	scheduler := &fakeScheduler{err: errors.New("purchases service unreachable")}
	registry := newTestRegistry(scheduler, dedup.NewMemory())

	first, aerr := registry.Execute(context.Background(), purchaseExecuteRequest("req-1"))
	require.NotNil(t, aerr)
	assert.Equal(t, CodeSchedulingFailed, aerr.Code)
	assert.True(t, aerr.Retryable)
	assert.Equal(t, StatusFailed, first.Status)
	assert.Equal(t, models.BannerError, first.Banner.Kind)
	assert.True(t, first.Banner.Retryable)

	// Same request id replays the stored failure; a manual retry sends a
	// fresh request id instead.
	second, aerr := registry.Execute(context.Background(), purchaseExecuteRequest("req-1"))

	require.Nil(t, aerr)
	assert.Equal(t, StatusReplayed, second.Status)
	assert.Equal(t, first.Error, second.Error)
	assert.Equal(t, 1, scheduler.calls)
}

func TestRegistry_Execute_InFlightDuplicate(t *testing.T) {
	scheduler := &fakeScheduler{}
	store := dedup.NewMemory()
	registry := newTestRegistry(scheduler, store)

	// First attempt has claimed the key but not saved an outcome yet
	_, replay, err := store.Claim(context.Background(), "action:req-1", []byte(pendingMarker), time.Minute)
	require.NoError(t, err)
	require.False(t, replay)

	resp, aerr := registry.Execute(context.Background(), purchaseExecuteRequest("req-1"))

	require.Nil(t, aerr)
	assert.Equal(t, StatusReplayed, resp.Status)
	assert.Equal(t, models.BannerWarning, resp.Banner.Kind)
	assert.Equal(t, "Already in progress", resp.Banner.Title)
	assert.Zero(t, scheduler.calls)
}

func TestRegistry_Execute_RejectedContext(t *testing.T) {
	scheduler := &fakeScheduler{}
	registry := newTestRegistry(scheduler, dedup.NewMemory())

	req := purchaseExecuteRequest("req-1")
	delete(req.Action.Context, "productUrl")

	resp, aerr := registry.Execute(context.Background(), req)

	assert.Nil(t, resp)
	require.NotNil(t, aerr)
	assert.Equal(t, CodeValidationFailed, aerr.Code)
	assert.Equal(t, "productUrl", aerr.Field)
	assert.Equal(t, "Missing required purchase information", aerr.Message)
	assert.Zero(t, scheduler.calls)
}

func TestRegistry_Execute_UnsupportedType(t *testing.T) {
	registry := newTestRegistry(&fakeScheduler{}, dedup.NewMemory())

	req := purchaseExecuteRequest("req-1")
	req.Action.Type = "teleport"

	resp, aerr := registry.Execute(context.Background(), req)

	assert.Nil(t, resp)
	require.NotNil(t, aerr)
	assert.Equal(t, CodeUnsupportedAction, aerr.Code)
}

func TestRegistry_Execute_CapabilityUnavailableIsWarning(t *testing.T) {
	registry := newTestRegistry(&fakeScheduler{}, dedup.NewMemory())

	resp, aerr := registry.Execute(context.Background(), &models.ExecuteActionRequest{
		RequestID: "req-1",
		UserID:    "user_42",
		Card:      models.EmailCard{ID: "card_1", Title: "Boarding pass"},
		Action:    models.EmailAction{ID: "act_02", Type: models.ActionAddWalletPass},
		Device:    models.DeviceInfo{Capabilities: []string{"calendar"}},
	})

	require.NotNil(t, aerr)
	assert.Equal(t, CodeCapabilityUnavailable, aerr.Code)
	require.NotNil(t, resp)
	assert.Equal(t, StatusFailed, resp.Status)
	assert.Equal(t, models.BannerWarning, resp.Banner.Kind)
	assert.Empty(t, resp.Directives)
}
