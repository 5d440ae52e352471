package purchases

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zero-actions/internal/models"
)

func TestClient_Schedule_Created(t *testing.T) {
	when := time.Date(2025, 10, 31, 17, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/purchases", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.SchedulePurchaseRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "user_42", req.UserID)
		assert.Equal(t, "2025-10-31T17:00:00Z", req.ScheduledTime)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Purchase{
			ID:            "p1",
			UserID:        req.UserID,
			EmailID:       req.EmailID,
			ProductName:   req.ProductName,
			ProductURL:    req.ProductURL,
			ScheduledTime: when,
			Status:        models.PurchaseScheduled,
			Variant:       "control",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	purchase, created, err := client.Schedule(context.Background(), validRequest())

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "p1", purchase.ID)
	assert.Equal(t, models.PurchaseScheduled, purchase.Status)
	assert.Equal(t, when, purchase.ScheduledTime.UTC())
}

func TestClient_Schedule_ExistingRecord(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Purchase{ID: "existing-1", Status: models.PurchaseScheduled})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	purchase, created, err := client.Schedule(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "existing-1", purchase.ID)
}

func TestClient_Schedule_ValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: MissingInfoMessage,
			Field: "productUrl",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	purchase, created, err := client.Schedule(context.Background(), validRequest())

	assert.Nil(t, purchase)
	assert.False(t, created)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, MissingInfoMessage, validationErr.Message)
	assert.Equal(t, "productUrl", validationErr.Field)
}

func TestClient_Schedule_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, _, err := client.Schedule(context.Background(), validRequest())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_ListByUser(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/purchases/user/user_42", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.PurchaseListResponse{
			Purchases: []models.Purchase{{ID: "p1"}, {ID: "p2"}},
			Count:     2,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	list, err := client.ListByUser(context.Background(), "user_42")

	require.NoError(t, err)
	assert.Equal(t, 2, list.Count)
	require.Len(t, list.Purchases, 2)
	assert.Equal(t, "p1", list.Purchases[0].ID)
}

func TestClient_Cancel(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		expected error
	}{
		{name: "no content", status: http.StatusNoContent, expected: nil},
		{name: "not found", status: http.StatusNotFound, expected: ErrNotFound},
		{name: "conflict", status: http.StatusConflict, expected: ErrNotCancellable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/api/purchases/p1/cancel", r.URL.Path)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := NewClient(server.URL)
			err := client.Cancel(context.Background(), "p1")

			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}
