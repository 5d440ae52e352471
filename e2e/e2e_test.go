// Package e2e exercises a running deployment over HTTP: health, the card
// ingest to action execute loop, and the scheduled purchase lifecycle.
// The suite skips unless E2E_BASE_URL points at a server.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"zero-actions/internal/models"
	"zero-actions/internal/purchases"
)

// rawShippedEmail is the fixture fed through the ingest endpoint.
const rawShippedEmail = "From: Acme Store <orders@acme.example>\r\n" +
	"To: pat@example.com\r\n" +
	"Subject: Your order has shipped\r\n" +
	"Message-ID: <e2e-shipped-1@acme.example>\r\n" +
	"Date: Wed, 15 Oct 2025 09:30:00 +0000\r\n" +
	"Content-Type: text/plain; charset=utf-8\r\n" +
	"\r\n" +
	"Good news! Your order has shipped.\r\n" +
	"Tracking number: 1Z999AA10123456784\r\n"

var httpClient = &http.Client{Timeout: 30 * time.Second}

// getBaseURL returns the base URL of the deployment under test, skipping
// the test when none is configured.
func getBaseURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("E2E_BASE_URL")
	if url == "" {
		t.Skip("E2E_BASE_URL not set, skipping end-to-end test")
	}
	return strings.TrimRight(url, "/")
}

// getJSON fetches url and decodes the JSON response into out.
func getJSON(t *testing.T, url string, out interface{}) int {
	t.Helper()

	resp, err := httpClient.Get(url)
	if err != nil {
		t.Fatalf("GET %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response from %s: %v", url, err)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("Failed to decode response from %s: %v\nbody: %s", url, err, body)
		}
	}
	return resp.StatusCode
}

// postJSON posts payload to url and decodes the JSON response into out.
func postJSON(t *testing.T, url string, payload interface{}, out interface{}) int {
	t.Helper()

	encoded, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Failed to encode payload for %s: %v", url, err)
	}

	resp, err := httpClient.Post(url, "application/json", bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read response from %s: %v", url, err)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			t.Fatalf("Failed to decode response from %s: %v\nbody: %s", url, err, body)
		}
	}
	return resp.StatusCode
}

// TestHealthEndpoint verifies the liveness endpoint and logs the
// configured capability arms.
func TestHealthEndpoint(t *testing.T) {
	baseURL := getBaseURL(t)
	t.Logf("Testing health endpoint at: %s", baseURL)

	var health models.HealthResponse
	status := getJSON(t, baseURL+"/healthz", &health)

	if status != http.StatusOK {
		t.Fatalf("Expected 200 from /healthz, got %d", status)
	}
	if health.Status != "healthy" {
		t.Errorf("Expected status 'healthy', got: %s", health.Status)
	}

	t.Logf("Version %s, capabilities: %v", health.Version, health.Capabilities)
}

// TestDatabaseHealth verifies the readiness endpoint. A deployment
// without a database answers 503 and still passes; the purchase tests
// skip themselves in that case.
func TestDatabaseHealth(t *testing.T) {
	baseURL := getBaseURL(t)
	t.Logf("Testing database health at: %s", baseURL)

	var health models.DBHealthResponse
	status := getJSON(t, baseURL+"/healthz/db", &health)

	switch status {
	case http.StatusOK:
		if !health.Connected {
			t.Error("Expected connected=true on a 200 response")
		}
		t.Logf("Database healthy, latency: %v", health.Latency)
	case http.StatusServiceUnavailable:
		t.Logf("Deployment runs without a database: %s", health.Error)
	default:
		t.Errorf("Unexpected status %d from /healthz/db", status)
	}
}

// TestActionTypes verifies the server advertises its executable actions.
func TestActionTypes(t *testing.T) {
	baseURL := getBaseURL(t)

	var resp struct {
		Types []models.ActionType `json:"types"`
	}
	status := getJSON(t, baseURL+"/api/actions/types", &resp)

	if status != http.StatusOK {
		t.Fatalf("Expected 200 from /api/actions/types, got %d", status)
	}
	if len(resp.Types) == 0 {
		t.Fatal("Expected at least one supported action type")
	}

	found := false
	for _, typ := range resp.Types {
		if typ == models.ActionSchedulePurchase {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected schedule_purchase among the supported types: %v", resp.Types)
	}

	t.Logf("Server supports %d action types", len(resp.Types))
}

// TestIngestToExecuteFlow walks the whole loop: a raw email becomes a
// card, the suggested action previews, executes with device directives,
// and a retried request id replays the stored outcome.
func TestIngestToExecuteFlow(t *testing.T) {
	baseURL := getBaseURL(t)
	t.Logf("Testing ingest to execute flow at: %s", baseURL)

	// Ingest the raw message into a card
	var card models.EmailCard
	status := postJSON(t, baseURL+"/api/cards/ingest", models.IngestCardRequest{Raw: rawShippedEmail}, &card)
	if status != http.StatusOK {
		t.Fatalf("Expected 200 from ingest, got %d", status)
	}
	if len(card.SuggestedActions) == 0 {
		t.Fatal("Expected suggested actions on the ingested card")
	}

	var track *models.EmailAction
	for i := range card.SuggestedActions {
		if card.SuggestedActions[i].Type == models.ActionTrackPackage {
			track = &card.SuggestedActions[i]
		}
	}
	if track == nil {
		t.Fatalf("Expected a track_package suggestion, got: %+v", card.SuggestedActions)
	}
	t.Logf("Card %s (category %s) suggests %d actions", card.ID, card.Category, len(card.SuggestedActions))

	// Preview builds the modal view-model without side effects
	var preview models.PreviewActionResponse
	status = postJSON(t, baseURL+"/api/actions/preview", models.PreviewActionRequest{
		UserID: "e2e-user",
		Card:   card,
		Action: *track,
	}, &preview)
	if status != http.StatusOK {
		t.Fatalf("Expected 200 from preview, got %d", status)
	}
	if preview.Title == "" || preview.PrimaryLabel == "" {
		t.Errorf("Preview is missing title or primary label: %+v", preview)
	}

	// Execute with a fresh request id
	executeReq := models.ExecuteActionRequest{
		RequestID: fmt.Sprintf("e2e-%d", time.Now().UnixNano()),
		UserID:    "e2e-user",
		Card:      card,
		Action:    *track,
	}

	var result models.ExecuteActionResponse
	status = postJSON(t, baseURL+"/api/actions/execute", executeReq, &result)
	if status != http.StatusOK {
		t.Fatalf("Expected 200 from execute, got %d", status)
	}
	if result.Status != "completed" {
		t.Fatalf("Expected status 'completed', got %q with banner %+v", result.Status, result.Banner)
	}
	if len(result.Directives) == 0 {
		t.Error("Expected at least one device directive")
	}

	// The same request id replays the stored outcome, it does not run again
	var replay models.ExecuteActionResponse
	status = postJSON(t, baseURL+"/api/actions/execute", executeReq, &replay)
	if status != http.StatusOK {
		t.Fatalf("Expected 200 from the replayed execute, got %d", status)
	}
	if replay.Status != "replayed" {
		t.Errorf("Expected status 'replayed' on the second attempt, got: %s", replay.Status)
	}

	t.Log("Ingest to execute flow completed")
}

// TestPurchaseLifecycle drives schedule, duplicate post, list, cancel and
// conflict through the purchases client against a live server.
func TestPurchaseLifecycle(t *testing.T) {
	baseURL := getBaseURL(t)
	t.Logf("Testing purchase lifecycle at: %s", baseURL)

	client := purchases.NewClient(baseURL)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	userID := fmt.Sprintf("e2e-user-%d", time.Now().UnixNano())
	req := models.SchedulePurchaseRequest{
		UserID:        userID,
		EmailID:       "e2e-card-1",
		ProductName:   "Noise Cancelling Headphones",
		ProductURL:    "https://shop.example/p/headphones",
		ScheduledTime: time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339),
		Timezone:      "UTC",
	}

	purchase, created, err := client.Schedule(ctx, req)
	if err != nil {
		if strings.Contains(err.Error(), "status 503") {
			t.Skipf("Deployment runs without a database: %v", err)
		}
		t.Fatalf("Failed to schedule purchase: %v", err)
	}
	if !created {
		t.Error("Expected a newly created purchase for a fresh user")
	}
	t.Logf("Scheduled purchase %s (variant %s)", purchase.ID, purchase.Variant)

	// Re-posting the same user and email returns the existing record
	again, createdAgain, err := client.Schedule(ctx, req)
	if err != nil {
		t.Fatalf("Failed to re-post purchase: %v", err)
	}
	if createdAgain {
		t.Error("Expected the second post to return the existing purchase")
	}
	if again.ID != purchase.ID {
		t.Errorf("Expected the same purchase id, got %s and %s", purchase.ID, again.ID)
	}

	// Missing fields are rejected before touching the database
	bad := req
	bad.EmailID = "e2e-card-2"
	bad.ProductURL = ""
	if _, _, err := client.Schedule(ctx, bad); err == nil {
		t.Error("Expected a validation error for a purchase without a product URL")
	} else {
		var verr *purchases.ValidationError
		if !errors.As(err, &verr) || verr.Field != "productUrl" {
			t.Errorf("Expected a productUrl validation error, got: %v", err)
		}
	}

	// The purchase shows up in the user's list
	list, err := client.ListByUser(ctx, userID)
	if err != nil {
		t.Fatalf("Failed to list purchases: %v", err)
	}
	if list.Count != 1 || len(list.Purchases) != 1 {
		t.Errorf("Expected exactly one purchase for the user, got %d", list.Count)
	}

	// Cancel it, then verify a second cancel conflicts
	if err := client.Cancel(ctx, purchase.ID); err != nil {
		t.Fatalf("Failed to cancel purchase: %v", err)
	}
	if err := client.Cancel(ctx, purchase.ID); !errors.Is(err, purchases.ErrNotCancellable) {
		t.Errorf("Expected ErrNotCancellable on the second cancel, got: %v", err)
	}
	if err := client.Cancel(ctx, "does-not-exist"); !errors.Is(err, purchases.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for an unknown purchase, got: %v", err)
	}

	t.Log("Purchase lifecycle completed")
}

// TestCardEnrichment verifies fact extraction and chip layout over the
// wire, including the per-geometry cache.
func TestCardEnrichment(t *testing.T) {
	baseURL := getBaseURL(t)
	t.Logf("Testing card enrichment at: %s", baseURL)

	card := models.EmailCard{
		ID:    fmt.Sprintf("e2e-enrich-%d", time.Now().UnixNano()),
		Title: "Your order has shipped",
		Body:  "Tracking number: 1Z999AA10123456784. Total $49.99.",
		SuggestedActions: []models.EmailAction{
			{ID: "act_01", Type: models.ActionTrackPackage, DisplayName: "Track Package"},
			{ID: "act_02", Type: models.ActionComposeReply, DisplayName: "Reply"},
		},
	}
	req := models.EnrichCardRequest{Card: card, ContainerWidth: 360}

	var first models.EnrichCardResponse
	if status := postJSON(t, baseURL+"/api/cards/enrich", req, &first); status != http.StatusOK {
		t.Fatalf("Expected 200 from enrich, got %d", status)
	}
	if len(first.Chips) != len(card.SuggestedActions) {
		t.Errorf("Expected %d chips, got %d", len(card.SuggestedActions), len(first.Chips))
	}
	if first.Facts["trackingNumber"] != "1Z999AA10123456784" {
		t.Errorf("Expected the tracking number fact, got: %v", first.Facts)
	}
	for _, chip := range first.Chips {
		if chip.X+chip.Width > req.ContainerWidth {
			t.Errorf("Chip %q overflows the container: x=%v width=%v", chip.Label, chip.X, chip.Width)
		}
	}

	// The same card and geometry answers from cache
	var second models.EnrichCardResponse
	if status := postJSON(t, baseURL+"/api/cards/enrich", req, &second); status != http.StatusOK {
		t.Fatalf("Expected 200 from the repeated enrich, got %d", status)
	}
	if !second.Cached {
		t.Error("Expected the second enrichment to be served from cache")
	}

	t.Log("Card enrichment completed")
}

// TestAssistSummarize verifies the summarize endpoint answers regardless
// of which assist arm the deployment runs.
func TestAssistSummarize(t *testing.T) {
	baseURL := getBaseURL(t)

	card := models.EmailCard{
		ID:    "e2e-card-summary",
		Title: "Your invoice is ready",
		Body:  "Your October invoice is ready. The amount due is $42.50 by October 31.",
	}

	var resp models.SummarizeResponse
	status := postJSON(t, baseURL+"/api/assist/summarize", models.SummarizeRequest{Card: card}, &resp)

	if status != http.StatusOK {
		t.Fatalf("Expected 200 from summarize, got %d", status)
	}
	if resp.Summary == "" {
		t.Error("Expected a non-empty summary")
	}

	t.Logf("Summary via %s: %s", resp.Provider, resp.Summary)
}
