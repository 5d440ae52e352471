package purchases

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zero-actions/internal/models"
)

// Client talks to the purchases API over HTTP. It implements the same
// Schedule/ListByUser/Cancel surface as Service, so callers can run
// in-process or against a remote deployment.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a purchases API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Schedule posts a purchase request. created is true when the server made
// a new record (201) and false when it returned an existing one (200).
func (c *Client) Schedule(ctx context.Context, req models.SchedulePurchaseRequest) (*models.Purchase, bool, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, false, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/purchases", bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, false, fmt.Errorf("post purchase: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		var purchase models.Purchase
		if err := json.NewDecoder(resp.Body).Decode(&purchase); err != nil {
			return nil, false, fmt.Errorf("decode purchase: %w", err)
		}
		return &purchase, resp.StatusCode == http.StatusCreated, nil
	case http.StatusBadRequest:
		var apiErr models.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return nil, false, &ValidationError{Message: MissingInfoMessage}
		}
		return nil, false, &ValidationError{Field: apiErr.Field, Message: apiErr.Error}
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, false, fmt.Errorf("post purchase: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
}

// ListByUser fetches a user's purchases
func (c *Client) ListByUser(ctx context.Context, userID string) (*models.PurchaseListResponse, error) {
	url := fmt.Sprintf("%s/api/purchases/user/%s", c.baseURL, userID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("get purchases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("get purchases: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var list models.PurchaseListResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode purchases: %w", err)
	}
	return &list, nil
}

// Cancel cancels a scheduled purchase, mapping 404 and 409 onto the
// store's sentinel errors.
func (c *Client) Cancel(ctx context.Context, id string) error {
	url := fmt.Sprintf("%s/api/purchases/%s/cancel", c.baseURL, id)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("cancel purchase: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		return ErrNotCancellable
	default:
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("cancel purchase: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
}
