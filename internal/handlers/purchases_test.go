package handlers

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zero-actions/internal/capability"
	"zero-actions/internal/models"
	"zero-actions/internal/purchases"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var handlerNow = time.Date(2025, 10, 1, 9, 0, 0, 0, time.UTC)

var purchaseColumns = []string{
	"id", "user_id", "email_id", "product_name", "product_url",
	"scheduled_time", "timezone", "status", "variant", "attempts",
	"last_error", "created_at", "updated_at",
}

func newPurchaseService(t *testing.T) (*purchases.Service, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	store := purchases.NewStore(sqlx.NewDb(mockDB, "sqlmock"))
	clock := capability.ClockFunc(func() time.Time { return handlerNow })
	return purchases.NewService(store, clock, zerolog.Nop()), mock
}

func scheduledRow(id string) *sqlmock.Rows {
	when := time.Date(2025, 10, 31, 17, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(purchaseColumns).AddRow(
		id, "user_42", "card_8f2", "Widget", "https://example.com/p",
		when, "UTC", "scheduled", "control", 0,
		nil, when, when,
	)
}

func scheduleBody() string {
	return `{
		"userId": "user_42",
		"emailId": "card_8f2",
		"productName": "Widget",
		"productUrl": "https://example.com/p",
		"scheduledTime": "2025-10-31T17:00:00Z",
		"timezone": "UTC"
	}`
}

func postPurchase(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/purchases", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func TestSchedulePurchaseHandler_Creates(t *testing.T) {
	svc, mock := newPurchaseService(t)
	mock.ExpectQuery("SELECT \\* FROM purchases").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO purchases").WillReturnResult(sqlmock.NewResult(1, 1))

	rec := postPurchase(t, SchedulePurchaseHandler(svc), scheduleBody())

	assert.Equal(t, http.StatusCreated, rec.Code)

	var purchase models.Purchase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purchase))
	assert.Equal(t, models.PurchaseScheduled, purchase.Status)
	assert.Equal(t, "user_42", purchase.UserID)
	_, err := uuid.Parse(purchase.ID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSchedulePurchaseHandler_ExistingReturns200(t *testing.T) {
	svc, mock := newPurchaseService(t)
	mock.ExpectQuery("SELECT \\* FROM purchases").WillReturnRows(scheduledRow("p1"))

	rec := postPurchase(t, SchedulePurchaseHandler(svc), scheduleBody())

	assert.Equal(t, http.StatusOK, rec.Code)

	var purchase models.Purchase
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &purchase))
	assert.Equal(t, "p1", purchase.ID)
	assert.NoError(t, mock.ExpectationsWereMet(), "no insert for an already scheduled email")
}

func TestSchedulePurchaseHandler_MissingField(t *testing.T) {
	svc, _ := newPurchaseService(t)

	body := `{"userId": "user_42", "emailId": "card_8f2", "productName": "Widget"}`
	rec := postPurchase(t, SchedulePurchaseHandler(svc), body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, purchases.MissingInfoMessage, resp.Error)
	assert.Equal(t, "productUrl", resp.Field)
	assert.Equal(t, "VALIDATION_FAILED", resp.Code)
}

func TestSchedulePurchaseHandler_InvalidBody(t *testing.T) {
	svc, _ := newPurchaseService(t)

	rec := postPurchase(t, SchedulePurchaseHandler(svc), `{"userId": }`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSchedulePurchaseHandler_NoDatabase(t *testing.T) {
	rec := postPurchase(t, SchedulePurchaseHandler(nil), scheduleBody())

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "database")
}

func TestListPurchasesHandler(t *testing.T) {
	svc, mock := newPurchaseService(t)
	rows := scheduledRow("p1")
	mock.ExpectQuery("SELECT \\* FROM purchases").WillReturnRows(rows)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/purchases/user/user_42", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/purchases/user/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("user_42")

	require.NoError(t, ListPurchasesHandler(svc)(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.PurchaseListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Purchases, 1)
	assert.Equal(t, "p1", resp.Purchases[0].ID)
}

func TestListPurchasesHandler_UnknownUserIsEmpty(t *testing.T) {
	svc, mock := newPurchaseService(t)
	mock.ExpectQuery("SELECT \\* FROM purchases").WillReturnRows(sqlmock.NewRows(purchaseColumns))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/purchases/user/nobody", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/purchases/user/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("nobody")

	require.NoError(t, ListPurchasesHandler(svc)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"purchases": [], "count": 0}`, rec.Body.String())
}

func cancelRequest(t *testing.T, svc *purchases.Service, id string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/purchases/"+id+"/cancel", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/api/purchases/:id/cancel")
	c.SetParamNames("id")
	c.SetParamValues(id)

	require.NoError(t, CancelPurchaseHandler(svc)(c))
	return rec
}

func TestCancelPurchaseHandler_Cancels(t *testing.T) {
	svc, mock := newPurchaseService(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM purchases").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("scheduled"))
	mock.ExpectExec("UPDATE purchases SET status").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := cancelRequest(t, svc, "p1")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelPurchaseHandler_NotFound(t *testing.T) {
	svc, mock := newPurchaseService(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM purchases").WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	rec := cancelRequest(t, svc, "missing")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelPurchaseHandler_AlreadyCompleted(t *testing.T) {
	svc, mock := newPurchaseService(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT status FROM purchases").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("completed"))
	mock.ExpectRollback()

	rec := cancelRequest(t, svc, "p1")

	assert.Equal(t, http.StatusConflict, rec.Code)
}
