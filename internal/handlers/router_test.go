package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ledgerbook/backend/internal/auth"
	"github.com/ledgerbook/backend/internal/config"
	"github.com/ledgerbook/backend/internal/services"
	"github.com/ledgerbook/backend/internal/storage/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testAPI struct {
	t       *testing.T
	handler http.Handler
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	logger := zap.NewNop()
	store := memory.NewMemoryStore()
	hasher := auth.NewPasswordHasher(config.Argon2Config{Time: 1, Memory: 1024, Threads: 1, KeyLength: 32, SaltLength: 16})
	tokens := auth.NewTokenService(config.JWTConfig{SecretKey: "test-secret", AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour}, nil)

	handler := NewRouter(RouterConfig{
		Auth:      services.NewAuthService(store, hasher, tokens, logger),
		Customers: services.NewCustomerService(store, nil, logger),
		Ledger:    services.NewLedgerService(store, nil, 2, logger),
		Logger:    logger,
	})
	return &testAPI{t: t, handler: handler}
}

func (a *testAPI) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
	}

	r := httptest.NewRequest(method, path, &buf)
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, r)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// login registers username and returns its access and refresh tokens.
func (a *testAPI) login(username string) (string, string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/auth/register/", "", map[string]string{
		"username":         username,
		"email":            username + "@example.com",
		"password":         "securepass123",
		"password_confirm": "securepass123",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())

	w = a.do(http.MethodPost, "/api/auth/login/", "", map[string]string{"username": username, "password": "securepass123"})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[LoginResponse](a.t, w)
	return resp.Access, resp.Refresh
}

func (a *testAPI) createCustomer(token, name string) int64 {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/customers/", token, map[string]string{"name": name, "phone": "01700000001"})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return int64(decode[map[string]any](a.t, w)["id"].(float64))
}

func (a *testAPI) createEntry(token string, customerID int64, typ, amount string) map[string]any {
	a.t.Helper()
	w := a.do(http.MethodPost, "/api/ledger-entries/", token, map[string]any{"customer": customerID, "type": typ, "amount": amount})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[map[string]any](a.t, w)
}

func TestAuthEndpoints(t *testing.T) {
	api := newTestAPI(t)

	t.Run("register", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/auth/register/", "", map[string]string{
			"username": "karim", "email": "karim@example.com",
			"password": "securepass123", "password_confirm": "securepass123",
			"first_name": "Karim", "last_name": "Uddin",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decode[RegisterResponse](t, w)
		assert.Equal(t, "Successfully registered", resp.Message)
		assert.Equal(t, "karim", resp.User.Username)
		assert.NotContains(t, w.Body.String(), "password")
	})

	t.Run("duplicate username", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/auth/register/", "", map[string]string{
			"username": "karim", "password": "securepass123", "password_confirm": "securepass123",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[services.ErrorResponse](t, w)
		assert.Contains(t, resp.Details, "username")
	})

	t.Run("password mismatch", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/auth/register/", "", map[string]string{
			"username": "rahim", "password": "securepass123", "password_confirm": "other12345",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[services.ErrorResponse](t, w).Details, "password")
	})

	t.Run("malformed bodies", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/auth/register/", "", "invalid").Code)
		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodPost, "/api/auth/login/", "", `{"username":"a","password":"b","extra":1}`).Code)
		w := api.do(http.MethodPost, "/api/auth/login/", "", `{"username":"a","password":"b"}{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "single JSON object")
	})

	t.Run("login", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/auth/login/", "", map[string]string{"username": "karim", "password": "securepass123"})
		require.Equal(t, http.StatusOK, w.Code)
		resp := decode[LoginResponse](t, w)
		assert.Equal(t, "Successfully logged in", resp.Message)
		assert.NotEmpty(t, resp.Access)
		assert.NotEmpty(t, resp.Refresh)

		w = api.do(http.MethodPost, "/api/auth/login/", "", map[string]string{"username": "karim", "password": "wrongpass"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid username or password", decode[services.ErrorResponse](t, w).Error)
	})

	t.Run("refresh and logout", func(t *testing.T) {
		access, refresh := api.login("refresher")

		w := api.do(http.MethodPost, "/api/auth/token/refresh/", "", map[string]string{"refresh": refresh})
		require.Equal(t, http.StatusOK, w.Code)
		newAccess := decode[RefreshResponse](t, w).Access
		assert.Equal(t, http.StatusOK, api.do(http.MethodGet, "/api/customers/", newAccess, nil).Code)

		w = api.do(http.MethodPost, "/api/auth/token/refresh/", "", map[string]string{"refresh": access})
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		w = api.do(http.MethodPost, "/api/auth/logout/", access, map[string]string{"refresh": refresh})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Successfully logged out", decode[MessageResponse](t, w).Message)

		w = api.do(http.MethodPost, "/api/auth/logout/", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestProtectedEndpointsRequireToken(t *testing.T) {
	api := newTestAPI(t)
	_, refresh := api.login("karim")

	for _, path := range []string{
		"/api/customers/",
		"/api/customers/1/",
		"/api/customers/search/?q=ka",
		"/api/customers/1/summary/",
		"/api/ledger-entries/",
		"/api/ledger-entries/1/",
		"/api/ledger-entries/by_customer/?customer_id=1",
		"/api/ledger-entries/filter_by_date/?customer_id=1",
		"/api/ledger-entries/filter_by_type/?customer_id=1&type=CREDIT",
		"/api/ledger-entries/statistics/",
	} {
		assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, path, "", nil).Code, path)
		assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, path, "garbage", nil).Code, path)
		assert.Equal(t, http.StatusUnauthorized, api.do(http.MethodGet, path, refresh, nil).Code, path)
	}
}

func TestCustomerEndpoints(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.login("karim")
	other, _ := api.login("rahim")

	id := api.createCustomer(token, "Karim Dokandar")

	t.Run("list with and without trailing slash", func(t *testing.T) {
		for _, path := range []string{"/api/customers/", "/api/customers"} {
			w := api.do(http.MethodGet, path, token, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decode[[]map[string]any](t, w), 1)
		}
		w := api.do(http.MethodGet, "/api/customers/", other, nil)
		assert.Equal(t, "[]\n", w.Body.String())
	})

	t.Run("isolation", func(t *testing.T) {
		path := fmt.Sprintf("/api/customers/%d/", id)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path, other, nil).Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodPut, path, other, map[string]string{"name": "x"}).Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, path, other, nil).Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, path+"summary/", other, nil).Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/customers/abc/", token, nil).Code)
	})

	t.Run("update", func(t *testing.T) {
		w := api.do(http.MethodPut, fmt.Sprintf("/api/customers/%d/", id), token, map[string]any{"name": "Karim Store", "address": "Dhaka"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[map[string]any](t, w)
		assert.Equal(t, "Karim Store", body["name"])
		assert.Nil(t, body["phone"])

		w = api.do(http.MethodPut, fmt.Sprintf("/api/customers/%d/", id), token, map[string]any{"name": ""})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		fetched := decode[map[string]any](t, api.do(http.MethodGet, fmt.Sprintf("/api/customers/%d/", id), token, nil))
		fetched["phone"] = "01700000001"
		w = api.do(http.MethodPut, fmt.Sprintf("/api/customers/%d/", id), token, fetched)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "01700000001", decode[map[string]any](t, w)["phone"])
		assert.Equal(t, "Karim Store", decode[map[string]any](t, w)["name"])
	})

	t.Run("search", func(t *testing.T) {
		w := api.do(http.MethodGet, "/api/customers/search/?q=store", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode[[]map[string]any](t, w), 1)

		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/customers/search/?q=a", token, nil).Code)
		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/customers/search/", token, nil).Code)

		w = api.do(http.MethodGet, "/api/customers/search/?q=store", other, nil)
		assert.Empty(t, decode[[]map[string]any](t, w))
	})

	t.Run("summary and cascade delete", func(t *testing.T) {
		api.createEntry(token, id, "CREDIT", "5000")
		api.createEntry(token, id, "CREDIT", "3000")
		api.createEntry(token, id, "DEBIT", "2000")

		w := api.do(http.MethodGet, fmt.Sprintf("/api/customers/%d/summary/", id), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, "8000.00", body["total_credit"])
		assert.Equal(t, "2000.00", body["total_debit"])
		assert.Equal(t, "6000.00", body["balance"])
		assert.Equal(t, float64(3), body["entries_count"])

		w = api.do(http.MethodDelete, fmt.Sprintf("/api/customers/%d/", id), token, nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())

		w = api.do(http.MethodGet, "/api/ledger-entries/", token, nil)
		assert.Equal(t, float64(0), decode[map[string]any](t, w)["count"])
	})
}

func TestLedgerEntryEndpoints(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.login("karim")
	other, _ := api.login("rahim")
	id := api.createCustomer(token, "Karim Dokandar")

	entry := api.createEntry(token, id, "CREDIT", "5000.5")
	assert.Equal(t, "5000.50", entry["amount"])
	assert.Equal(t, "Credit", entry["type_display"])
	assert.Equal(t, float64(id), entry["customer"])
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, entry["entry_date"])
	entryPath := fmt.Sprintf("/api/ledger-entries/%d/", int64(entry["id"].(float64)))

	t.Run("numeric amount accepted", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/ledger-entries/", token, `{"customer":`+fmt.Sprint(id)+`,"type":"DEBIT","amount":2000}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		assert.Equal(t, "2000.00", decode[map[string]any](t, w)["amount"])
	})

	t.Run("validation", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/ledger-entries/", token, map[string]any{"customer": id, "type": "REFUND", "amount": "1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, decode[services.ErrorResponse](t, w).Details, "type")

		w = api.do(http.MethodPost, "/api/ledger-entries/", token, map[string]any{"customer": id, "type": "CREDIT", "amount": "1.999"})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = api.do(http.MethodPost, "/api/ledger-entries/", token, map[string]any{"customer": id, "type": "CREDIT", "amount": "1", "colour": "red"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode[services.ErrorResponse](t, w)
		assert.Equal(t, "Invalid request body", resp.Error)
		assert.Equal(t, map[string]string{"colour": "Unknown field."}, resp.Details)
	})

	t.Run("foreign customer", func(t *testing.T) {
		w := api.do(http.MethodPost, "/api/ledger-entries/", other, map[string]any{"customer": id, "type": "CREDIT", "amount": "1"})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, entryPath, other, nil).Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodDelete, entryPath, other, nil).Code)
	})

	t.Run("replace", func(t *testing.T) {
		w := api.do(http.MethodPut, entryPath, token, map[string]any{"type": "DEBIT", "amount": "10.00", "note": "fixed"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode[map[string]any](t, w)
		assert.Equal(t, "DEBIT", body["type"])
		assert.Equal(t, "Debit", body["type_display"])
		assert.Equal(t, "fixed", body["note"])
		assert.Equal(t, entry["entry_date"], body["entry_date"])

		body["note"] = "echoed back"
		body["entry_date"] = "2020-01-01"
		w = api.do(http.MethodPut, entryPath, token, body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		echoed := decode[map[string]any](t, w)
		assert.Equal(t, "echoed back", echoed["note"])
		assert.Equal(t, "10.00", echoed["amount"])
		assert.Equal(t, entry["entry_date"], echoed["entry_date"])
	})

	t.Run("by customer", func(t *testing.T) {
		w := api.do(http.MethodGet, fmt.Sprintf("/api/ledger-entries/by_customer/?customer_id=%d", id), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, map[string]any{"id": float64(id), "name": "Karim Dokandar"}, body["customer"])
		assert.Len(t, body["entries"], 2)
		assert.Equal(t, "-2010.00", body["summary"].(map[string]any)["balance"])

		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/ledger-entries/by_customer/", token, nil).Code)
		assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/api/ledger-entries/by_customer/?customer_id=x", token, nil).Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, "/api/ledger-entries/by_customer/?customer_id=9999", token, nil).Code)
	})

	t.Run("filter by date", func(t *testing.T) {
		today := entry["entry_date"].(string)
		w := api.do(http.MethodGet, fmt.Sprintf("/api/ledger-entries/filter_by_date/?customer_id=%d&start_date=%s&end_date=%s", id, today, today), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, float64(2), body["total_entries"])
		assert.Equal(t, map[string]any{"start": today, "end": today}, body["date_range"])

		w = api.do(http.MethodGet, fmt.Sprintf("/api/ledger-entries/filter_by_date/?customer_id=%d&start_date=2999-01-01", id), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(0), decode[map[string]any](t, w)["total_entries"])

		w = api.do(http.MethodGet, fmt.Sprintf("/api/ledger-entries/filter_by_date/?customer_id=%d&start_date=invalid&end_date=2024-12-31", id), token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("filter by type", func(t *testing.T) {
		w := api.do(http.MethodGet, fmt.Sprintf("/api/ledger-entries/filter_by_type/?customer_id=%d&type=DEBIT", id), token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, "DEBIT", body["type"])
		assert.Equal(t, "2010.00", body["total_amount"])
		assert.Equal(t, float64(2), body["entries_count"])

		w = api.do(http.MethodGet, fmt.Sprintf("/api/ledger-entries/filter_by_type/?customer_id=%d&type=INVALID", id), token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		assert.Equal(t, http.StatusNoContent, api.do(http.MethodDelete, entryPath, token, nil).Code)
		assert.Equal(t, http.StatusNotFound, api.do(http.MethodGet, entryPath, token, nil).Code)
	})
}

func TestLedgerEntryPagination(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.login("karim")

	w := api.do(http.MethodGet, "/api/ledger-entries/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	empty := decode[EntryPageResponse](t, w)
	assert.Equal(t, int64(0), empty.Count)
	assert.NotNil(t, empty.Results)
	assert.Nil(t, empty.Next)

	id := api.createCustomer(token, "Karim")
	for i := 0; i < 3; i++ {
		api.createEntry(token, id, "CREDIT", "1")
	}

	w = api.do(http.MethodGet, "/api/ledger-entries/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[EntryPageResponse](t, w)
	assert.Equal(t, int64(3), first.Count)
	assert.Len(t, first.Results, 2)
	require.NotNil(t, first.Next)
	assert.Equal(t, "http://example.com/api/ledger-entries/?page=2", *first.Next)
	assert.Nil(t, first.Previous)

	w = api.do(http.MethodGet, "/api/ledger-entries/?page=2", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[EntryPageResponse](t, w)
	assert.Len(t, second.Results, 1)
	assert.Nil(t, second.Next)
	require.NotNil(t, second.Previous)
	assert.Equal(t, "http://example.com/api/ledger-entries/", *second.Previous)

	for _, page := range []string{"3", "0", "abc"} {
		w := api.do(http.MethodGet, "/api/ledger-entries/?page="+page, token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, page)
		assert.Equal(t, "Invalid page.", decode[services.ErrorResponse](t, w).Error)
	}
}

func TestStatisticsEndpoint(t *testing.T) {
	api := newTestAPI(t)
	token, _ := api.login("karim")

	first := api.createCustomer(token, "First")
	second := api.createCustomer(token, "Second")
	api.createEntry(token, first, "CREDIT", "5000")
	api.createEntry(token, first, "DEBIT", "2000")
	api.createEntry(token, second, "CREDIT", "3000")

	w := api.do(http.MethodGet, "/api/ledger-entries/statistics/", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"total_customers": 2,
		"total_credit": "8000.00",
		"total_debit": "2000.00",
		"total_balance": "6000.00",
		"total_entries": 3
	}`, w.Body.String())

	other, _ := api.login("rahim")
	w = api.do(http.MethodGet, "/api/ledger-entries/statistics/", other, nil)
	assert.JSONEq(t, `{"total_customers":0,"total_credit":"0.00","total_debit":"0.00","total_balance":"0.00","total_entries":0}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)
	w := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	down := NewRouter(RouterConfig{Ping: func(context.Context) error { return errors.New("db down") }})
	rec := httptest.NewRecorder()
	down.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
