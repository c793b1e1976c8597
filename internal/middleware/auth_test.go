package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/ledgerbook/backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, token string) (int64, error) {
	args := m.Called(token)
	return args.Get(0).(int64), args.Error(1)
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	w.Write([]byte(strconv.FormatInt(userID, 10)))
}

func TestAuth(t *testing.T) {
	authenticator := new(mockAuthenticator)
	authenticator.On("Authenticate", "good").Return(int64(42), nil)
	authenticator.On("Authenticate", "bad").Return(int64(0), &services.AuthenticationError{Message: "expired"})
	authenticator.On("Authenticate", "broken").Return(int64(0), errors.New("redis down"))

	handler := Auth(authenticator, zap.NewNop())(http.HandlerFunc(echoUser))

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"valid token", "Bearer good", http.StatusOK, "42"},
		{"lowercase scheme", "bearer good", http.StatusOK, "42"},
		{"missing header", "", http.StatusUnauthorized, "Authentication credentials were not provided."},
		{"wrong scheme", "Token good", http.StatusUnauthorized, "Invalid authorization header format"},
		{"no token", "Bearer", http.StatusUnauthorized, "Invalid authorization header format"},
		{"rejected token", "Bearer bad", http.StatusUnauthorized, "Given token not valid for any token type"},
		{"verification failure", "Bearer broken", http.StatusInternalServerError, "An Internal Error Occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/customers/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
		})
	}
}

func TestUserIDFromContext(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)

	userID, ok := UserIDFromContext(WithUserID(context.Background(), 7))
	assert.True(t, ok)
	assert.Equal(t, int64(7), userID)
}

func TestSecurityHeaders(t *testing.T) {
	w := httptest.NewRecorder()
	SecurityHeaders(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).
		ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}
