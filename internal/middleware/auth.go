package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ledgerbook/backend/internal/services"
	"go.uber.org/zap"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenAuthenticator resolves an access token to a user id.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, accessToken string) (int64, error)
}

// Auth rejects requests without a valid bearer access token and stores the
// caller's user id in the request context.
func Auth(authenticator TokenAuthenticator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get token from Authorization header
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				services.SendErrorResponse(w, "Authentication credentials were not provided.", http.StatusUnauthorized, nil)
				return
			}

			token, ok := BearerToken(authHeader)
			if !ok {
				services.SendErrorResponse(w, "Invalid authorization header format", http.StatusUnauthorized, nil)
				return
			}

			userID, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if services.IsAuthentication(err) {
					logger.Debug("rejected token", zap.Error(err))
					services.SendErrorResponse(w, "Given token not valid for any token type", http.StatusUnauthorized, nil)
					return
				}
				logger.Error("token verification failed", zap.Error(err))
				services.SendErrorResponse(w, "An Internal Error Occurred", http.StatusInternalServerError, nil)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" value.
func BearerToken(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok && userID != 0
}
