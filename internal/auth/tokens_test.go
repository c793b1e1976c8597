package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v8"
	"github.com/ledgerbook/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = config.JWTConfig{SecretKey: "test-secret", AccessTTL: time.Hour, RefreshTTL: 24 * time.Hour}

func newTestTokenService(revocations RevocationList, now time.Time) *TokenService {
	s := NewTokenService(testJWT, revocations)
	s.now = func() time.Time { return now }
	return s
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestTokenService(nil, now)
	ctx := context.Background()

	pair, err := s.IssuePair(42)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Access, pair.Refresh)

	claims, err := s.Verify(ctx, pair.Access, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, now.Add(time.Hour), claims.ExpiresAt.Time.UTC())

	_, err = s.Verify(ctx, pair.Refresh, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify(ctx, pair.Access, RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = s.Verify(ctx, "not-a-token", AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_RejectsForeignAndExpired(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestTokenService(nil, now)
	ctx := context.Background()

	other := NewTokenService(config.JWTConfig{SecretKey: "other-secret", AccessTTL: time.Hour}, nil)
	other.now = s.now
	forged, err := other.issue(42, AccessToken, time.Hour)
	require.NoError(t, err)
	_, err = s.Verify(ctx, forged, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	pair, err := s.IssuePair(42)
	require.NoError(t, err)
	s.now = func() time.Time { return now.Add(2 * time.Hour) }
	_, err = s.Verify(ctx, pair.Access, AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// refresh token outlives the access token
	access, err := s.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	claims, err := s.Verify(ctx, access, AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
}

func TestTokenService_Revoke(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	client, mock := redismock.NewClientMock()
	s := newTestTokenService(NewRevocationList(client), now)
	ctx := context.Background()

	pair, err := s.IssuePair(7)
	require.NoError(t, err)
	refresh, err := s.parse(pair.Refresh)
	require.NoError(t, err)
	key := "blacklist:" + refresh.ID

	mock.ExpectSet(key, "1", 24*time.Hour).SetVal("OK")
	require.NoError(t, s.Revoke(ctx, pair.Refresh))

	mock.ExpectExists(key).SetVal(1)
	_, err = s.Refresh(ctx, pair.Refresh)
	assert.ErrorIs(t, err, ErrRevokedToken)

	mock.ExpectExists(key).SetErr(errors.New("connection refused"))
	_, err = s.Verify(ctx, pair.Refresh, RefreshToken)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRevokedToken)

	assert.ErrorIs(t, s.Revoke(ctx, "garbage"), ErrInvalidToken)

	// expired tokens need no blacklist entry
	s.now = func() time.Time { return now.Add(48 * time.Hour) }
	assert.NoError(t, s.Revoke(ctx, pair.Refresh))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNopRevocationList(t *testing.T) {
	list := NewRevocationList(nil)
	assert.IsType(t, NopRevocationList{}, list)

	ctx := context.Background()
	require.NoError(t, list.Revoke(ctx, "abc", time.Minute))
	revoked, err := list.IsRevoked(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, revoked)
}
