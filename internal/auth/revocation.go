package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RevocationList remembers revoked token IDs until the token would have expired anyway.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type RedisRevocationList struct {
	client *redis.Client
}

func NewRedisRevocationList(client *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{client: client}
}

func (l *RedisRevocationList) key(tokenID string) string {
	return fmt.Sprintf("blacklist:%s", tokenID)
}

func (l *RedisRevocationList) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return l.client.Set(ctx, l.key(tokenID), "1", ttl).Err()
}

func (l *RedisRevocationList) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := l.client.Exists(ctx, l.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NopRevocationList is used when Redis is unavailable. Nothing is ever revoked.
type NopRevocationList struct{}

func (NopRevocationList) Revoke(context.Context, string, time.Duration) error { return nil }

func (NopRevocationList) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// NewRevocationList picks the Redis list when a client is available.
func NewRevocationList(client *redis.Client) RevocationList {
	if client == nil {
		return NopRevocationList{}
	}
	return NewRedisRevocationList(client)
}
