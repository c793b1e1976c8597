package database

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/ledgerbook/backend/internal/config"
	"go.uber.org/zap"
)

// InitRedis connects to Redis. It returns nil when Redis is disabled or
// unreachable; callers must treat a nil client as "no revocation list".
func InitRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *redis.Client {
	if !cfg.Enabled {
		logger.Info("redis disabled")
		return nil
	}

	addr := cfg.Host + ":" + cfg.Port
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis connection failed, continuing without redis", zap.String("addr", addr), zap.Error(err))
		rdb.Close()
		return nil
	}

	logger.Info("redis connection established", zap.String("addr", addr))
	return rdb
}
