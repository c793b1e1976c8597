package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg := FromViper(v)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Pagination.PageSize)
	assert.Equal(t, time.Hour, cfg.JWT.AccessTTL)
	assert.Equal(t, 24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, uint8(4), cfg.Argon2.Threads)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.JWT.SecretKey)
	assert.Equal(t, []string{"https://*", "http://*"}, cfg.Server.AllowedOrigins)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "memory")
	t.Setenv("PAGE_SIZE", "25")
	t.Setenv("JWT_ACCESS_TTL", "15m")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("JWT_SECRET_KEY", "s3cret")

	cfg, err := Load("testdata/does-not-exist.env")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Pagination.PageSize)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "s3cret", cfg.JWT.SecretKey)
}

func TestLoad_RequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	cfg, err := Load("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
	assert.Nil(t, cfg)

	t.Setenv("JWT_SECRET_KEY", "   ")
	_, err = Load("testdata/does-not-exist.env")
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestFromViper_InvalidPageSizeFallsBack(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("pagination.page_size", 0)

	assert.Equal(t, 10, FromViper(v).Pagination.PageSize)
}
