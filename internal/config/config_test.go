package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "STORAGE", "JWT_SECRET", "FREE_CANCELLED_SLOTS", "JWT_TTL_HOURS", "SHOP_TIMEZONE"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "memory", cfg.Storage)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 300*time.Second, cfg.SlotCacheTTL)
	assert.False(t, cfg.FreeCancelledSlots)
	assert.Equal(t, "America/Bogota", cfg.ShopTimezone)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE", "Postgres")
	t.Setenv("FREE_CANCELLED_SLOTS", "true")
	t.Setenv("PUBLIC_RATE_LIMIT_RPS", "0.5")
	t.Setenv("JWT_TTL_HOURS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.Storage)
	assert.True(t, cfg.FreeCancelledSlots)
	assert.InDelta(t, 0.5, cfg.PublicRateLimitRPS, 1e-9)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.Storage = "sqlite"
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.AppEnv = "production"
	cfg.JWTSecret = defaultJWTSecret
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "s3cret"
	assert.NoError(t, cfg.Validate())

	cfg.ShopTimezone = "Mars/Olympus"
	assert.Error(t, cfg.Validate())
}
