package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, 168*time.Hour, cfg.RefreshTokenExpiryDuration)
	assert.Equal(t, 5*time.Minute, cfg.ProductCacheTTL)
	assert.Equal(t, "fluxora", cfg.JWTIssuer)
	assert.Equal(t, "rtid", cfg.RefreshTokenCookieName)
	assert.Equal(t, "5-M", cfg.LoginRateLimit)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "file://migrations", cfg.MigrationsURL)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := FromViper(newViper(map[string]any{
		"PORT":                "9090",
		"JWT_SECRET":          "a-production-grade-secret-value",
		"JWT_EXPIRY_DURATION": "15m",
		"PRODUCT_CACHE_TTL":   "30s",
		"IS_PRODUCTION":       true,
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, 30*time.Second, cfg.ProductCacheTTL)
	assert.True(t, cfg.IsProduction)
}

func TestFromViper_InvalidDuration(t *testing.T) {
	_, err := FromViper(newViper(map[string]any{"JWT_EXPIRY_DURATION": "one hour"}))
	assert.ErrorContains(t, err, "JWT_EXPIRY_DURATION")
}

func TestFromViper_ProductionRequiresSecret(t *testing.T) {
	_, err := FromViper(newViper(map[string]any{"IS_PRODUCTION": true}))
	assert.Error(t, err)
}
