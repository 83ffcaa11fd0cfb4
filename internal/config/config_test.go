package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "RomaWatches", cfg.App.Name)
	assert.Equal(t, 30*time.Minute, cfg.Cart.SnapshotTTL)
	assert.True(t, cfg.Checkout.ShippingFee.IsZero())
	assert.Equal(t, "62688888888686", cfg.Checkout.BankAccountNumber)
	assert.Equal(t, "MB", cfg.Checkout.BankCode)
	assert.Equal(t, 4, cfg.Catalog.LatestLimit)
	assert.Equal(t, 30*24*time.Hour, cfg.Catalog.DashboardWindow)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Empty(t, cfg.Email.Provider)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CART_SNAPSHOT_TTL", "45m")
	t.Setenv("CHECKOUT_SHIPPING_FEE", "30000")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://romawatches.vn, https://admin.romawatches.vn")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 45*time.Minute, cfg.Cart.SnapshotTTL)
	assert.True(t, decimal.NewFromInt(30000).Equal(cfg.Checkout.ShippingFee))
	assert.Equal(t, []string{"https://romawatches.vn", "https://admin.romawatches.vn"}, cfg.Security.CORSAllowedOrigins)
	assert.Contains(t, cfg.GetDatabaseDSN(), "port=6543")
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CART_SNAPSHOT_TTL", "soon")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Cart.SnapshotTTL)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestValidate(t *testing.T) {
	t.Run("short jwt secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "short")
		_, err := Load()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("negative shipping fee", func(t *testing.T) {
		t.Setenv("CHECKOUT_SHIPPING_FEE", "-1")
		_, err := Load()
		assert.ErrorContains(t, err, "CHECKOUT_SHIPPING_FEE")
	})

	t.Run("non-positive snapshot ttl", func(t *testing.T) {
		t.Setenv("CART_SNAPSHOT_TTL", "0s")
		_, err := Load()
		assert.ErrorContains(t, err, "CART_SNAPSHOT_TTL")
	})

	t.Run("smtp without host", func(t *testing.T) {
		t.Setenv("EMAIL_PROVIDER", "smtp")
		_, err := Load()
		assert.ErrorContains(t, err, "SMTP_HOST")
	})

	t.Run("unknown email provider", func(t *testing.T) {
		t.Setenv("EMAIL_PROVIDER", "pigeon")
		_, err := Load()
		assert.ErrorContains(t, err, "EMAIL_PROVIDER")
	})
}
