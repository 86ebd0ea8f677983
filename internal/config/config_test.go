package config

import (
	"testing"

	"paygate/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTripayEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TRIPAY_MERCHANT_CODE", "T0001")
	t.Setenv("TRIPAY_APIKEY", "DEV-apikey")
	t.Setenv("TRIPAY_PRIVATE_KEY", "private-key")
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("TRIPAY_BASE_URL", "")
	t.Setenv("TRIPAY_PRODUCTION", "")
	t.Setenv("TRIPAY_FEE_ITEM_SKU", "")
	t.Setenv("CALLBACK_RATE_LIMIT", "")
	t.Setenv("APP_PORT", "")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		setTripayEnv(t)
		t.Setenv("APP_ENV", "test")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "T0001", cfg.TripayMerchantCode)
		assert.Equal(t, "DEV-apikey", cfg.TripayAPIKey)
		assert.Equal(t, "private-key", cfg.TripayPrivateKey)
		assert.Equal(t, "secret", cfg.SecretKey)
		assert.False(t, cfg.TripayProduction)
		assert.Equal(t, float64(2), cfg.CallbackRateLimit)
	})

	t.Run("AllOptions", func(t *testing.T) {
		setTripayEnv(t)
		t.Setenv("APP_PORT", "9090")
		t.Setenv("TRIPAY_BASE_URL", "http://localhost:9000/")
		t.Setenv("TRIPAY_PRODUCTION", "true")
		t.Setenv("TRIPAY_FEE_ITEM_SKU", "FEE")
		t.Setenv("CALLBACK_RATE_LIMIT", "5")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, float64(5), cfg.CallbackRateLimit)

		opts := cfg.TripayOptions()
		assert.Equal(t, "T0001", opts.MerchantCode)
		assert.Equal(t, "http://localhost:9000/", opts.BaseURL)
		assert.True(t, opts.Production)
		assert.Equal(t, "FEE", opts.FeeItemSKU)
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		for _, key := range []string{"TRIPAY_MERCHANT_CODE", "TRIPAY_APIKEY", "TRIPAY_PRIVATE_KEY", "SECRET_KEY"} {
			setTripayEnv(t)
			t.Setenv(key, "")

			_, err := LoadConfig()
			assert.ErrorIs(t, err, payment.ErrConfiguration, key)
			assert.ErrorContains(t, err, key)
		}
	})

	t.Run("FirstMissingReported", func(t *testing.T) {
		setTripayEnv(t)
		t.Setenv("TRIPAY_APIKEY", "")
		t.Setenv("TRIPAY_PRIVATE_KEY", "")
		t.Setenv("SECRET_KEY", "")

		for i := 0; i < 20; i++ {
			_, err := LoadConfig()
			require.ErrorIs(t, err, payment.ErrConfiguration)
			assert.EqualError(t, err, "invalid gateway configuration: TRIPAY_APIKEY is not set")
		}
	})

	t.Run("InvalidProductionFlag", func(t *testing.T) {
		setTripayEnv(t)
		t.Setenv("TRIPAY_PRODUCTION", "maybe")

		_, err := LoadConfig()
		assert.ErrorIs(t, err, payment.ErrConfiguration)
	})

	t.Run("InvalidRateLimit", func(t *testing.T) {
		setTripayEnv(t)
		t.Setenv("CALLBACK_RATE_LIMIT", "-1")

		_, err := LoadConfig()
		assert.ErrorIs(t, err, payment.ErrConfiguration)
	})
}
