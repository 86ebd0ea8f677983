package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"paygate/internal/config"
	"paygate/internal/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:             "test",
		AppPort:            "8080",
		TripayMerchantCode: "T0001",
		TripayAPIKey:       "DEV-apikey",
		TripayPrivateKey:   "private-key",
		SecretKey:          "secret",
		CallbackRateLimit:  2,
	}
}

func TestNewServer(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	handler, err := newServer(testConfig(), done)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestNewServer_InvalidConfig(t *testing.T) {
	t.Run("BaseURL", func(t *testing.T) {
		cfg := testConfig()
		cfg.TripayBaseURL = "not a url"

		_, err := newServer(cfg, nil)
		assert.ErrorIs(t, err, payment.ErrConfiguration)
	})

	t.Run("SecretKey", func(t *testing.T) {
		cfg := testConfig()
		cfg.SecretKey = ""

		_, err := newServer(cfg, nil)
		assert.ErrorIs(t, err, payment.ErrConfiguration)
	})
}

func TestNewServer_RequiresToken(t *testing.T) {
	done := make(chan struct{})
	defer close(done)

	handler, err := newServer(testConfig(), done)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/channels", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogNotifier(t *testing.T) {
	assert.NoError(t, logNotifier(context.Background(), &payment.Transaction{ID: "INV-1", State: payment.StatePaid}))
}

func TestRun(t *testing.T) {
	orig := startServerFunc
	defer func() { startServerFunc = orig }()

	var addr string
	startServerFunc = func(a string, handler http.Handler) error {
		addr = a
		return nil
	}

	t.Setenv("APP_ENV", "test")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("TRIPAY_MERCHANT_CODE", "T0001")
	t.Setenv("TRIPAY_APIKEY", "DEV-apikey")
	t.Setenv("TRIPAY_PRIVATE_KEY", "private-key")
	t.Setenv("SECRET_KEY", "secret")

	require.NoError(t, run())
	assert.Equal(t, ":9090", addr)
}

func TestRun_MissingCredentials(t *testing.T) {
	t.Setenv("TRIPAY_MERCHANT_CODE", "")
	t.Setenv("TRIPAY_APIKEY", "")
	t.Setenv("TRIPAY_PRIVATE_KEY", "")

	assert.ErrorIs(t, run(), payment.ErrConfiguration)
}
