package config

import (
	"fmt"
	"os"
	"strconv"

	"paygate/internal/payment"
	"paygate/internal/payment/tripay"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string
	AppPort string

	TripayMerchantCode string
	TripayAPIKey       string
	TripayPrivateKey   string
	TripayBaseURL      string
	TripayProduction   bool
	TripayFeeItemSKU   string

	// SecretKey signs the bearer tokens integrators use on the API routes.
	SecretKey string

	// CallbackRateLimit is the per-IP request rate allowed on callback routes.
	CallbackRateLimit float64
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:             os.Getenv("APP_ENV"),
		AppPort:            getEnv("APP_PORT", "8080"),
		TripayMerchantCode: os.Getenv("TRIPAY_MERCHANT_CODE"),
		TripayAPIKey:       os.Getenv("TRIPAY_APIKEY"),
		TripayPrivateKey:   os.Getenv("TRIPAY_PRIVATE_KEY"),
		TripayBaseURL:      os.Getenv("TRIPAY_BASE_URL"),
		TripayFeeItemSKU:   os.Getenv("TRIPAY_FEE_ITEM_SKU"),
		SecretKey:          os.Getenv("SECRET_KEY"),
		CallbackRateLimit:  2,
	}

	if v := os.Getenv("TRIPAY_PRODUCTION"); v != "" {
		prod, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("%w: TRIPAY_PRODUCTION: %v", payment.ErrConfiguration, err)
		}
		cfg.TripayProduction = prod
	}

	if v := os.Getenv("CALLBACK_RATE_LIMIT"); v != "" {
		limit, err := strconv.ParseFloat(v, 64)
		if err != nil || limit <= 0 {
			return nil, fmt.Errorf("%w: CALLBACK_RATE_LIMIT must be a positive number", payment.ErrConfiguration)
		}
		cfg.CallbackRateLimit = limit
	}

	required := []struct {
		name  string
		value string
	}{
		{"TRIPAY_MERCHANT_CODE", cfg.TripayMerchantCode},
		{"TRIPAY_APIKEY", cfg.TripayAPIKey},
		{"TRIPAY_PRIVATE_KEY", cfg.TripayPrivateKey},
		{"SECRET_KEY", cfg.SecretKey},
	}
	for _, r := range required {
		if r.value == "" {
			return nil, fmt.Errorf("%w: %s is not set", payment.ErrConfiguration, r.name)
		}
	}

	return cfg, nil
}

func (c *Config) TripayOptions() tripay.Options {
	return tripay.Options{
		MerchantCode: c.TripayMerchantCode,
		APIKey:       c.TripayAPIKey,
		PrivateKey:   c.TripayPrivateKey,
		BaseURL:      c.TripayBaseURL,
		Production:   c.TripayProduction,
		FeeItemSKU:   c.TripayFeeItemSKU,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
