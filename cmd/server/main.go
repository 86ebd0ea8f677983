package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"paygate/internal/config"
	"paygate/internal/logger"
	"paygate/internal/middleware"
	"paygate/internal/payment"
	"paygate/internal/payment/tripay"
	"paygate/internal/payment/webhook"
	"paygate/internal/server"

	"go.uber.org/zap"
)

var startServerFunc = func(addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv.ListenAndServe()
}

// logNotifier records verified callbacks. Integrators replace it with their
// own order handling.
func logNotifier(ctx context.Context, tx *payment.Transaction) error {
	logger.FromCtx(ctx).Info("payment callback",
		zap.String("merchant_ref", tx.ID),
		zap.String("payment_id", tx.PaymentID),
		zap.String("state", string(tx.State)),
		zap.Int64("amount", tx.Amount),
	)
	return nil
}

func newServer(cfg *config.Config, done <-chan struct{}) (http.Handler, error) {
	gw, err := tripay.New(cfg.TripayOptions())
	if err != nil {
		return nil, err
	}

	auth, err := middleware.NewAuthenticator(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", payment.ErrConfiguration, err)
	}

	limiter := middleware.NewRateLimiter(cfg.CallbackRateLimit, 5)
	go limiter.Run(time.Minute, done)

	return server.New(gw, webhook.NotifierFunc(logNotifier), auth, limiter).Routes(), nil
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.AppEnv); err != nil {
		return err
	}
	defer logger.Sync()

	done := make(chan struct{})
	defer close(done)

	handler, err := newServer(cfg, done)
	if err != nil {
		return err
	}

	logger.L().Info("paygate listening",
		zap.String("port", cfg.AppPort),
		zap.Bool("tripay_production", cfg.TripayProduction),
	)
	return startServerFunc(":"+cfg.AppPort, handler)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
