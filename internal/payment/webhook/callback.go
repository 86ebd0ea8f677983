package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"paygate/internal/logger"
	"paygate/internal/payment"

	"go.uber.org/zap"
)

// maxBodySize bounds callback payloads; provider callbacks are a few KB.
const maxBodySize = 1 << 20

// Notifier receives transactions from verified callbacks.
type Notifier interface {
	HandleCallback(ctx context.Context, tx *payment.Transaction) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, tx *payment.Transaction) error

func (f NotifierFunc) HandleCallback(ctx context.Context, tx *payment.Transaction) error {
	return f(ctx, tx)
}

type Handler struct {
	Gateway  payment.Gateway
	Notifier Notifier
}

func NewHandler(gateway payment.Gateway, notifier Notifier) *Handler {
	return &Handler{
		Gateway:  gateway,
		Notifier: notifier,
	}
}

// ServeHTTP verifies the callback against the raw body before anything is
// decoded, then hands the transaction to the notifier.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logger.FromCtx(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		log.Warn("failed to read callback body", zap.Error(err))
		writeAck(w, http.StatusBadRequest, false, "failed to read body")
		return
	}

	tx, err := h.Gateway.VerifyCallback(body, r.Header)
	switch {
	case errors.Is(err, payment.ErrAuthentication):
		log.Warn("rejected callback", zap.Error(err))
		writeAck(w, http.StatusUnauthorized, false, "invalid signature")
		return
	case errors.Is(err, payment.ErrFormat):
		log.Warn("malformed callback", zap.Error(err))
		writeAck(w, http.StatusBadRequest, false, "invalid payload")
		return
	case err != nil:
		log.Error("callback verification failed", zap.Error(err))
		writeAck(w, http.StatusInternalServerError, false, "internal error")
		return
	}

	log = log.With(
		zap.String("merchant_ref", tx.ID),
		zap.String("payment_id", tx.PaymentID),
		zap.String("state", string(tx.State)),
	)

	if h.Notifier != nil {
		if err := h.Notifier.HandleCallback(r.Context(), tx); err != nil {
			log.Error("callback handler failed", zap.Error(err))
			writeAck(w, http.StatusInternalServerError, false, "failed to process callback")
			return
		}
	}

	log.Info("callback processed")
	writeAck(w, http.StatusOK, true, "")
}

type ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func writeAck(w http.ResponseWriter, status int, ok bool, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ack{Success: ok, Message: msg})
}
