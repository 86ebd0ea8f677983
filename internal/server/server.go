package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"paygate/internal/logger"
	"paygate/internal/middleware"
	"paygate/internal/payment"
	"paygate/internal/payment/webhook"

	"go.uber.org/zap"
)

type Server struct {
	gateway  payment.Gateway
	callback http.Handler
	auth     *middleware.Authenticator
	limiter  *middleware.RateLimiter
}

func New(gateway payment.Gateway, notifier webhook.Notifier, auth *middleware.Authenticator, limiter *middleware.RateLimiter) *Server {
	return &Server{
		gateway:  gateway,
		callback: webhook.NewHandler(gateway, notifier),
		auth:     auth,
		limiter:  limiter,
	}
}

// Routes returns the API wrapped in the request-id and access-log middleware.
// Channel and transaction routes require an integrator token; the provider
// callback is authenticated by its signature instead.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.Handle("GET /channels", s.auth.Middleware(http.HandlerFunc(s.listChannels)))
	mux.Handle("POST /transactions", s.auth.Middleware(http.HandlerFunc(s.createTransaction)))
	mux.Handle("GET /transactions/{paymentId}", s.auth.Middleware(http.HandlerFunc(s.getTransaction)))

	callback := s.callback
	if s.limiter != nil {
		callback = s.limiter.Middleware(callback)
	}
	mux.Handle("POST /callback/tripay", callback)

	return logger.RequestIDMiddleware(logger.AccessLogMiddleware(mux))
}

// channelView adds the fee a customer would pay on the requested amount.
type channelView struct {
	payment.Channel
	CustomerFee *int64 `json:"customerFee,omitempty"`
}

// listChannels serves GET /channels. With ?amount=N each channel carries the
// fee Fee.Calculate charges on N.
func (s *Server) listChannels(w http.ResponseWriter, r *http.Request) {
	var amount int64 = -1
	if v := r.URL.Query().Get("amount"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "amount must be a non-negative integer"})
			return
		}
		amount = n
	}

	channels, err := s.gateway.Channels(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	out := make([]channelView, 0, len(channels))
	for _, ch := range channels {
		view := channelView{Channel: ch}
		if amount >= 0 {
			fee := ch.Fee.Calculate(amount)
			view.CustomerFee = &fee
		}
		out = append(out, view)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createTransaction(w http.ResponseWriter, r *http.Request) {
	var in payment.CreateTransaction
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	tx, err := s.gateway.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func (s *Server) getTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := s.gateway.Get(r.Context(), r.PathValue("paymentId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var perr *payment.ProviderError

	switch {
	case errors.Is(err, payment.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.As(err, &perr):
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: perr.Message})
	default:
		logger.FromCtx(r.Context()).Error("unhandled gateway error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
