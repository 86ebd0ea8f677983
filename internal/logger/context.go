package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey struct{}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKey{}, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// FromCtx returns the process logger tagged with the request id, if any.
func FromCtx(ctx context.Context) *zap.Logger {
	if id := RequestIDFrom(ctx); id != "" {
		return L().With(zap.String("request_id", id))
	}
	return L()
}
