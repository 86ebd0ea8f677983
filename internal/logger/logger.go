package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu  sync.RWMutex
	log *zap.Logger
)

// New builds a zap logger for env. "production" logs JSON to stdout,
// anything else uses the coloured development encoder.
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config

	switch env {
	case "production":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
	case "test":
		return zap.NewNop(), nil
	default:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return cfg.Build(zap.AddCaller())
}

// Init replaces the process logger.
func Init(env string) error {
	l, err := New(env)
	if err != nil {
		return err
	}
	Set(l)
	return nil
}

// Set swaps the process logger and returns the previous one.
func Set(l *zap.Logger) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()

	prev := log
	log = l
	return prev
}

// L returns the process logger, building one from APP_ENV on first use.
func L() *zap.Logger {
	mu.RLock()
	l := log
	mu.RUnlock()
	if l != nil {
		return l
	}

	l, err := New(os.Getenv("APP_ENV"))
	if err != nil {
		l = zap.NewNop()
	}

	mu.Lock()
	defer mu.Unlock()
	if log == nil {
		log = l
	}
	return log
}

func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if log != nil {
		_ = log.Sync()
	}
}
