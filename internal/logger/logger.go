// Package logger собирает zap логгер под окружение.
package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// New - консольный debug логгер для local, JSON для dev (debug) и prod (info)
func New(env string) (*zap.Logger, error) {
	var cfg zap.Config

	switch env {
	case envLocal:
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	case envDev:
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	case envProd:
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown logger env %q", env)
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
