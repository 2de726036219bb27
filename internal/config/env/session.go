package env

import (
	"casino/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	sessionTTLEnvName = "SESSION_TTL"

	defaultSessionTTL = 30 * time.Minute
)

type sessionConfig struct {
	ttl time.Duration
}

func NewSessionConfig() (config.SessionConfig, error) {
	ttl := defaultSessionTTL
	if raw := os.Getenv(sessionTTLEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session ttl: %w", err)
		}
		if parsed <= 0 {
			return nil, fmt.Errorf("session ttl must be positive, got %s", parsed)
		}
		ttl = parsed
	}
	return &sessionConfig{ttl: ttl}, nil
}

func (cfg *sessionConfig) TTL() time.Duration {
	return cfg.ttl
}

// SweepInterval - как часто искать брошенные сессии
func (cfg *sessionConfig) SweepInterval() time.Duration {
	return max(cfg.ttl/4, time.Second)
}
