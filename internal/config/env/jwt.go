package env

import (
	"casino/internal/config"
	"fmt"
	"os"
	"time"
)

const (
	accessTokenKeyEnvName      = "ACCESS_TOKEN"
	accessTokenDurationEnvName = "ACCESS_TOKEN_DURATION"

	defaultAccessTokenDuration = 15 * time.Minute
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	accessToken := os.Getenv(accessTokenKeyEnvName)
	if len(accessToken) == 0 {
		return nil, fmt.Errorf("access token secret key not found")
	}

	accessTokenDuration := defaultAccessTokenDuration
	if raw := os.Getenv(accessTokenDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid access token duration: %w", err)
		}
		accessTokenDuration = parsed
	}

	return &jwtConfig{
		accessTokenSecretKey: accessToken,
		accessTokenDuration:  accessTokenDuration,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
