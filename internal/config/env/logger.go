package env

import (
	"casino/internal/config"
	"fmt"
	"os"
)

const (
	logEnvName = "LOG_ENV"

	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type loggerConfig struct {
	env string
}

func NewLoggerConfig() (config.LoggerConfig, error) {
	env := os.Getenv(logEnvName)
	switch env {
	case "":
		env = EnvLocal
	case EnvLocal, EnvDev, EnvProd:
	default:
		return nil, fmt.Errorf("unknown %s %q", logEnvName, env)
	}
	return &loggerConfig{env: env}, nil
}

func (cfg *loggerConfig) Env() string {
	return cfg.env
}
