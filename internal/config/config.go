package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

// GamesConfig - игровые таблицы, которые можно переопределить в config.yaml
type GamesConfig interface {
	WheelSegments() []string
	SlotStrips() [][]string
	PinballReels() [][]string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type LoggerConfig interface {
	Env() string
}

type SessionConfig interface {
	TTL() time.Duration
	SweepInterval() time.Duration
}
