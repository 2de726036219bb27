package env

import (
	"casino/internal/config"
	"casino/internal/payout"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

const gamesConfigEnvName = "GAMES_CONFIG"

// Количество сегментов колеса каждого номинала
var wheelSegmentCounts = map[string]int{
	"1": 24, "2": 15, "5": 7, "10": 4, "20": 2, "joker": 1, "logo": 1,
}

var defaultWheelSegments = []string{
	"joker", "1", "2", "5", "1", "2", "10", "1", "1", "2", "5", "1", "2", "20", "1", "1", "2", "5",
	"1", "1", "10", "2", "1", "2", "5", "1", "1", "logo", "2", "1", "5", "2", "1", "10", "1", "2",
	"1", "5", "1", "2", "20", "1", "2", "1", "5", "1", "2", "10", "1", "2", "1", "1", "2", "1",
}

var defaultSlotStrips = [][]string{
	{"cherry", "lemon", "orange", "cherry", "plum", "bell", "cherry", "lemon", "bar", "orange", "cherry", "seven", "lemon", "plum", "cherry", "orange", "diamond", "lemon", "bell", "plum"},
	{"lemon", "cherry", "plum", "orange", "cherry", "bar", "lemon", "cherry", "bell", "orange", "plum", "cherry", "seven", "lemon", "orange", "cherry", "plum", "diamond", "cherry", "bell"},
	{"orange", "cherry", "lemon", "bell", "cherry", "plum", "orange", "lemon", "cherry", "bar", "plum", "cherry", "lemon", "seven", "orange", "cherry", "bell", "lemon", "diamond", "plum"},
	{"plum", "lemon", "cherry", "orange", "bell", "cherry", "lemon", "plum", "bar", "cherry", "orange", "lemon", "cherry", "seven", "plum", "orange", "cherry", "bell", "lemon", "diamond"},
	{"cherry", "orange", "lemon", "plum", "cherry", "bell", "orange", "cherry", "lemon", "bar", "plum", "cherry", "orange", "seven", "lemon", "cherry", "diamond", "plum", "bell", "orange"},
}

var defaultPinballReels = [][]string{
	{"cherry", "bell", "cherry", "bar", "cherry", "seven", "bell", "cherry", "ball", "bar"},
	{"bell", "cherry", "bar", "cherry", "ball", "cherry", "seven", "bell", "cherry", "bar"},
	{"cherry", "ball", "bell", "cherry", "bar", "ball", "cherry", "seven", "bell", "ball"},
}

type gamesYAML struct {
	Wheel struct {
		Segments []string `yaml:"segments"`
	} `yaml:"wheel"`
	Slots struct {
		Strips [][]string `yaml:"strips"`
	} `yaml:"slots"`
	Pinball struct {
		Reels [][]string `yaml:"reels"`
	} `yaml:"pinball"`
}

type gamesConfig struct {
	wheelSegments []string
	slotStrips    [][]string
	pinballReels  [][]string
}

// NewGamesConfig читает путь из GAMES_CONFIG, по умолчанию config.yaml
func NewGamesConfig() (config.GamesConfig, error) {
	path := os.Getenv(gamesConfigEnvName)
	if len(path) == 0 {
		path = "config.yaml"
	}
	return NewGamesConfigFromYAML(path)
}

// NewGamesConfigFromYAML - отсутствующий файл или секция заменяются встроенными таблицами
func NewGamesConfigFromYAML(path string) (config.GamesConfig, error) {
	var raw gamesYAML

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read games config: %w", err)
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse games config: %w", err)
		}
	}

	cfg := &gamesConfig{
		wheelSegments: orDefault(raw.Wheel.Segments, defaultWheelSegments),
		slotStrips:    orDefault(raw.Slots.Strips, defaultSlotStrips),
		pinballReels:  orDefault(raw.Pinball.Reels, defaultPinballReels),
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func orDefault[T any](v, def []T) []T {
	if len(v) == 0 {
		return def
	}
	return v
}

func (cfg *gamesConfig) validate() error {
	if len(cfg.wheelSegments) != 54 {
		return fmt.Errorf("wheel must have 54 segments, got %d", len(cfg.wheelSegments))
	}
	counts := make(map[string]int)
	for _, s := range cfg.wheelSegments {
		counts[s]++
	}
	for sym, want := range wheelSegmentCounts {
		if counts[sym] != want {
			return fmt.Errorf("wheel symbol %q must appear %d times, got %d", sym, want, counts[sym])
		}
	}

	if len(cfg.slotStrips) != 5 {
		return fmt.Errorf("slots need 5 strips, got %d", len(cfg.slotStrips))
	}
	for i, strip := range cfg.slotStrips {
		if len(strip) < 3 {
			return fmt.Errorf("slot strip %d is too short", i)
		}
		for _, sym := range strip {
			if _, ok := payout.SlotBase[sym]; !ok {
				return fmt.Errorf("slot strip %d: unknown symbol %q", i, sym)
			}
		}
	}

	if len(cfg.pinballReels) != 3 {
		return fmt.Errorf("pinball needs 3 reels, got %d", len(cfg.pinballReels))
	}
	for i, reel := range cfg.pinballReels {
		if len(reel) == 0 {
			return fmt.Errorf("pinball reel %d is empty", i)
		}
		for _, sym := range reel {
			if _, ok := payout.PinballBase[sym]; !ok {
				return fmt.Errorf("pinball reel %d: unknown symbol %q", i, sym)
			}
		}
	}
	if !slices.Contains(cfg.pinballReels[2], "ball") {
		return errors.New("pinball reel 3 must contain the ball trigger")
	}
	return nil
}

func (cfg *gamesConfig) WheelSegments() []string {
	return cfg.wheelSegments
}

func (cfg *gamesConfig) SlotStrips() [][]string {
	return cfg.slotStrips
}

func (cfg *gamesConfig) PinballReels() [][]string {
	return cfg.pinballReels
}
