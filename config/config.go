// Package config loads runtime settings from a YAML file and SNAKE_* environment variables
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/snake/parameter"
)

// EnvPrefix is prepended to every environment override
const EnvPrefix = "SNAKE_"

// Store backend names
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendRedis  = "redis"
)

// Grid size limits
const (
	MinGridSize = 4
	MaxGridSize = 200
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Game  GameConfig  `yaml:"game" envPrefix:"GAME_"`
	Log   LogConfig   `yaml:"log" envPrefix:"LOG_"`
	Store StoreConfig `yaml:"store" envPrefix:"STORE_"`
	HTTP  HTTPConfig  `yaml:"http" envPrefix:"HTTP_"`
	Audio AudioConfig `yaml:"audio" envPrefix:"AUDIO_"`
	Input InputConfig `yaml:"input" envPrefix:"INPUT_"`
}

type GameConfig struct {
	GridSize int    `yaml:"grid_size" env:"GRID_SIZE"`
	Seed     uint64 `yaml:"seed" env:"SEED"` // 0 seeds from the clock
}

type LogConfig struct {
	Level string `yaml:"level" env:"LEVEL"`
	Debug bool   `yaml:"debug" env:"DEBUG"` // terminal play writes logs/snake.log only when set
}

type StoreConfig struct {
	Backend string      `yaml:"backend" env:"BACKEND"`
	Path    string      `yaml:"path" env:"PATH"`
	Redis   RedisConfig `yaml:"redis" envPrefix:"REDIS_"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" env:"ADDR"`
	Password string `yaml:"password" env:"PASSWORD"`
	DB       int    `yaml:"db" env:"DB"`
}

type HTTPConfig struct {
	Addr      string `yaml:"addr" env:"ADDR"`
	RateLimit int    `yaml:"rate_limit" env:"RATE_LIMIT"` // event posts per second per client
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled" env:"ENABLED"`
	Volume  float64 `yaml:"volume" env:"VOLUME"` // linear, 0..1
}

type InputConfig struct {
	// Bindings maps key names ("w", "space", "Up", "Ctrl-C") to actions
	// ("up", "down", "left", "right", "toggle", "restart", "quit", "none")
	Bindings map[string]string `yaml:"bindings" env:"BINDINGS"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Game: GameConfig{
			GridSize: parameter.GridSize,
		},
		Log: LogConfig{
			Level: "info",
		},
		Store: StoreConfig{
			Backend: BackendMemory,
		},
		HTTP: HTTPConfig{
			Addr:      ":8080",
			RateLimit: 20,
		},
		Audio: AudioConfig{
			Volume: 0.5,
		},
	}
}

// Load layers the YAML file at path (optional) and environment overrides over
// Default, then validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decodeStrict(data, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decodeStrict rejects unknown keys and trailing documents
func decodeStrict(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("strict config parse error: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("config file contains multiple documents or trailing content")
	}
	return nil
}

// ApplyEnv overrides fields from SNAKE_* variables that are set
func ApplyEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every problem at once, wrapped in ErrInvalid
func (c Config) Validate() error {
	var problems []string

	if c.Game.GridSize < MinGridSize || c.Game.GridSize > MaxGridSize {
		problems = append(problems, fmt.Sprintf("game.grid_size %d outside [%d, %d]", c.Game.GridSize, MinGridSize, MaxGridSize))
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level %q unknown", c.Log.Level))
	}

	switch c.Store.Backend {
	case BackendMemory, BackendBadger:
	case BackendFile, BackendSQLite:
		if c.Store.Path == "" {
			problems = append(problems, fmt.Sprintf("store.path required for %s backend", c.Store.Backend))
		}
	case BackendRedis:
		if c.Store.Redis.Addr == "" {
			problems = append(problems, "store.redis.addr required for redis backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("store.backend %q unknown", c.Store.Backend))
	}

	if c.HTTP.RateLimit <= 0 {
		problems = append(problems, "http.rate_limit must be positive")
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		problems = append(problems, fmt.Sprintf("audio.volume %v outside [0, 1]", c.Audio.Volume))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}
