package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/sos-backend/internal/entity"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Game     Game   `yaml:"game"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

// Game holds the defaults applied to new games that don't set them.
type Game struct {
	DefaultSize    int           `yaml:"default-size" env:"GAME_DEFAULT_SIZE" env-default:"3"`
	DefaultVariant string        `yaml:"default-variant" env:"GAME_DEFAULT_VARIANT" env-default:"simple"`
	SessionTTL     time.Duration `yaml:"session-ttl" env:"GAME_SESSION_TTL" env-default:"24h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path, applies env overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := entity.ValidateSize(that.Game.DefaultSize); err != nil {
		return fmt.Errorf("%w: game.default-size: %w", ErrInvalidConfig, err)
	}

	if _, err := entity.ParseVariant(that.Game.DefaultVariant); err != nil {
		return fmt.Errorf("%w: game.default-variant: %w", ErrInvalidConfig, err)
	}

	if that.Game.SessionTTL < 0 {
		return fmt.Errorf("%w: game.session-ttl must not be negative", ErrInvalidConfig)
	}

	if that.Redis.Host == "" || that.Redis.Port == "" {
		return fmt.Errorf("%w: redis address is empty", ErrInvalidConfig)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Variant is only meaningful after Validate.
func (that *Game) Variant() entity.Variant {
	return entity.Variant(that.DefaultVariant)
}
