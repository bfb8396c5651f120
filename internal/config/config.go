package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModePlay  = "play"
	ModeWatch = "watch"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string  `yaml:"log-file" env:"LOG_FILE" env-default:"connectfour.log"`
	Mode     string  `yaml:"mode" env:"MODE" env-default:"play"`
	Board    Board   `yaml:"board"`
	Players  Players `yaml:"players"`
	Redis    Redis   `yaml:"redis"`
}

type Board struct {
	Height   int    `yaml:"height" env:"BOARD_HEIGHT" env-default:"6"`
	Width    int    `yaml:"width" env:"BOARD_WIDTH" env-default:"7"`
	WinCheck string `yaml:"win-check" env:"BOARD_WIN_CHECK" env-default:"full"`
}

type Players struct {
	Color1 string `yaml:"color1" env:"PLAYER1_COLOR" env-default:"red"`
	Color2 string `yaml:"color2" env:"PLAYER2_COLOR" env-default:"yellow"`
}

type Redis struct {
	Enabled bool   `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host    string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port    string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Channel string `yaml:"channel" env:"REDIS_CHANNEL" env-default:"connectfour"`
}

// MustLoad - load all configurations in config.yml file, or from the environment alone when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if that.Board.Height <= 0 || that.Board.Width <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, that.Board.Height, that.Board.Width)
	}

	switch that.Board.WinCheck {
	case "full", "local":
	default:
		return fmt.Errorf("%w: unknown win-check %q", ErrInvalidConfig, that.Board.WinCheck)
	}

	switch that.Mode {
	case ModePlay:
	case ModeWatch:
		if !that.Redis.Enabled {
			return fmt.Errorf("%w: watch mode needs redis", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, that.Mode)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
