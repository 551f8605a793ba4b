package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"

	"github.com/snowin/snowin/internal/viewstate"
)

// Config is the environment-derived runtime configuration. Command-line
// flags are applied on top by the cmd package.
type Config struct {
	// DataFile is a JSON snapshot to show instead of the built-in data.
	DataFile string        `env:"SNOWIN_DATA"`
	LogFile  string        `env:"SNOWIN_LOG_FILE"`
	LogLevel slog.Level    `env:"SNOWIN_LOG_LEVEL" envDefault:"INFO"`
	StartTab viewstate.Tab `env:"SNOWIN_START_TAB" envDefault:"home"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	return &cfg, nil
}
