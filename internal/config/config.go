package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	InterestRate float64 `env:"INTEREST_RATE" envDefault:"0.05"`
	Currency     string  `env:"CURRENCY" envDefault:"USD"`
	LogLevel     string  `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv       string  `env:"APP_ENV" envDefault:"production"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if cfg.InterestRate < 0 {
		return nil, fmt.Errorf("config.Load: INTEREST_RATE must not be negative, got %v", cfg.InterestRate)
	}
	return &cfg, nil
}
