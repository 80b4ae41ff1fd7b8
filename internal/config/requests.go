package config

import (
	"errors"
	"time"
)

type RequestsConfig struct {
	DefaultPageSize int           `mapstructure:"default-page-size"`
	MaxPageSize     int           `mapstructure:"max-page-size"`
	PollInterval    time.Duration `mapstructure:"poll-interval"`
	PollTimeout     time.Duration `mapstructure:"poll-timeout"`
}

func (cfg *RequestsConfig) Validate() error {
	if cfg.DefaultPageSize <= 0 {
		return errors.New("default page size must be greater than 0")
	}

	if cfg.MaxPageSize < cfg.DefaultPageSize {
		return errors.New("max page size cannot be smaller than the default page size")
	}

	if cfg.PollInterval <= 0 {
		return errors.New("poll interval must be positive")
	}

	if cfg.PollTimeout < cfg.PollInterval {
		return errors.New("poll timeout cannot be shorter than the poll interval")
	}

	return nil
}

func DefaultRequestsConfig() RequestsConfig {
	return RequestsConfig{
		DefaultPageSize: 10,
		MaxPageSize:     100,
		PollInterval:    2 * time.Second,
		PollTimeout:     30 * time.Second,
	}
}
