// File: control/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Environment-driven runtime configuration.

package control

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

// Config carries the tunables of a reactor host.
type Config struct {
	// TickInterval is the advisory Work interval used by Run.
	TickInterval time.Duration `env:"HIOLOAD_REACTOR_TICK" envDefault:"1s"`
	// CollectorCapacity caps the event queue; 0 means unbounded.
	CollectorCapacity int `env:"HIOLOAD_REACTOR_QUEUE_CAP" envDefault:"0"`
	// LogLevel names the zerolog level for reactor instrumentation.
	LogLevel string `env:"HIOLOAD_REACTOR_LOG_LEVEL" envDefault:"info"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickInterval: time.Second,
		LogLevel:     zerolog.LevelInfoValue,
	}
}

// FromEnv loads the configuration, applying environment overrides on
// top of the defaults.
func FromEnv() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Default(), fmt.Errorf("control: parse environment: %w", err)
	}
	return cfg, nil
}

// Level parses the configured log level, falling back to info on
// unknown names.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
