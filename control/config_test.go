// File: control/config_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package control

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.TickInterval != time.Second {
		t.Errorf("TickInterval = %v, want 1s", cfg.TickInterval)
	}
	if cfg.CollectorCapacity != 0 {
		t.Errorf("CollectorCapacity = %d, want 0", cfg.CollectorCapacity)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("Level = %v, want info", cfg.Level())
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HIOLOAD_REACTOR_TICK", "250ms")
	t.Setenv("HIOLOAD_REACTOR_QUEUE_CAP", "1024")
	t.Setenv("HIOLOAD_REACTOR_LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.TickInterval != 250*time.Millisecond {
		t.Errorf("TickInterval = %v, want 250ms", cfg.TickInterval)
	}
	if cfg.CollectorCapacity != 1024 {
		t.Errorf("CollectorCapacity = %d, want 1024", cfg.CollectorCapacity)
	}
	if cfg.Level() != zerolog.DebugLevel {
		t.Errorf("Level = %v, want debug", cfg.Level())
	}
}

func TestLevelFallback(t *testing.T) {
	cfg := Config{LogLevel: "chatty"}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("unknown level must fall back to info, got %v", cfg.Level())
	}
}
