// File: reactor/options.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Functional options for reactor construction.

package reactor

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-reactor/control"
	"github.com/momentics/hioload-reactor/event"
)

// defaultTick is the Work interval used by Run when not configured.
const defaultTick = time.Second

type options struct {
	collectorCap int
	global       event.Handler
	tick         time.Duration
	log          zerolog.Logger
}

func newOptions() options {
	return options{
		global: event.HandlerFunc(func(*event.Event) {}),
		tick:   defaultTick,
		log:    zerolog.Nop(),
	}
}

// Option customizes reactor initialization.
type Option func(*options)

// WithLogger attaches a structured logger. The default discards
// everything.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

// WithGlobalHandler installs the global observer handler at
// construction time.
func WithGlobalHandler(h event.Handler) Option {
	return func(o *options) {
		if h != nil {
			o.global = h
		}
	}
}

// WithCollectorCapacity caps the event queue; zero means unbounded.
func WithCollectorCapacity(n int) Option {
	return func(o *options) { o.collectorCap = n }
}

// WithTick overrides the Work interval used by Run.
func WithTick(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.tick = d
		}
	}
}

// WithConfig applies a control.Config, typically loaded from the
// environment.
func WithConfig(cfg control.Config) Option {
	return func(o *options) {
		o.collectorCap = cfg.CollectorCapacity
		if cfg.TickInterval > 0 {
			o.tick = cfg.TickInterval
		}
	}
}
