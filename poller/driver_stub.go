//go:build !linux
// +build !linux

// File: poller/driver_stub.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub implementation for unsupported platforms.

package poller

import (
	"github.com/rs/zerolog"

	"github.com/momentics/hioload-reactor/api"
	"github.com/momentics/hioload-reactor/event"
	"github.com/momentics/hioload-reactor/reactor"
)

// Driver is unavailable on this platform.
type Driver struct{}

// NewDriver returns an error for unsupported platforms.
func NewDriver(r *reactor.Reactor) (*Driver, error) {
	if r == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "nil reactor")
	}
	return nil, api.ErrNotSupported
}

// SetLogger is a no-op on this platform.
func (d *Driver) SetLogger(log zerolog.Logger) {}

// Dispatch is a no-op on this platform.
func (d *Driver) Dispatch(ev *event.Event) {}

// Run returns an error for unsupported platforms.
func (d *Driver) Run() error { return api.ErrNotSupported }

// Close is a no-op on this platform.
func (d *Driver) Close() error { return nil }
