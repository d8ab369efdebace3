// File: reactor/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package reactor implements the single-threaded, event-driven core
// that orchestrates a protocol engine's runtime: it drains lifecycle
// events from the collector, resolves and dispatches them to handlers,
// tracks the registry of pollable selectables, and schedules deferred
// tasks.
//
// The drive loop is cooperative and never blocks. Hosts call Work with
// an advisory poll timeout, block in their own readiness mechanism
// between calls (see package poller for the epoll bridge), and stop
// once Work reports that nothing remains.
package reactor
