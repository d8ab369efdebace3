// File: poller/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package poller bridges the reactor to the OS readiness multiplexer.
//
// The reactor core never blocks and never touches a socket; this
// package supplies the missing half. A Driver installs itself as the
// reactor's global handler: selectable lifecycle events keep the
// epoll interest set in sync, and the synthetic quiescence event is
// where the driver blocks, waiting for readiness or the earliest
// selectable deadline, bounded by the reactor's advisory timeout.
//
// Only Linux (epoll) is supported; other platforms get a stub
// constructor returning api.ErrNotSupported.
package poller
