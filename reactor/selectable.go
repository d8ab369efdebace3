// File: reactor/selectable.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Selectable: one pollable resource with INIT/UPDATED/FINAL lifecycle.

package reactor

import (
	"sync"
	"time"

	"github.com/momentics/hioload-reactor/api"
	"github.com/momentics/hioload-reactor/record"
)

// Callback is invoked with the selectable a readiness transition
// happened on.
type Callback func(sel *Selectable)

// Selectable describes one pollable resource. It never performs I/O
// itself: the readiness driver observes its fd, interest flags and
// deadline, and invokes the callbacks when the OS reports transitions.
//
// Lifecycle: INIT, any number of UPDATED, at most one FINAL, then
// released. Once terminal, further update requests are no-ops.
type Selectable struct {
	fd          int
	deadline    time.Time
	reading     bool
	writing     bool
	terminal    bool
	attachments *record.Record

	onReadable Callback
	onWritable Callback
	onExpired  Callback
	onError    Callback

	// owner is a weak back-reference: the reactor created this
	// selectable and outlives it.
	owner       *Reactor
	release     func(*Selectable)
	releaseOnce sync.Once
}

// Kind implements api.Endpoint.
func (s *Selectable) Kind() api.Kind { return api.KindSelectable }

// Attachments implements api.Endpoint.
func (s *Selectable) Attachments() *record.Record { return s.attachments }

// Reactor returns the owning reactor.
func (s *Selectable) Reactor() *Reactor { return s.owner }

// Fd returns the observed file descriptor, -1 when none.
func (s *Selectable) Fd() int { return s.fd }

// SetFd associates a file descriptor with the selectable.
func (s *Selectable) SetFd(fd int) { s.fd = fd }

// Deadline returns the wake deadline, zero when none.
func (s *Selectable) Deadline() time.Time { return s.deadline }

// SetDeadline sets the wake deadline; the zero time clears it.
func (s *Selectable) SetDeadline(deadline time.Time) { s.deadline = deadline }

// Reading reports read-readiness interest.
func (s *Selectable) Reading() bool { return s.reading }

// SetReading sets read-readiness interest.
func (s *Selectable) SetReading(v bool) { s.reading = v }

// Writing reports write-readiness interest.
func (s *Selectable) Writing() bool { return s.writing }

// SetWriting sets write-readiness interest.
func (s *Selectable) SetWriting(v bool) { s.writing = v }

// SetOnReadable installs the read-readiness callback.
func (s *Selectable) SetOnReadable(cb Callback) { s.onReadable = cb }

// SetOnWritable installs the write-readiness callback.
func (s *Selectable) SetOnWritable(cb Callback) { s.onWritable = cb }

// SetOnExpired installs the deadline-expiry callback.
func (s *Selectable) SetOnExpired(cb Callback) { s.onExpired = cb }

// SetOnError installs the error callback.
func (s *Selectable) SetOnError(cb Callback) { s.onError = cb }

// Readable invokes the read-readiness callback.
func (s *Selectable) Readable() {
	if s.onReadable != nil {
		s.onReadable(s)
	}
}

// Writable invokes the write-readiness callback.
func (s *Selectable) Writable() {
	if s.onWritable != nil {
		s.onWritable(s)
	}
}

// Expired invokes the deadline-expiry callback.
func (s *Selectable) Expired() {
	if s.onExpired != nil {
		s.onExpired(s)
	}
}

// Error invokes the error callback. With no callback installed the
// selectable becomes terminal: an errored fd that nobody handles has
// nothing left to wait for.
func (s *Selectable) Error() {
	if s.onError != nil {
		s.onError(s)
		return
	}
	s.terminal = true
}

// Terminate marks the selectable terminal. The next Update emits its
// single FINAL event.
func (s *Selectable) Terminate() { s.terminal = true }

// IsTerminal reports whether the selectable has been terminated.
func (s *Selectable) IsTerminal() bool { return s.terminal }

// Release drops the holder's reference: the selectable is removed from
// the registry and the live count decremented. Idempotent, and safe to
// invoke from within dispatch, including for the selectable currently
// being dispatched.
func (s *Selectable) Release() {
	s.releaseOnce.Do(func() {
		if s.release != nil {
			s.release(s)
		}
	})
}
