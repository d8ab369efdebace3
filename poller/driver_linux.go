//go:build linux
// +build linux

// File: poller/driver_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux epoll(7)-based readiness driver.

package poller

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-reactor/api"
	"github.com/momentics/hioload-reactor/event"
	"github.com/momentics/hioload-reactor/reactor"
)

// Driver multiplexes the reactor's selectables over epoll. It acts as
// the reactor's global handler; wrap it in an event.MultiHandler to
// observe events alongside it.
type Driver struct {
	epfd       int
	r          *reactor.Reactor
	registered map[int]*reactor.Selectable
	tick       time.Duration
	log        zerolog.Logger
}

// NewDriver creates an epoll instance and installs the driver as the
// reactor's global handler.
func NewDriver(r *reactor.Reactor) (*Driver, error) {
	if r == nil {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "nil reactor")
	}
	epfd, err := unix.EpollCreate1(unix.EPOLL_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("poller: epoll create: %w", err)
	}
	d := &Driver{
		epfd:       epfd,
		r:          r,
		registered: make(map[int]*reactor.Selectable),
		tick:       DefaultTick,
		log:        zerolog.Nop(),
	}
	r.SetGlobal(d)
	return d, nil
}

// SetLogger attaches a structured logger to the driver.
func (d *Driver) SetLogger(log zerolog.Logger) { d.log = log }

// Dispatch implements event.Handler: the driver's bridging role.
func (d *Driver) Dispatch(ev *event.Event) {
	switch ev.Type() {
	case event.TypeSelectableInit:
		if sel, ok := ev.Context().(*reactor.Selectable); ok {
			d.register(sel)
		}
	case event.TypeSelectableUpdated:
		if sel, ok := ev.Context().(*reactor.Selectable); ok {
			d.update(sel)
		}
	case event.TypeSelectableFinal:
		if sel, ok := ev.Context().(*reactor.Selectable); ok {
			d.unregister(sel)
			sel.Release()
		}
	case event.TypeReactorQuiesced:
		d.poll()
	}
}

func interest(sel *reactor.Selectable) uint32 {
	var events uint32
	if sel.Reading() {
		events |= unix.EPOLLIN
	}
	if sel.Writing() {
		events |= unix.EPOLLOUT
	}
	return events
}

func (d *Driver) register(sel *reactor.Selectable) {
	fd := sel.Fd()
	if fd < 0 {
		// Deadline-only selectable, e.g. the reactor's timer.
		return
	}
	ev := unix.EpollEvent{Events: interest(sel), Fd: int32(fd)}
	if err := unix.EpollCtl(d.epfd, unix.EPOLL_CTL_ADD, fd, &ev); err != nil {
		d.log.Error().Err(err).Int("fd", fd).Msg("epoll add failed")
		return
	}
	d.registered[fd] = sel
}

func (d *Driver) update(sel *reactor.Selectable) {
	fd := sel.Fd()
	if fd < 0 {
		return
	}
	if _, ok := d.registered[fd]; !ok {
		d.register(sel)
		return
	}
	ev := unix.EpollEvent{Events: interest(sel), Fd: int32(fd)}
	if err := unix.EpollCtl(d.epfd, unix.EPOLL_CTL_MOD, fd, &ev); err != nil {
		d.log.Error().Err(err).Int("fd", fd).Msg("epoll mod failed")
	}
}

func (d *Driver) unregister(sel *reactor.Selectable) {
	fd := sel.Fd()
	if fd < 0 {
		return
	}
	if _, ok := d.registered[fd]; !ok {
		return
	}
	if err := unix.EpollCtl(d.epfd, unix.EPOLL_CTL_DEL, fd, nil); err != nil {
		d.log.Error().Err(err).Int("fd", fd).Msg("epoll del failed")
	}
	delete(d.registered, fd)
}

// poll blocks up to the reactor's advisory timeout, capped by the
// earliest selectable deadline, then surfaces readiness transitions
// and expiries as callback invocations.
func (d *Driver) poll() {
	wait := int(d.r.Timeout() / time.Millisecond)
	now := time.Now()
	for _, sel := range d.r.Children() {
		dl := sel.Deadline()
		if dl.IsZero() {
			continue
		}
		ms := int(dl.Sub(now) / time.Millisecond)
		if ms < 0 {
			ms = 0
		}
		if wait < 0 || ms < wait {
			wait = ms
		}
	}

	var events [128]unix.EpollEvent
	n, err := unix.EpollWait(d.epfd, events[:], wait)
	// Time passed while blocked; refresh the reactor's cached clock so
	// the expiry sweep and the next tick see it.
	d.r.Mark()
	if err != nil {
		if err != unix.EINTR {
			d.log.Error().Err(err).Msg("epoll wait failed")
		}
		return
	}
	for i := 0; i < n; i++ {
		sel, ok := d.registered[int(events[i].Fd)]
		if !ok {
			continue
		}
		flags := events[i].Events
		// EPOLLHUP arrives together with EPOLLIN while buffered data
		// remains; drain readiness first so the reader reaches EOF.
		delivered := false
		if flags&unix.EPOLLIN != 0 && sel.Reading() {
			sel.Readable()
			delivered = true
		}
		if flags&unix.EPOLLOUT != 0 && sel.Writing() {
			sel.Writable()
			delivered = true
		}
		if !delivered && flags&(unix.EPOLLERR|unix.EPOLLHUP) != 0 {
			sel.Error()
			if sel.IsTerminal() {
				if err := d.r.Update(sel); err != nil {
					d.log.Error().Err(err).Int("fd", sel.Fd()).Msg("retire after error failed")
				}
			}
		}
	}

	// Callbacks may create or release selectables; sweep a snapshot.
	now = d.r.Now()
	children := append([]*reactor.Selectable(nil), d.r.Children()...)
	for _, sel := range children {
		if dl := sel.Deadline(); !dl.IsZero() && !now.Before(dl) {
			sel.Expired()
		}
	}
}

// Run drives the reactor to completion with the driver providing the
// blocking between passes.
func (d *Driver) Run() error {
	if err := d.r.Start(); err != nil {
		return err
	}
	for d.r.Work(d.tick) {
	}
	if err := d.r.Stop(); err != nil {
		return err
	}
	return d.Close()
}

// Close releases the epoll instance.
func (d *Driver) Close() error {
	return unix.Close(d.epfd)
}
