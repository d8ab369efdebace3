//go:build linux
// +build linux

// File: poller/driver_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poller

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-reactor/event"
	"github.com/momentics/hioload-reactor/reactor"
)

func eventCounter(flag *bool) event.Handler {
	return event.HandlerFunc(func(*event.Event) { *flag = true })
}

func TestDriverDeliversReadable(t *testing.T) {
	r := reactor.New()
	d, err := NewDriver(r)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	defer d.Close()

	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer unix.Close(fds[1])
	if _, err := unix.Write(fds[1], []byte("ping")); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sel, err := r.Selectable()
	if err != nil {
		t.Fatalf("Selectable: %v", err)
	}
	sel.SetFd(fds[0])
	sel.SetReading(true)

	var got string
	sel.SetOnReadable(func(s *reactor.Selectable) {
		buf := make([]byte, 16)
		n, err := unix.Read(s.Fd(), buf)
		if err != nil {
			t.Errorf("read: %v", err)
		}
		got = string(buf[:n])
		unix.Close(s.Fd())
		s.Terminate()
		r.Update(s)
	})

	for r.Work(100 * time.Millisecond) {
	}
	if got != "ping" {
		t.Fatalf("readable callback got %q, want %q", got, "ping")
	}
	if r.SelectableCount() != 0 {
		t.Errorf("live selectables after completion = %d", r.SelectableCount())
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestDriverDrainsPipeAfterWriterClosed(t *testing.T) {
	r := reactor.New()
	d, err := NewDriver(r)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	defer d.Close()

	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	// Writer gone before the first pass: the read end reports
	// EPOLLHUP together with EPOLLIN until drained.
	if _, err := unix.Write(fds[1], []byte("ping")); err != nil {
		t.Fatalf("write: %v", err)
	}
	unix.Close(fds[1])
	defer unix.Close(fds[0])

	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sel, err := r.Selectable()
	if err != nil {
		t.Fatalf("Selectable: %v", err)
	}
	sel.SetFd(fds[0])
	sel.SetReading(true)

	var got string
	sel.SetOnReadable(func(s *reactor.Selectable) {
		buf := make([]byte, 16)
		n, err := unix.Read(s.Fd(), buf)
		if err != nil {
			t.Errorf("read: %v", err)
			n = 0
		}
		if n == 0 {
			s.Terminate()
			r.Update(s)
			return
		}
		got += string(buf[:n])
	})

	passes := 0
	for r.Work(50 * time.Millisecond) {
		passes++
		if passes > 50 {
			t.Fatal("loop did not terminate after hangup")
		}
	}
	if got != "ping" {
		t.Fatalf("read %q before hangup, want %q", got, "ping")
	}
	if r.SelectableCount() != 0 {
		t.Errorf("live selectables after completion = %d", r.SelectableCount())
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestDriverRetiresErroredSelectableWithoutCallback(t *testing.T) {
	r := reactor.New()
	d, err := NewDriver(r)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	defer d.Close()

	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		t.Fatalf("pipe: %v", err)
	}
	// No data and no writer: the read end only ever reports EPOLLHUP.
	unix.Close(fds[1])
	defer unix.Close(fds[0])

	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	sel, err := r.Selectable()
	if err != nil {
		t.Fatalf("Selectable: %v", err)
	}
	sel.SetFd(fds[0])

	passes := 0
	for r.Work(50 * time.Millisecond) {
		passes++
		if passes > 50 {
			t.Fatal("loop did not terminate after hangup")
		}
	}
	if r.SelectableCount() != 0 {
		t.Errorf("live selectables after completion = %d", r.SelectableCount())
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestDriverFiresDueTaskWhileBlocked(t *testing.T) {
	r := reactor.New()
	d, err := NewDriver(r)
	if err != nil {
		t.Fatalf("NewDriver: %v", err)
	}
	defer d.Close()

	if err := r.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	fired := false
	if _, err := r.Schedule(5*time.Millisecond, nil); err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	// The second task carries a handler; both fire once due.
	if _, err := r.Schedule(5*time.Millisecond, eventCounter(&fired)); err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	for r.Work(time.Second) {
	}
	if !fired {
		t.Fatal("due task did not fire while blocked in the driver")
	}
	if err := r.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}
