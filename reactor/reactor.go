// File: reactor/reactor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Reactor root object and the cooperative drive loop.

package reactor

import (
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/momentics/hioload-reactor/api"
	"github.com/momentics/hioload-reactor/event"
	"github.com/momentics/hioload-reactor/record"
	"github.com/momentics/hioload-reactor/timer"
)

// Reactor is the process-scoped root object driving the event loop for
// one runtime instance. It exclusively owns its collector, scheduler
// and selectable registry; every other object holds at most a weak
// back-reference to it.
type Reactor struct {
	attachments *record.Record
	collector   *event.Collector
	global      event.Handler
	handler     *event.MultiHandler
	children    []*Selectable
	timer       *timer.Timer
	selectable  *Selectable
	previous    event.Type
	now         time.Time
	selectables int
	timeout     time.Duration
	tick        time.Duration
	yield       atomic.Bool
	log         zerolog.Logger
}

// New constructs a reactor. The zero configuration uses an unbounded
// collector, a no-op global handler, a 1s run tick and a nop logger.
func New(opts ...Option) *Reactor {
	cfg := newOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &Reactor{
		attachments: record.New(),
		collector:   event.NewCollector(cfg.collectorCap),
		global:      cfg.global,
		handler:     event.NewMulti(nil),
		tick:        cfg.tick,
		log:         cfg.log,
	}
	r.timer = timer.New(r.collector)
	r.Mark()
	return r
}

// Kind implements api.Endpoint.
func (r *Reactor) Kind() api.Kind { return api.KindReactor }

// Attachments implements api.Endpoint.
func (r *Reactor) Attachments() *record.Record { return r.attachments }

// Collector returns the reactor's event queue. Collaborators post
// their lifecycle events through it.
func (r *Reactor) Collector() *event.Collector { return r.collector }

// Handler returns the default (root) handler. Events that resolve to
// no specific handler fall back to it; children may be added to it at
// any time.
func (r *Reactor) Handler() *event.MultiHandler { return r.handler }

// Global returns the global observer handler.
func (r *Reactor) Global() event.Handler { return r.global }

// SetGlobal installs the global observer handler. It sees every
// dispatched event after the resolved handler, unconditionally.
func (r *Reactor) SetGlobal(h event.Handler) {
	if h == nil {
		panic("reactor: SetGlobal with nil handler")
	}
	r.global = h
}

// Timeout returns the advisory poll timeout recorded by the last Work
// call. The reactor never blocks on it; readiness drivers do.
func (r *Reactor) Timeout() time.Duration { return r.timeout }

// Now returns the timestamp cached by the last Mark.
func (r *Reactor) Now() time.Time { return r.now }

// Mark refreshes the reactor's cached timestamp.
func (r *Reactor) Mark() { r.now = time.Now() }

// Children returns the live selectables. The slice is owned by the
// reactor and must not be mutated.
func (r *Reactor) Children() []*Selectable { return r.children }

// SelectableCount returns the number of live selectables: created
// minus released.
func (r *Reactor) SelectableCount() int { return r.selectables }

// Selectable allocates a pollable resource owned by the reactor,
// emits its INIT event and registers it with the live set. The caller
// must eventually Release it.
func (r *Reactor) Selectable() (*Selectable, error) {
	sel := &Selectable{
		fd:          -1,
		attachments: record.New(),
		owner:       r,
		release:     r.releaseSelectable,
	}
	if _, err := r.collector.Put(event.TypeSelectableInit, api.KindSelectable, sel); err != nil {
		return nil, err
	}
	r.children = append(r.children, sel)
	r.selectables++
	r.log.Debug().Int("live", r.selectables).Msg("selectable created")
	return sel, nil
}

func (r *Reactor) releaseSelectable(sel *Selectable) {
	for i, child := range r.children {
		if child == sel {
			r.children = append(r.children[:i], r.children[i+1:]...)
			r.selectables--
			r.log.Debug().Int("live", r.selectables).Msg("selectable released")
			return
		}
	}
}

// Update reflects a selectable's state change into the collector:
// FINAL exactly once when it has become terminal, UPDATED otherwise.
// Requests after the FINAL are no-ops.
func (r *Reactor) Update(sel *Selectable) error {
	rec := sel.Attachments()
	if rec.Has(terminatedKey) {
		return nil
	}
	if sel.IsTerminal() {
		rec.Def(terminatedKey, record.SlotValue)
		_, err := r.collector.Put(event.TypeSelectableFinal, api.KindSelectable, sel)
		return err
	}
	_, err := r.collector.Put(event.TypeSelectableUpdated, api.KindSelectable, sel)
	return err
}

// Schedule registers a task due after delay, carrying the given
// handler (nil resolves to the default handler at dispatch time). The
// timer selectable's deadline is refreshed to the scheduler's next
// wake time.
func (r *Reactor) Schedule(delay time.Duration, h event.Handler) (*timer.Task, error) {
	task := r.timer.Schedule(r.now.Add(delay))
	rec := task.Attachments()
	recordInitReactor(rec, r)
	RecordSetHandler(rec, h)
	if r.selectable != nil {
		r.selectable.SetDeadline(r.timer.Deadline())
		if err := r.Update(r.selectable); err != nil {
			task.Cancel()
			return nil, err
		}
	}
	return task, nil
}

// Pending reports whether work remains beyond the queued events: a
// live task in the scheduler, or any selectable besides the timer's
// own. The timer selectable always counts as one, hence the >1 check.
func (r *Reactor) Pending() bool {
	return r.timer.Tasks() > 0 || r.selectables > 1
}

// Yield requests a cooperative early return from Process. It may be
// called from within a handler; it takes effect before the next event
// is dispatched, never interrupting the dispatch in progress.
func (r *Reactor) Yield() { r.yield.Store(true) }

// Process drains and dispatches queued events until the reactor either
// quiesces or finishes. It never blocks. A true result means the
// caller should poll external readiness and call again; false means
// nothing remains, ever.
func (r *Reactor) Process() bool {
	r.Mark()
	previous := event.TypeNone
	for {
		if ev := r.collector.Peek(); ev != nil {
			if r.yield.Load() {
				// The head event has not been popped; it is
				// dispatched first on resumption.
				r.yield.Store(false)
				return true
			}
			r.yield.Store(false)
			r.dispatchPre(ev)
			h := r.resolveHandler(ev)
			r.log.Trace().Stringer("event", ev).Msg("dispatch")
			h.Dispatch(ev)
			r.global.Dispatch(ev)
			r.dispatchPost(ev)
			previous = ev.Type()
			r.previous = previous
			r.collector.Pop()
			continue
		}
		if r.expireTimer() {
			continue
		}
		if r.Pending() {
			if previous != event.TypeReactorQuiesced && r.previous != event.TypeReactorFinal {
				if _, err := r.collector.Put(event.TypeReactorQuiesced, api.KindReactor, r); err != nil {
					r.log.Warn().Err(err).Msg("quiesce signal dropped")
					return true
				}
				continue
			}
			return true
		}
		if r.selectable != nil {
			sel := r.selectable
			r.selectable = nil
			sel.Terminate()
			if err := r.Update(sel); err != nil {
				r.log.Warn().Err(err).Msg("timer selectable final dropped")
			}
			sel.Release()
			continue
		}
		return false
	}
}

// expireTimer fires the scheduler when the timer selectable's deadline
// has passed, so due tasks reach dispatch before any quiescence signal.
func (r *Reactor) expireTimer() bool {
	if r.selectable == nil {
		return false
	}
	deadline := r.selectable.Deadline()
	if deadline.IsZero() || r.now.Before(deadline) {
		return false
	}
	r.selectable.Expired()
	return true
}

// Start emits the reactor's INIT event and creates the distinguished
// timer selectable.
func (r *Reactor) Start() error {
	if _, err := r.collector.Put(event.TypeReactorInit, api.KindReactor, r); err != nil {
		return err
	}
	sel, err := r.timerSelectable()
	if err != nil {
		return err
	}
	r.selectable = sel
	r.log.Debug().Msg("reactor started")
	return nil
}

func (r *Reactor) timerSelectable() (*Selectable, error) {
	sel, err := r.Selectable()
	if err != nil {
		return nil, err
	}
	sel.SetOnExpired(func(s *Selectable) {
		rx := s.Reactor()
		if err := rx.timer.Tick(rx.now); err != nil {
			rx.log.Warn().Err(err).Msg("timer tick incomplete")
		}
		s.SetDeadline(rx.timer.Deadline())
		if err := rx.Update(s); err != nil {
			rx.log.Warn().Err(err).Msg("timer selectable update dropped")
		}
	})
	sel.SetDeadline(r.timer.Deadline())
	if err := r.Update(sel); err != nil {
		return nil, err
	}
	return sel, nil
}

// Work records the advisory poll timeout for external multiplexing and
// runs one Process pass.
func (r *Reactor) Work(timeout time.Duration) bool {
	r.timeout = timeout
	return r.Process()
}

// Stop emits the finalization event, drains it, then releases the
// collector, closing it to further puts.
func (r *Reactor) Stop() error {
	_, err := r.collector.Put(event.TypeReactorFinal, api.KindReactor, r)
	r.Process()
	r.collector.Release()
	r.log.Debug().Msg("reactor stopped")
	return err
}

// Run drives the reactor to completion: Start, repeated Work at the
// configured tick until no work remains, then Stop. Blocking between
// passes is the global handler's business (see package poller); with a
// purely computational load Run spins through the passes directly.
func (r *Reactor) Run() error {
	if err := r.Start(); err != nil {
		return err
	}
	for r.Work(r.tick) {
	}
	return r.Stop()
}
