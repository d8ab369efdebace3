// File: timer/timer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Deadline-ordered task scheduler over a binary min-heap.

package timer

import (
	"container/heap"
	"time"

	"github.com/momentics/hioload-reactor/api"
	"github.com/momentics/hioload-reactor/event"
	"github.com/momentics/hioload-reactor/record"
)

// Task is a deferred unit of work. The scheduler owns it until it fires
// or is cancelled; its attachment record carries the handler and the
// weak back-reference to the owning reactor.
type Task struct {
	deadline    time.Time
	attachments *record.Record
	cancelled   bool
	index       int
}

// Kind implements api.Endpoint.
func (t *Task) Kind() api.Kind { return api.KindTask }

// Attachments implements api.Endpoint.
func (t *Task) Attachments() *record.Record { return t.attachments }

// Deadline returns the task's due time.
func (t *Task) Deadline() time.Time { return t.deadline }

// Cancel discards the task before it fires. Cancelling a task that has
// already fired, or cancelling twice, has no effect.
func (t *Task) Cancel() { t.cancelled = true }

// Cancelled reports whether the task was discarded.
func (t *Task) Cancelled() bool { return t.cancelled }

type taskHeap []*Task

func (h taskHeap) Len() int           { return len(h) }
func (h taskHeap) Less(i, j int) bool { return h[i].deadline.Before(h[j].deadline) }

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*Task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Timer orders tasks by deadline and fires the due ones into a
// collector. Confined to the reactor's goroutine.
type Timer struct {
	collector *event.Collector
	tasks     taskHeap
}

// New returns a timer feeding the given collector.
func New(collector *event.Collector) *Timer {
	if collector == nil {
		panic("timer: New with nil collector")
	}
	return &Timer{collector: collector}
}

// Schedule adds a task due at deadline and returns it.
func (t *Timer) Schedule(deadline time.Time) *Task {
	task := &Task{deadline: deadline, attachments: record.New()}
	heap.Push(&t.tasks, task)
	return task
}

// Tick fires every task due at or before now by emitting a TimerTask
// event for it. Cancelled tasks are silently discarded. The first
// collector failure aborts the sweep with the unfired task still
// scheduled.
func (t *Timer) Tick(now time.Time) error {
	for t.tasks.Len() > 0 {
		head := t.tasks[0]
		if head.cancelled {
			heap.Pop(&t.tasks)
			continue
		}
		if head.deadline.After(now) {
			break
		}
		if _, err := t.collector.Put(event.TypeTimerTask, api.KindTask, head); err != nil {
			return err
		}
		heap.Pop(&t.tasks)
	}
	return nil
}

// Deadline returns the earliest pending due time, or the zero time when
// no live task is scheduled.
func (t *Timer) Deadline() time.Time {
	for t.tasks.Len() > 0 {
		if t.tasks[0].cancelled {
			heap.Pop(&t.tasks)
			continue
		}
		return t.tasks[0].deadline
	}
	return time.Time{}
}

// Tasks returns the number of live (unfired, uncancelled) tasks.
func (t *Timer) Tasks() int {
	n := 0
	for _, task := range t.tasks {
		if !task.cancelled {
			n++
		}
	}
	return n
}
