// File: event/collector_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package event

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-reactor/api"
)

func TestCollectorFIFO(t *testing.T) {
	c := NewCollector(0)
	for i := 0; i < 5; i++ {
		if _, err := c.Put(TypeApplication+Type(i), api.KindConnection, i); err != nil {
			t.Fatalf("Put: %v", err)
		}
	}
	for i := 0; i < 5; i++ {
		ev := c.Peek()
		if ev == nil {
			t.Fatalf("Peek at %d returned nil", i)
		}
		if ev.Context() != i {
			t.Errorf("dequeue order broken: got %v, want %d", ev.Context(), i)
		}
		c.Pop()
	}
	if !c.Empty() {
		t.Error("collector not empty after draining")
	}
}

func TestCollectorPeekRetainsHead(t *testing.T) {
	c := NewCollector(0)
	c.Put(TypeConnectionInit, api.KindConnection, "ctx")
	first := c.Peek()
	second := c.Peek()
	if first != second {
		t.Error("Peek must not remove the head event")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCollectorPopEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Pop on empty collector must panic")
		}
	}()
	NewCollector(0).Pop()
}

func TestCollectorCapacity(t *testing.T) {
	c := NewCollector(2)
	c.Put(TypeApplication, api.KindConnection, 1)
	c.Put(TypeApplication, api.KindConnection, 2)
	_, err := c.Put(TypeApplication, api.KindConnection, 3)
	if !errors.Is(err, api.ErrResourceExhausted) {
		t.Fatalf("Put over capacity: got %v, want ErrResourceExhausted", err)
	}
	var structured *api.Error
	if !errors.As(err, &structured) {
		t.Fatalf("Put over capacity: got %T, want *api.Error", err)
	}
	if structured.Context["limit"] != 2 {
		t.Errorf("error context limit = %v, want 2", structured.Context["limit"])
	}
	c.Pop()
	if _, err := c.Put(TypeApplication, api.KindConnection, 3); err != nil {
		t.Fatalf("Put after Pop freed capacity: %v", err)
	}
}

func TestCollectorRelease(t *testing.T) {
	c := NewCollector(0)
	c.Put(TypeApplication, api.KindConnection, 1)
	c.Put(TypeApplication, api.KindConnection, 2)
	c.Release()
	if c.Peek() != nil {
		t.Error("Peek after Release must return nil")
	}
	ev, err := c.Put(TypeApplication, api.KindConnection, 3)
	if ev != nil || err != nil {
		t.Errorf("Put after Release must be a no-op, got (%v, %v)", ev, err)
	}
	if c.Len() != 0 {
		t.Errorf("Len after Release = %d", c.Len())
	}
	c.Release() // idempotent
}

func TestTypeStrings(t *testing.T) {
	if TypeReactorQuiesced.String() != "reactor-quiesced" {
		t.Errorf("unexpected name %q", TypeReactorQuiesced)
	}
	if TypeSelectableFinal.String() != "selectable-final" {
		t.Errorf("unexpected name %q", TypeSelectableFinal)
	}
	if got := (TypeApplication + 7).String(); got != "application(10007)" {
		t.Errorf("application type name = %q", got)
	}
}
