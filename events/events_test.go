package events

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
)

func TestNotifier_EmitOrder(t *testing.T) {
	n := New()
	var got []string
	n.On("tick", func(ev Event) error { got = append(got, "a:"+ev.Payload.(string)); return nil })
	n.On("tick", func(ev Event) error { got = append(got, "b:"+ev.Payload.(string)); return nil })
	n.On("other", func(ev Event) error { got = append(got, "other"); return nil })

	if calls := n.Emit("tick", "1"); calls != 2 {
		t.Errorf("Emit() = %d, want 2", calls)
	}
	n.Emit("tick", "2")

	want := []string{"a:1", "b:1", "a:2", "b:2"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("delivery order mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifier_EventEnvelope(t *testing.T) {
	at := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	n := New(WithClock(func() time.Time { return at }))

	var ids []string
	n.On(Ready, func(ev Event) error {
		if ev.Name != Ready {
			t.Errorf("Name = %q, want %q", ev.Name, Ready)
		}
		if !ev.OccurredAt.Equal(at) {
			t.Errorf("OccurredAt = %v, want %v", ev.OccurredAt, at)
		}
		if _, err := uuid.Parse(ev.ID); err != nil {
			t.Errorf("ID %q is not a UUID: %v", ev.ID, err)
		}
		ids = append(ids, ev.ID)
		return nil
	})

	n.Emit(Ready, nil)
	n.Emit(Ready, nil)
	if len(ids) != 2 || ids[0] == ids[1] {
		t.Errorf("expected two distinct event IDs, got %v", ids)
	}
}

func TestNotifier_Unsubscribe(t *testing.T) {
	n := New()
	calls := 0
	off := n.On("x", func(Event) error { calls++; return nil })

	n.Emit("x", nil)
	off()
	off()
	if got := n.Emit("x", nil); got != 0 {
		t.Errorf("Emit() after unsubscribe = %d, want 0", got)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n.ListenerCount("x") != 0 {
		t.Errorf("ListenerCount() = %d, want 0", n.ListenerCount("x"))
	}
}

func TestNotifier_Once(t *testing.T) {
	n := New()
	calls := 0
	n.Once(Ready, func(Event) error { calls++; return nil })

	n.Emit(Ready, nil)
	n.Emit(Ready, nil)
	if calls != 1 {
		t.Errorf("once listener called %d times, want 1", calls)
	}
}

func TestNotifier_ListenerFailures(t *testing.T) {
	var reported []string
	n := New(WithErrorHandler(func(ev Event, err error) {
		reported = append(reported, ev.Name+": "+err.Error())
	}))

	reached := false
	n.On("job", func(Event) error { return errors.New("boom") })
	n.On("job", func(Event) error { panic("kaboom") })
	n.On("job", func(Event) error { reached = true; return nil })

	if got := n.Emit("job", nil); got != 3 {
		t.Errorf("Emit() = %d, want 3", got)
	}
	if !reached {
		t.Error("listener after a failing one was not called")
	}
	if len(reported) != 2 {
		t.Fatalf("reported %d failures, want 2: %v", len(reported), reported)
	}
	if reported[0] != "job: boom" {
		t.Errorf("first failure = %q", reported[0])
	}
	if !strings.Contains(reported[1], "panicked: kaboom") {
		t.Errorf("second failure = %q", reported[1])
	}
}

func TestNotifier_LeakWarning(t *testing.T) {
	var warned []int
	n := New(WithMaxListeners(2), WithLeakHandler(func(event string, count int) {
		warned = append(warned, count)
	}))

	for i := 0; i < 4; i++ {
		n.On("e", func(Event) error { return nil })
	}
	if diff := cmp.Diff([]int{3}, warned); diff != "" {
		t.Errorf("leak warnings mismatch (-want +got):\n%s", diff)
	}
}

func TestNotifier_Freeze(t *testing.T) {
	n := New().Freeze()
	if !n.Frozen() {
		t.Fatal("Frozen() = false after Freeze")
	}
	if err := n.SetErrorHandler(nil); !errors.Is(err, ErrFrozen) {
		t.Errorf("SetErrorHandler() error = %v, want ErrFrozen", err)
	}
	if err := n.SetMaxListeners(1); !errors.Is(err, ErrFrozen) {
		t.Errorf("SetMaxListeners() error = %v, want ErrFrozen", err)
	}

	// Subscriptions keep working on a frozen notifier
	got := 0
	n.On(Ready, func(Event) error { got++; return nil })
	n.Emit(Ready, nil)
	if got != 1 {
		t.Errorf("listener on frozen notifier called %d times, want 1", got)
	}
}
