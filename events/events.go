package events

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Ready is emitted once the bootstrap has finished.
const Ready = "app:ready"

// DefaultMaxListeners is the per-event listener count above which the
// leak handler is called.
const DefaultMaxListeners = 10

// ErrFrozen is returned when configuring a frozen Notifier.
var ErrFrozen = errors.New("events: notifier is frozen")

// Event is the envelope delivered to listeners.
type Event struct {
	ID         string
	Name       string
	OccurredAt time.Time
	Payload    any
}

// Listener handles one event.
type Listener func(Event) error

// ErrorHandler receives listener failures, including recovered panics.
type ErrorHandler func(ev Event, err error)

// LeakHandler is called when an event has more listeners than allowed.
type LeakHandler func(event string, count int)

type subscription struct {
	fn   Listener
	once bool
}

// Notifier is a named-event dispatcher. It is safe for concurrent use.
type Notifier struct {
	mu           sync.RWMutex
	listeners    map[string][]*subscription
	onError      ErrorHandler
	onLeak       LeakHandler
	maxListeners int
	frozen       bool
	now          func() time.Time
}

// Option configures a Notifier at construction.
type Option func(*Notifier)

// WithErrorHandler sets the handler for listener failures.
func WithErrorHandler(fn ErrorHandler) Option {
	return func(n *Notifier) { n.onError = fn }
}

// WithMaxListeners sets the leak threshold. Zero disables the check.
func WithMaxListeners(limit int) Option {
	return func(n *Notifier) { n.maxListeners = limit }
}

// WithLeakHandler sets the function called when the threshold is exceeded.
func WithLeakHandler(fn LeakHandler) Option {
	return func(n *Notifier) { n.onLeak = fn }
}

// WithClock sets the time source for Event.OccurredAt.
func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

// New creates a Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		listeners:    make(map[string][]*subscription),
		maxListeners: DefaultMaxListeners,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// On subscribes fn to event and returns a function that removes it.
func (n *Notifier) On(event string, fn Listener) (unsubscribe func()) {
	return n.subscribe(event, fn, false)
}

// Once subscribes fn for a single delivery of event.
func (n *Notifier) Once(event string, fn Listener) (unsubscribe func()) {
	return n.subscribe(event, fn, true)
}

func (n *Notifier) subscribe(event string, fn Listener, once bool) func() {
	sub := &subscription{fn: fn, once: once}

	n.mu.Lock()
	n.listeners[event] = append(n.listeners[event], sub)
	count := len(n.listeners[event])
	limit, onLeak := n.maxListeners, n.onLeak
	n.mu.Unlock()

	// Warn exactly when the limit is first crossed
	if limit > 0 && count == limit+1 && onLeak != nil {
		onLeak(event, count)
	}

	return func() { n.remove(event, sub) }
}

func (n *Notifier) remove(event string, sub *subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()

	subs := n.listeners[event]
	for i, s := range subs {
		if s == sub {
			n.listeners[event] = append(subs[:i:i], subs[i+1:]...)
			break
		}
	}
	if len(n.listeners[event]) == 0 {
		delete(n.listeners, event)
	}
}

// Emit delivers payload to every listener of event, in subscription order,
// and returns the number of listeners called.
func (n *Notifier) Emit(event string, payload any) int {
	n.mu.Lock()
	subs := n.listeners[event]
	if len(subs) == 0 {
		n.mu.Unlock()
		return 0
	}
	// Snapshot, dropping one-shot listeners before they run
	called := make([]*subscription, len(subs))
	copy(called, subs)
	kept := subs[:0:0]
	for _, s := range subs {
		if !s.once {
			kept = append(kept, s)
		}
	}
	if len(kept) == 0 {
		delete(n.listeners, event)
	} else {
		n.listeners[event] = kept
	}
	onError := n.onError
	n.mu.Unlock()

	ev := Event{
		ID:         uuid.NewString(),
		Name:       event,
		OccurredAt: n.now(),
		Payload:    payload,
	}
	for _, s := range called {
		if err := call(s.fn, ev); err != nil && onError != nil {
			onError(ev, err)
		}
	}
	return len(called)
}

func call(fn Listener, ev Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("events: listener for %q panicked: %v", ev.Name, r)
		}
	}()
	return fn(ev)
}

// ListenerCount returns the number of listeners subscribed to event.
func (n *Notifier) ListenerCount(event string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners[event])
}

// SetErrorHandler replaces the error handler.
func (n *Notifier) SetErrorHandler(fn ErrorHandler) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.frozen {
		return ErrFrozen
	}
	n.onError = fn
	return nil
}

// SetMaxListeners replaces the leak threshold.
func (n *Notifier) SetMaxListeners(limit int) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.frozen {
		return ErrFrozen
	}
	n.maxListeners = limit
	return nil
}

// Freeze locks the notifier's configuration.
func (n *Notifier) Freeze() *Notifier {
	n.mu.Lock()
	n.frozen = true
	n.mu.Unlock()
	return n
}

// Frozen reports whether Freeze has been called.
func (n *Notifier) Frozen() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.frozen
}
