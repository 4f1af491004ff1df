// Package notify implements the transient notification shown after a
// resource operation: Idle → Showing(message, kind, expiry) → Idle.
package notify

import (
	"sync"
	"time"
)

// DefaultDuration is how long a notification stays visible.
const DefaultDuration = 3 * time.Second

// Kind classifies a notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
)

// Notification is the currently visible message. The zero value means Idle.
type Notification struct {
	Message string
	Kind    Kind
	Expires time.Time
}

// Active reports whether n is a visible notification rather than Idle.
func (n Notification) Active() bool { return n.Message != "" }

// Notifier holds at most one visible notification. A new Show supersedes the
// current one and cancels its pending expiry. Safe for concurrent use.
type Notifier struct {
	mu       sync.Mutex
	current  Notification
	timer    *time.Timer
	seq      uint64
	duration time.Duration
	now      func() time.Time
	onChange func(Notification)
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithDuration overrides DefaultDuration.
func WithDuration(d time.Duration) Option {
	return func(n *Notifier) { n.duration = d }
}

// WithOnChange registers a callback receiving every transition, including the
// return to Idle. It is called without the Notifier's lock held.
func WithOnChange(fn func(Notification)) Option {
	return func(n *Notifier) { n.onChange = fn }
}

// New constructs an idle Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{duration: DefaultDuration, now: time.Now}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Show displays message with the given kind until the duration elapses or
// another Show replaces it.
func (n *Notifier) Show(message string, kind Kind) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = Notification{Message: message, Kind: kind, Expires: n.now().Add(n.duration)}
	n.timer = time.AfterFunc(n.duration, func() { n.expire(seq) })
	current := n.current
	n.mu.Unlock()

	n.emit(current)
}

func (n *Notifier) Success(message string) { n.Show(message, Success) }
func (n *Notifier) Error(message string)   { n.Show(message, Error) }
func (n *Notifier) Info(message string)    { n.Show(message, Info) }

// Dismiss returns to Idle immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	if !n.current.Active() {
		n.mu.Unlock()
		return
	}
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.seq++
	n.current = Notification{}
	n.mu.Unlock()

	n.emit(Notification{})
}

// Current returns the visible notification, or the zero value when Idle.
func (n *Notifier) Current() Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// expire clears the notification shown by Show call seq. A timer that fired
// after being superseded finds a newer seq and does nothing.
func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	if seq != n.seq {
		n.mu.Unlock()
		return
	}
	n.current = Notification{}
	n.timer = nil
	n.mu.Unlock()

	n.emit(Notification{})
}

func (n *Notifier) emit(cur Notification) {
	if n.onChange != nil {
		n.onChange(cur)
	}
}
