// Package notify holds the per-screen toast slot: one message at a time,
// auto-cleared after a fixed duration, replaced outright when a new one
// arrives before the old expires.
package notify

import (
	"sync"
	"time"
)

const DefaultDuration = 3000 * time.Millisecond

type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
)

type Notice struct {
	Kind    Kind
	Message string
}

// Notifier is a depth-1 slot, not a queue. Pushing while a notice is
// visible replaces it and restarts the expiry clock.
type Notifier struct {
	mu       sync.Mutex
	duration time.Duration

	current *Notice
	seq     uint64 // invalidates timers of replaced notices
	timer   *time.Timer
}

func New(duration time.Duration) *Notifier {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Notifier{duration: duration}
}

func (n *Notifier) Success(msg string) { n.push(Success, msg) }
func (n *Notifier) Error(msg string)   { n.push(Error, msg) }

func (n *Notifier) push(kind Kind, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	n.seq++
	seq := n.seq
	n.current = &Notice{Kind: kind, Message: msg}
	n.timer = time.AfterFunc(n.duration, func() {
		n.expire(seq)
	})
}

func (n *Notifier) expire(seq uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	// A newer notice owns the slot now; leave it alone.
	if seq != n.seq {
		return
	}
	n.current = nil
	n.timer = nil
}

// Current returns the visible notice, if any.
func (n *Notifier) Current() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notice{}, false
	}
	return *n.current, true
}

// Clear dismisses the visible notice before its timer fires.
func (n *Notifier) Clear() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.seq++
	n.current = nil
}
