// Package notify shows short-lived toast messages.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vadiminshakov/late/internal/view"
)

// DefaultTTL how long a message stays visible.
const DefaultTTL = 2 * time.Second

// Notifier keeps at most one message visible in the notification element.
// A newer message replaces the current one and restarts the dismiss timer.
type Notifier struct {
	binding view.Binding
	ttl     time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	token  uuid.UUID
	closed bool
}

// New creates a notifier writing into view.Notification.
func New(binding view.Binding, ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Notifier{binding: binding, ttl: ttl}
}

// Show displays msg and schedules its dismissal.
func (n *Notifier) Show(msg string) {
	el, ok := n.binding.Element(view.Notification)
	if !ok {
		return
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	if n.timer != nil {
		n.timer.Stop()
	}

	// the token guards against a timer that fired before Stop
	token := uuid.New()
	n.token = token
	el.SetText(msg)
	n.timer = time.AfterFunc(n.ttl, func() {
		n.dismiss(token, el)
	})
}

func (n *Notifier) dismiss(token uuid.UUID, el view.Element) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.token != token {
		return
	}
	el.SetText("")
	n.timer = nil
}

// Close stops the pending dismissal. Further Show calls are ignored.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.closed = true
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
