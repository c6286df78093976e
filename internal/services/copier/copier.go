// Package copier copies the contract address and shows feedback on the
// copy button.
package copier

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vadiminshakov/late/internal/view"
)

const (
	// DefaultFeedbackTTL how long the success or failure label stays.
	DefaultFeedbackTTL = 2 * time.Second

	LabelCopied = "✅ Copied!"
	LabelFailed = "❌ Failed"
)

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

type buttonState struct {
	text string
	tone view.Tone
}

// Copier copies a fixed text, trying the primary writer first.
//
// There is a single pending revert per button: a click while feedback is
// visible restarts the window and keeps the label captured before the first
// click.
type Copier struct {
	binding  view.Binding
	text     string
	primary  Writer
	fallback Writer
	ttl      time.Duration
	logger   *zap.Logger

	mu     sync.Mutex
	timer  *time.Timer
	token  uuid.UUID
	saved  buttonState
	closed bool
}

// New creates a copier. Either writer may be nil.
func New(binding view.Binding, text string, primary, fallback Writer, ttl time.Duration, logger *zap.Logger) *Copier {
	if ttl <= 0 {
		ttl = DefaultFeedbackTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Copier{
		binding:  binding,
		text:     text,
		primary:  primary,
		fallback: fallback,
		ttl:      ttl,
		logger:   logger,
	}
}

// Copy writes the text and updates the button. Reports success.
func (c *Copier) Copy(ctx context.Context) bool {
	ok := c.write(ctx)
	c.feedback(ok)
	return ok
}

func (c *Copier) write(ctx context.Context) bool {
	if c.primary != nil {
		err := c.primary.WriteText(ctx, c.text)
		if err == nil {
			return true
		}
		c.logger.Warn("clipboard error, using fallback", zap.Error(err))
	}

	if c.fallback == nil {
		return false
	}
	if err := c.fallback.WriteText(ctx, c.text); err != nil {
		c.logger.Error("fallback copy failed", zap.Error(err))
		return false
	}
	return true
}

func (c *Copier) feedback(ok bool) {
	button, found := c.binding.Element(view.CopyButton)
	if !found {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	if c.timer != nil {
		c.timer.Stop()
	} else {
		c.saved = buttonState{text: button.Text(), tone: button.Tone()}
	}

	if ok {
		button.SetText(LabelCopied)
		button.SetTone(view.ToneSuccess)
	} else {
		button.SetText(LabelFailed)
		button.SetTone(view.ToneFailure)
	}

	token := uuid.New()
	c.token = token
	c.timer = time.AfterFunc(c.ttl, func() {
		c.revert(token, button)
	})
}

func (c *Copier) revert(token uuid.UUID, button view.Element) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != token {
		return
	}
	button.SetText(c.saved.text)
	button.SetTone(c.saved.tone)
	c.timer = nil
}

// Close stops the pending revert.
func (c *Copier) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
