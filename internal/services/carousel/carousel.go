// Package carousel controls the scrolling meme track.
package carousel

import (
	"sync"

	"github.com/vadiminshakov/late/internal/domain"
	"github.com/vadiminshakov/late/internal/view"
)

// track classes read by the front end
const (
	ClassPaused = "paused"
	ClassFast   = "fast"
	ClassSlow   = "slow"
)

type notifier interface {
	Show(msg string)
}

// Controller keeps the explicit pause flag, the speed and the hover overlay
// in sync with the track classes.
type Controller struct {
	binding  view.Binding
	notifier notifier

	mu    sync.Mutex
	state domain.CarouselState
}

// NewController creates a controller in the playing, normal speed state.
func NewController(binding view.Binding, n notifier) *Controller {
	return &Controller{
		binding:  binding,
		notifier: n,
		state:    domain.CarouselState{Speed: domain.SpeedNormal},
	}
}

// State returns a copy of the current state.
func (c *Controller) State() domain.CarouselState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pause stops the track until Play.
func (c *Controller) Pause() {
	c.apply("Carousel paused ⏸️", func(s *domain.CarouselState) {
		s.Paused = true
	})
}

// Play clears the explicit pause. The track stays stopped while hovered.
func (c *Controller) Play() {
	c.apply("Carousel playing ▶️", func(s *domain.CarouselState) {
		s.Paused = false
	})
}

// Fast switches to fast scrolling.
func (c *Controller) Fast() {
	c.apply("Speed: Fast ⚡", func(s *domain.CarouselState) {
		s.Speed = domain.SpeedFast
	})
}

// Slow switches to slow scrolling.
func (c *Controller) Slow() {
	c.apply("Speed: Slow 🐢", func(s *domain.CarouselState) {
		s.Speed = domain.SpeedSlow
	})
}

// Normal restores the default speed.
func (c *Controller) Normal() {
	c.apply("Speed: Normal", func(s *domain.CarouselState) {
		s.Speed = domain.SpeedNormal
	})
}

// HoverEnter pauses the track visually without touching the explicit flag.
func (c *Controller) HoverEnter() {
	c.apply("", func(s *domain.CarouselState) {
		s.Hovered = true
	})
}

// HoverLeave drops the hover overlay.
func (c *Controller) HoverLeave() {
	c.apply("", func(s *domain.CarouselState) {
		s.Hovered = false
	})
}

// Sync writes the current state to a freshly mounted track.
func (c *Controller) Sync() {
	c.apply("", func(*domain.CarouselState) {})
}

func (c *Controller) apply(msg string, mutate func(s *domain.CarouselState)) {
	track, ok := c.binding.Element(view.Track)
	if !ok {
		return
	}

	c.mu.Lock()
	mutate(&c.state)
	st := c.state
	if st.VisuallyPaused() {
		track.AddClass(ClassPaused)
	} else {
		track.RemoveClass(ClassPaused)
	}

	switch st.Speed {
	case domain.SpeedFast:
		track.RemoveClass(ClassSlow)
		track.AddClass(ClassFast)
	case domain.SpeedSlow:
		track.RemoveClass(ClassFast)
		track.AddClass(ClassSlow)
	default:
		track.RemoveClass(ClassFast, ClassSlow)
	}
	c.mu.Unlock()

	if msg != "" && c.notifier != nil {
		c.notifier.Show(msg)
	}
}
