// Package domain defines core data structures shared by the dashboard components.
package domain

// Speed scroll speed of the carousel track.
type Speed string

const (
	// SpeedSlow slow scrolling.
	SpeedSlow Speed = "slow"
	// SpeedNormal default scrolling.
	SpeedNormal Speed = "normal"
	// SpeedFast fast scrolling.
	SpeedFast Speed = "fast"
)

// String returns the string representation.
func (s Speed) String() string {
	return string(s)
}

// CarouselState user-controlled state of the carousel.
// Paused and Speed are independent axes.
type CarouselState struct {
	// Paused explicit pause set by the pause/play controls.
	Paused bool
	// Speed current scroll speed.
	Speed Speed
	// Hovered pointer is over the carousel; a transient overlay on Paused.
	Hovered bool
}

// VisuallyPaused reports whether the track is stopped on screen.
func (s CarouselState) VisuallyPaused() bool {
	return s.Paused || s.Hovered
}
