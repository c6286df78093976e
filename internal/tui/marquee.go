package tui

import (
	"strings"

	"github.com/vadiminshakov/late/internal/services/carousel"
	"github.com/vadiminshakov/late/internal/view"
)

const marqueeSeparator = "  ★  "

// marquee scrolls captions right to left, driven by the track classes.
type marquee struct {
	text   []rune
	offset int
	frame  int
}

func newMarquee(captions []string) marquee {
	if len(captions) == 0 {
		return marquee{}
	}
	return marquee{text: []rune(strings.Join(captions, marqueeSeparator) + marqueeSeparator)}
}

// advance moves one frame: fast 2 columns, normal 1, slow 1 every other
// frame, nothing while paused.
func (m marquee) advance(track view.State) marquee {
	if len(m.text) == 0 || track.HasClass(carousel.ClassPaused) {
		return m
	}

	m.frame++
	step := 1
	switch {
	case track.HasClass(carousel.ClassFast):
		step = 2
	case track.HasClass(carousel.ClassSlow):
		if m.frame%2 != 0 {
			return m
		}
	}

	m.offset = (m.offset + step) % len(m.text)
	return m
}

// window returns width runes starting at the offset, wrapping around.
func (m marquee) window(width int) string {
	if len(m.text) == 0 || width <= 0 {
		return ""
	}

	var b strings.Builder
	for i := 0; i < width; i++ {
		b.WriteRune(m.text[(m.offset+i)%len(m.text)])
	}
	return b.String()
}
