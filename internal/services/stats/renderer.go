package stats

import (
	"time"

	"github.com/vadiminshakov/late/internal/domain"
	"github.com/vadiminshakov/late/internal/view"
	"github.com/vadiminshakov/late/pkg/format"
)

const (
	ClassValue   = "value"
	ClassUp      = "up"
	ClassDown    = "down"
	ClassLoading = "loading"

	glyphUp   = "↗"
	glyphDown = "↘"

	// DemoLabel status text shown while the page displays synthesized data.
	DemoLabel = "⚠️ Using demo data"
)

// Renderer projects snapshots onto page elements. Missing elements and
// missing values are skipped.
type Renderer struct {
	binding view.Binding
}

// NewRenderer creates a renderer over binding.
func NewRenderer(binding view.Binding) *Renderer {
	return &Renderer{binding: binding}
}

// Render writes the four statistics.
func (r *Renderer) Render(s domain.MarketSnapshot) {
	r.currency(view.MarketCap, s.MarketCapUSD)
	r.currency(view.Volume, s.Volume24hUSD)
	r.price(s.PriceUSD, s.PriceChange24hPct)
	r.currency(view.Liquidity, s.LiquidityUSD)
}

// MarkUpdated writes the refresh time to the status element.
func (r *Renderer) MarkUpdated(t time.Time) {
	if el, ok := r.binding.Element(view.LastUpdate); ok {
		el.SetText("🔄 Updated: " + t.Format("15:04"))
		el.SetTone(view.ToneNeutral)
	}
}

// MarkDemo flags the page as showing demo data.
func (r *Renderer) MarkDemo() {
	if el, ok := r.binding.Element(view.LastUpdate); ok {
		el.SetText(DemoLabel)
		el.SetTone(view.ToneWarning)
	}
}

// SetLoading toggles the loading class on the page body.
func (r *Renderer) SetLoading(loading bool) {
	el, ok := r.binding.Element(view.Body)
	if !ok {
		return
	}
	if loading {
		el.AddClass(ClassLoading)
	} else {
		el.RemoveClass(ClassLoading)
	}
}

func (r *Renderer) currency(id view.ID, v float64) {
	el, ok := r.binding.Element(id)
	if !ok || domain.Missing(v) {
		return
	}
	el.SetText(format.Currency(v))
}

func (r *Renderer) price(price, change float64) {
	el, ok := r.binding.Element(view.Price)
	if !ok || domain.Missing(price) {
		return
	}

	text := format.Price(price)
	el.RemoveClass(ClassUp, ClassDown)
	el.AddClass(ClassValue)

	switch {
	case domain.Missing(change):
		el.SetTone(view.ToneNeutral)
	case change >= 0:
		text += " " + glyphUp + " " + format.Percent(change)
		el.AddClass(ClassUp)
		el.SetTone(view.ToneUp)
	default:
		text += " " + glyphDown + " " + format.Percent(change)
		el.AddClass(ClassDown)
		el.SetTone(view.ToneDown)
	}

	el.SetText(text)
}
