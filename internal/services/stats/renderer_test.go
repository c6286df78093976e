package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vadiminshakov/late/internal/domain"
	"github.com/vadiminshakov/late/internal/view"
)

func state(t *testing.T, p *view.Page, id view.ID) view.State {
	t.Helper()
	st, ok := p.State(id)
	require.True(t, ok, "element %s", id)
	return st
}

func TestRenderer_Render(t *testing.T) {
	page := view.NewPage(view.DefaultIDs...)
	r := NewRenderer(page)

	r.Render(domain.MarketSnapshot{
		MarketCapUSD:      3_100_000_000,
		Volume24hUSD:      2_500_000,
		PriceUSD:          0.00004321,
		PriceChange24hPct: 12.345,
		LiquidityUSD:      1500,
	})

	assert.Equal(t, "$3.10B", state(t, page, view.MarketCap).Text)
	assert.Equal(t, "$2.50M", state(t, page, view.Volume).Text)
	assert.Equal(t, "$1.50K", state(t, page, view.Liquidity).Text)

	price := state(t, page, view.Price)
	assert.Equal(t, "$0.00004321 ↗ 12.35%", price.Text)
	assert.Equal(t, view.ToneUp, price.Tone)
	assert.Equal(t, []string{ClassUp, ClassValue}, price.Classes)
}

func TestRenderer_NegativeChange(t *testing.T) {
	page := view.NewPage(view.Price)
	r := NewRenderer(page)

	r.Render(domain.MarketSnapshot{PriceUSD: 0.00001, PriceChange24hPct: -5.2})

	price := state(t, page, view.Price)
	assert.Equal(t, "$0.00001000 ↘ 5.20%", price.Text)
	assert.Equal(t, view.ToneDown, price.Tone)
	assert.True(t, price.HasClass(ClassDown))
	assert.False(t, price.HasClass(ClassUp))
}

func TestRenderer_ZeroChangeIsUp(t *testing.T) {
	page := view.NewPage(view.Price)
	r := NewRenderer(page)

	r.Render(domain.MarketSnapshot{PriceUSD: 0.00001, PriceChange24hPct: 0})

	price := state(t, page, view.Price)
	assert.Equal(t, "$0.00001000 ↗ 0.00%", price.Text)
	assert.Equal(t, view.ToneUp, price.Tone)
}

func TestRenderer_MissingValuesAreSkipped(t *testing.T) {
	page := view.NewPage(view.DefaultIDs...)
	r := NewRenderer(page)

	r.Render(domain.MarketSnapshot{
		MarketCapUSD:      1000,
		Volume24hUSD:      1000,
		PriceUSD:          0.00002,
		PriceChange24hPct: 1,
		LiquidityUSD:      1000,
	})
	r.Render(domain.EmptySnapshot())

	assert.Equal(t, "$1.00K", state(t, page, view.MarketCap).Text)
	assert.Equal(t, "$1.00K", state(t, page, view.Volume).Text)
	assert.Equal(t, "$0.00002000 ↗ 1.00%", state(t, page, view.Price).Text)
	assert.Equal(t, "$1.00K", state(t, page, view.Liquidity).Text)
}

func TestRenderer_MissingChange(t *testing.T) {
	page := view.NewPage(view.Price)
	r := NewRenderer(page)

	r.Render(domain.MarketSnapshot{PriceUSD: 0.00003, PriceChange24hPct: math.NaN()})

	price := state(t, page, view.Price)
	assert.Equal(t, "$0.00003000", price.Text)
	assert.Equal(t, view.ToneNeutral, price.Tone)
	assert.Equal(t, []string{ClassValue}, price.Classes)
}

func TestRenderer_MissingElements(t *testing.T) {
	r := NewRenderer(view.NewPage())

	assert.NotPanics(t, func() {
		r.Render(domain.MarketSnapshot{MarketCapUSD: 1, PriceUSD: 1})
		r.MarkUpdated(time.Now())
		r.MarkDemo()
		r.SetLoading(true)
	})
}

func TestRenderer_Status(t *testing.T) {
	page := view.NewPage(view.LastUpdate, view.Body)
	r := NewRenderer(page)

	r.MarkUpdated(time.Date(2024, 5, 1, 9, 7, 0, 0, time.Local))
	assert.Equal(t, "🔄 Updated: 09:07", state(t, page, view.LastUpdate).Text)

	r.MarkDemo()
	st := state(t, page, view.LastUpdate)
	assert.Equal(t, DemoLabel, st.Text)
	assert.Equal(t, view.ToneWarning, st.Tone)

	r.SetLoading(true)
	assert.True(t, state(t, page, view.Body).HasClass(ClassLoading))
	r.SetLoading(false)
	assert.False(t, state(t, page, view.Body).HasClass(ClassLoading))
}
