package domain

import (
	"math"
	"math/rand"
)

// MarketSnapshot market statistics shown on the page at one point in time.
// Fields that the source did not provide hold NaN, see Missing.
type MarketSnapshot struct {
	// MarketCapUSD fully diluted market capitalisation in USD.
	MarketCapUSD float64
	// Volume24hUSD traded volume over the last 24 hours in USD.
	Volume24hUSD float64
	// PriceUSD token price in USD.
	PriceUSD float64
	// PriceChange24hPct price change over the last 24 hours, in percent.
	PriceChange24hPct float64
	// LiquidityUSD pool liquidity in USD.
	LiquidityUSD float64
	// Demo is set when the snapshot was synthesized instead of fetched.
	Demo bool
}

// Missing reports whether v is the not-a-number sentinel.
func Missing(v float64) bool {
	return math.IsNaN(v)
}

// EmptySnapshot returns a snapshot with every field missing.
func EmptySnapshot() MarketSnapshot {
	nan := math.NaN()
	return MarketSnapshot{
		MarketCapUSD:      nan,
		Volume24hUSD:      nan,
		PriceUSD:          nan,
		PriceChange24hPct: nan,
		LiquidityUSD:      nan,
	}
}

// Range half-open interval [Min, Max).
type Range struct {
	Min float64
	Max float64
}

// Contains checks if v lies in the range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

func (r Range) draw(rng *rand.Rand) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// DemoRanges bounds of the synthesized fallback values.
var DemoRanges = struct {
	MarketCap Range
	Volume    Range
	Price     Range
	Liquidity Range
}{
	MarketCap: Range{Min: 500_000, Max: 2_000_000},
	Volume:    Range{Min: 100_000, Max: 500_000},
	Price:     Range{Min: 0.00001, Max: 0.0001},
	Liquidity: Range{Min: 50_000, Max: 200_000},
}

// NewDemoSnapshot draws a fallback snapshot uniformly from DemoRanges.
// Price change is left missing.
func NewDemoSnapshot(rng *rand.Rand) MarketSnapshot {
	return MarketSnapshot{
		MarketCapUSD:      DemoRanges.MarketCap.draw(rng),
		Volume24hUSD:      DemoRanges.Volume.draw(rng),
		PriceUSD:          DemoRanges.Price.draw(rng),
		PriceChange24hPct: math.NaN(),
		LiquidityUSD:      DemoRanges.Liquidity.draw(rng),
		Demo:              true,
	}
}
