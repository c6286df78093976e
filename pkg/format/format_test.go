package format

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero", input: 0, expected: "$0"},
		{name: "NaN", input: math.NaN(), expected: "$0"},
		{name: "infinity", input: math.Inf(1), expected: "$0"},
		{name: "small", input: 42, expected: "$42.00"},
		{name: "fraction", input: 0.5, expected: "$0.50"},
		{name: "just below thousand", input: 999.99, expected: "$999.99"},
		{name: "thousand", input: 1000, expected: "$1.00K"},
		{name: "thousands", input: 1500, expected: "$1.50K"},
		{name: "millions", input: 2_500_000, expected: "$2.50M"},
		{name: "billions", input: 3_100_000_000, expected: "$3.10B"},
		{name: "rounding", input: 1_234_567, expected: "$1.23M"},
		{name: "round half up", input: 1_235_000, expected: "$1.24M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Currency(tt.input))
		})
	}
}

func TestCurrency_AlwaysDollarPrefixed(t *testing.T) {
	for v := 0.0; v < 1e12; v = v*3 + 7 {
		assert.True(t, strings.HasPrefix(Currency(v), "$"), "value %f", v)
	}
}

func TestInteger(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{input: 0, expected: "0"},
		{input: 42, expected: "42"},
		{input: 999, expected: "999"},
		{input: 1000, expected: "1,000"},
		{input: 1_000_000, expected: "1,000,000"},
		{input: 1_000_000_000, expected: "1,000,000,000"},
		{input: -1234, expected: "-1,234"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, Integer(tt.input))
		})
	}
}

func TestPrice(t *testing.T) {
	assert.Equal(t, "$0.00001234", Price(0.00001234))
	assert.Equal(t, "$1.00000000", Price(1))
	assert.Equal(t, "$0", Price(math.NaN()))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "5.20%", Percent(-5.2))
	assert.Equal(t, "12.35%", Percent(12.345))
	assert.Equal(t, "0.00%", Percent(0))
}
