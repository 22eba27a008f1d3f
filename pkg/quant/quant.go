// Package quant holds the numeric boundary conversions between the venue
// wire units and natural trading units.
package quant

import (
	"math"

	"github.com/shopspring/decimal"
)

// LotSize is the contract multiplier: the venue quotes quantities in lots
// of 10,000,000 face value.
const LotSize = 10_000_000

// ScaleVolume converts a natural-unit volume to the venue's lot quantity.
// Only used at the outbound boundary.
func ScaleVolume(v float64) float64 {
	return v * LotSize
}

// DescaleVolume converts a venue lot quantity to natural units.
func DescaleVolume(v float64) float64 {
	return v / LotSize
}

// IsIntegralLots reports whether a scaled volume is a whole lot count.
// Maker fills reject fractional lots.
func IsIntegralLots(v float64) bool {
	return v == math.Trunc(v)
}

// Midpoint returns the arithmetic mid of the best bid/ask.
func Midpoint(bid, ask float64) float64 {
	return (bid + ask) / 2
}

// RoundToTick rounds a price to the instrument's tick granularity.
// Decimal arithmetic avoids the float64 artifacts that show up when the
// tick is not a power of two (0.0001 isn't).
func RoundToTick(price, tick float64) float64 {
	if tick <= 0 {
		return price
	}
	p := decimal.NewFromFloat(price)
	t := decimal.NewFromFloat(tick)
	f, _ := p.Div(t).Round(0).Mul(t).Float64()
	return f
}
