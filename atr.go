package folio

import (
	"log"

	"github.com/shopspring/decimal"
)

// Signal classifies the current price against a position's ATR band.
type Signal int

const (
	SignalInRange Signal = iota
	SignalNearLower
	SignalNearUpper
	SignalBreachLower
	SignalBreachUpper
)

func (s Signal) String() string {
	switch s {
	case SignalNearLower:
		return "near_lower"
	case SignalNearUpper:
		return "near_upper"
	case SignalBreachLower:
		return "breach_lower"
	case SignalBreachUpper:
		return "breach_upper"
	default:
		return "in_range"
	}
}

// AtrBand is the volatility band of a held position: cost price plus or
// minus a multiple of the Average True Range, and where the current
// price sits relative to it.
type AtrBand struct {
	Symbol    string
	Price     Money
	CostPrice Money
	ATR       decimal.Decimal
	Lower     Money
	Upper     Money
	Signal    Signal
}

var half = decimal.RequireFromString("0.5")

// trueRange returns the day's True Range given the previous close:
// the largest of the high-low spread and the absolute gaps from the
// previous close.
func trueRange(c Candle, prevClose decimal.Decimal) decimal.Decimal {
	tr := c.High.Sub(c.Low)
	if gap := c.High.Sub(prevClose).Abs(); gap.GreaterThan(tr) {
		tr = gap
	}
	if gap := c.Low.Sub(prevClose).Abs(); gap.GreaterThan(tr) {
		tr = gap
	}
	return tr
}

// ATR computes the Average True Range over the last `period` candles as
// a simple average of True Ranges.
//
// When one extra preceding candle is available it acts as a seed row: it
// only supplies the previous close for the first measured day and is
// excluded from the average itself. This matters on series with opening
// gaps, where the first day's gap from the seed close dominates its
// high-low spread. Without a seed, the first day's True Range falls back
// to high minus low.
//
// It returns false when the history is shorter than the period.
func ATR(candles []Candle, period int) (decimal.Decimal, bool) {
	if period <= 0 || len(candles) < period {
		return decimal.Decimal{}, false
	}

	window := candles[len(candles)-period:]
	var prevClose decimal.Decimal
	seeded := false
	if len(candles) > period {
		prevClose = candles[len(candles)-period-1].Close
		seeded = true
	}

	var sum decimal.Decimal
	for i, c := range window {
		if i == 0 && !seeded {
			sum = sum.Add(c.High.Sub(c.Low))
		} else {
			sum = sum.Add(trueRange(c, prevClose))
		}
		prevClose = c.Close
	}
	return sum.Div(decimal.NewFromInt(int64(period))), true
}

// AtrBands computes the volatility band of every holding with enough
// candle history. Holdings with fewer candles than the configured period
// are skipped.
//
// Classification, in priority order: breach_upper above the upper band,
// near_upper within half an ATR below it, breach_lower below the lower
// band, near_lower within half an ATR above it, in_range otherwise.
func AtrBands(holdings []Holding, market *MarketData, cfg *Config) []AtrBand {
	var bands []AtrBand
	for _, h := range holdings {
		candles := market.Candles(h.Symbol)
		atr, ok := ATR(candles, cfg.AtrPeriod)
		if !ok {
			log.Printf("insufficient history for %s ATR (need %d days)", h.Symbol, cfg.AtrPeriod)
			continue
		}

		delta := cfg.AtrMultiplier.Mul(atr)
		lower := h.CostPrice.Sub(M(delta, h.CostPrice.Currency()))
		upper := h.CostPrice.Add(M(delta, h.CostPrice.Currency()))
		halfATR := M(half.Mul(atr), h.CostPrice.Currency())

		var signal Signal
		price := h.LastPrice
		switch {
		case price.GreaterThan(upper):
			signal = SignalBreachUpper
		case price.GreaterThan(upper.Sub(halfATR)):
			signal = SignalNearUpper
		case price.LessThan(lower):
			signal = SignalBreachLower
		case price.LessThan(lower.Add(halfATR)):
			signal = SignalNearLower
		default:
			signal = SignalInRange
		}

		bands = append(bands, AtrBand{
			Symbol:    h.Symbol,
			Price:     price,
			CostPrice: h.CostPrice,
			ATR:       atr,
			Lower:     lower,
			Upper:     upper,
			Signal:    signal,
		})
	}
	return bands
}
