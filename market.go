package folio

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Candle is one day of OHLC market history for a symbol.
type Candle struct {
	Date  Date            `json:"date"`
	Open  decimal.Decimal `json:"open"`
	High  decimal.Decimal `json:"high"`
	Low   decimal.Decimal `json:"low"`
	Close decimal.Decimal `json:"close"`
}

// MarketData is the repository of daily candle history, indexed by
// symbol. It backs every price lookup in the core: closing prices for
// valuation, trading days for anchor resolution, and OHLC windows for
// the ATR engine. How the candles get here (APIs, files) is the data
// acquisition layer's problem.
type MarketData struct {
	currency string
	candles  map[string][]Candle // sorted by date
}

// NewMarketData creates an empty market data repository quoting prices
// in the given currency.
func NewMarketData(currency string) *MarketData {
	return &MarketData{
		currency: currency,
		candles:  make(map[string][]Candle),
	}
}

// Currency returns the currency all prices are quoted in.
func (m *MarketData) Currency() string { return m.currency }

// Add inserts a candle into a symbol's history, keeping the history
// sorted. A candle on an existing date replaces the old one.
func (m *MarketData) Add(symbol string, c Candle) {
	history := m.candles[symbol]
	i, found := slices.BinarySearchFunc(history, c, func(a, b Candle) int {
		return a.Date.Compare(b.Date)
	})
	if found {
		history[i] = c
	} else {
		history = slices.Insert(history, i, c)
	}
	m.candles[symbol] = history
}

// Candles returns a copy of a symbol's history in chronological order.
func (m *MarketData) Candles(symbol string) []Candle {
	return slices.Clone(m.candles[symbol])
}

// Symbols returns the sorted list of symbols with any history.
func (m *MarketData) Symbols() []string {
	symbols := make([]string, 0, len(m.candles))
	for s := range m.candles {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}

// PriceAsOf returns the closing price of a symbol on the given date, or
// the most recent close before it. It returns false when the symbol has
// no candle on or before the date.
func (m *MarketData) PriceAsOf(symbol string, on Date) (Money, bool) {
	history := m.candles[symbol]
	i, found := slices.BinarySearchFunc(history, on, func(c Candle, d Date) int {
		return c.Date.Compare(d)
	})
	if found {
		return M(history[i].Close, m.currency), true
	}
	if i == 0 {
		return Money{}, false
	}
	return M(history[i-1].Close, m.currency), true
}

// TradingDays returns the calendar of all days any symbol has a candle
// for. With daily candles this is exactly the set of trading days.
func (m *MarketData) TradingDays() Calendar {
	var days []Date
	for _, history := range m.candles {
		for _, c := range history {
			days = append(days, c.Date)
		}
	}
	return NewCalendar(days)
}

var _ PriceSource = (*MarketData)(nil)
