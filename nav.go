package folio

import (
	"log"
	"sort"
)

// PriceSource supplies closing prices at a given date. Implementations
// are caller-provided, already-resolved lookups (a cache or a quote map);
// the core never fetches prices itself.
type PriceSource interface {
	// PriceAsOf returns the price of symbol on or before the given
	// date, or false when no price is known.
	PriceAsOf(symbol string, on Date) (Money, bool)
}

// NavSnapshot is a point-in-time valuation of a portfolio state.
type NavSnapshot struct {
	Date       Date
	TotalNAV   Money
	StockValue Money
	CashValue  Money
}

// NAV values a portfolio state against a price source.
//
// A held symbol with no known price contributes zero to the stock value
// and logs a warning: the result is a best-effort valuation, not a fatal
// error.
func NAV(state PortfolioState, prices PriceSource) NavSnapshot {
	symbols := make([]string, 0, len(state.Positions))
	for s := range state.Positions {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var stockValue Money
	for _, symbol := range symbols {
		qty := state.Positions[symbol]
		price, ok := prices.PriceAsOf(symbol, state.Date)
		if !ok {
			if qty.IsPositive() {
				log.Printf("warning: no price for %s on %s, using 0", symbol, state.Date)
			}
			continue
		}
		stockValue = stockValue.Add(price.Mul(qty))
	}

	return NavSnapshot{
		Date:       state.Date,
		TotalNAV:   stockValue.Add(state.Cash),
		StockValue: stockValue,
		CashValue:  state.Cash,
	}
}
