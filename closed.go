package folio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ClosedPosition is the lifetime aggregate of a symbol that has been
// fully exited: every share bought was sold again, and the symbol is not
// currently held.
type ClosedPosition struct {
	Symbol         string
	TotalBoughtQty Quantity
	AvgBuyPrice    Money // volume-weighted
	AvgSellPrice   Money // volume-weighted
	RealizedPnL    Money           // sell proceeds minus buy cost
	RealizedPnLPct decimal.Decimal // (avgSell-avgBuy)/avgBuy * 100
	FirstTradeDate Date
	LastTradeDate  Date
}

// tradeTally accumulates one symbol's trade history during the fold.
type tradeTally struct {
	buyQty    Quantity
	buyCost   Money
	sellQty   Quantity
	proceeds  Money
	firstDate Date
	lastDate  Date
}

// ClosedPositions scans the ledger for symbols whose cumulative bought
// quantity equals the cumulative sold quantity and which have no current
// holding, and values each with volume-weighted average prices.
//
// currentHoldings is the externally reported position map: a symbol
// still held is never reported as closed, even if the ledger nets to
// zero (a corporate action may have changed the quantity outside the
// ledger).
//
// The result is sorted by last trade date descending, most recently
// closed first.
func ClosedPositions(l *Ledger, currentHoldings map[string]Quantity) []ClosedPosition {
	tallies := make(map[string]*tradeTally)

	for _, e := range l.events {
		if !e.Type.IsTrade() {
			continue
		}
		t, ok := tallies[e.Symbol]
		if !ok {
			t = &tradeTally{firstDate: e.Date, lastDate: e.Date}
			tallies[e.Symbol] = t
		}
		switch e.Type {
		case Buy:
			t.buyQty = t.buyQty.Add(e.Quantity)
			t.buyCost = t.buyCost.Add(e.Amount())
		case Sell:
			t.sellQty = t.sellQty.Add(e.Quantity)
			t.proceeds = t.proceeds.Add(e.Amount())
		}
		if e.Date.Before(t.firstDate) {
			t.firstDate = e.Date
		}
		if e.Date.After(t.lastDate) {
			t.lastDate = e.Date
		}
	}

	var closed []ClosedPosition
	for symbol, t := range tallies {
		if !t.buyQty.Equal(t.sellQty) {
			continue
		}
		if held, ok := currentHoldings[symbol]; ok && !held.IsZero() {
			continue
		}

		var avgBuy, avgSell Money
		if !t.buyQty.IsZero() {
			avgBuy = t.buyCost.Div(t.buyQty)
		}
		if !t.sellQty.IsZero() {
			avgSell = t.proceeds.Div(t.sellQty)
		}
		var pct decimal.Decimal
		if !avgBuy.IsZero() {
			pct = avgSell.Sub(avgBuy).Ratio(avgBuy).Mul(decimal.NewFromInt(100))
		}

		closed = append(closed, ClosedPosition{
			Symbol:         symbol,
			TotalBoughtQty: t.buyQty,
			AvgBuyPrice:    avgBuy,
			AvgSellPrice:   avgSell,
			RealizedPnL:    t.proceeds.Sub(t.buyCost),
			RealizedPnLPct: pct,
			FirstTradeDate: t.firstDate,
			LastTradeDate:  t.lastDate,
		})
	}

	sort.Slice(closed, func(i, j int) bool {
		if closed[i].LastTradeDate != closed[j].LastTradeDate {
			return closed[i].LastTradeDate.After(closed[j].LastTradeDate)
		}
		return closed[i].Symbol < closed[j].Symbol
	})
	return closed
}
