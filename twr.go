package folio

import (
	"slices"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// TWR computes the time-weighted return of the portfolio over
// [start, end].
//
// The range is split into sub-periods at every external cash-flow date,
// so that deposits and withdrawals cannot masquerade as market
// performance. Sub-period returns compound:
//
//	TWR = prod(1 + r_i) - 1
//
// Each boundary NAV comes from replaying the ledger to the boundary date
// and valuing the state with prices at that date. When a boundary
// coincides with a flow date, the signed flow amount is backed out of
// the boundary NAV before computing the return: the replay already
// includes same-day flows, and removing them isolates the market-driven
// part.
//
// It returns false when the return is not computable: empty ledger,
// start before the first event (insufficient history), or a sub-period
// starting from zero NAV while ending on a non-zero one. A sub-period
// with zero NAV on both sides contributes no return and is skipped.
func (l *Ledger) TWR(start, end Date, prices PriceSource, initialCash Money) (decimal.Decimal, bool) {
	first, ok := l.InceptionDate()
	if !ok || start.Before(first) {
		return decimal.Decimal{}, false
	}

	flows := l.FlowsBetween(start, end)

	// Sub-period boundaries: start, every flow date, end; sorted and
	// de-duplicated.
	boundaries := []Date{start, end}
	for _, e := range flows {
		boundaries = append(boundaries, e.Date)
	}
	slices.SortFunc(boundaries, Date.Compare)
	boundaries = slices.CompactFunc(boundaries, func(a, b Date) bool { return a == b })

	// Signed flow totals per boundary date, inflows positive.
	flowOn := make(map[Date]decimal.Decimal)
	for _, e := range flows {
		amount := e.Quantity.Decimal()
		if e.Type == CashOut {
			amount = amount.Neg()
		}
		flowOn[e.Date] = flowOn[e.Date].Add(amount)
	}

	compound := one
	for i := 0; i+1 < len(boundaries); i++ {
		a, b := boundaries[i], boundaries[i+1]

		navA := NAV(l.Replay(a, initialCash), prices).TotalNAV.Decimal()
		navB := NAV(l.Replay(b, initialCash), prices).TotalNAV.Decimal()
		if adj, ok := flowOn[b]; ok {
			navB = navB.Sub(adj)
		}

		if navA.IsZero() {
			if navB.IsZero() {
				// Empty portfolio throughout, nothing to measure.
				continue
			}
			// A meaningful return cannot be derived from a zero base.
			return decimal.Decimal{}, false
		}

		r := navB.Sub(navA).Div(navA)
		compound = compound.Mul(one.Add(r))
	}

	return compound.Sub(one), true
}

// PriceReturn computes the simple price return of a single symbol over
// [start, end]: (price_end - price_start) / price_start. It returns
// false when either price is unknown or the start price is zero.
func PriceReturn(symbol string, start, end Date, prices PriceSource) (decimal.Decimal, bool) {
	startPrice, ok := prices.PriceAsOf(symbol, start)
	if !ok || startPrice.IsZero() {
		return decimal.Decimal{}, false
	}
	endPrice, ok := prices.PriceAsOf(symbol, end)
	if !ok {
		return decimal.Decimal{}, false
	}
	return endPrice.Sub(startPrice).Ratio(startPrice), true
}
