package folio

// PortfolioState is the reconstructed portfolio at the end of a given
// date: share positions plus cash. It is produced fresh by every Replay
// call and never mutated afterwards; it is a pure function of
// (event sequence, target date, initial cash offset).
type PortfolioState struct {
	Date      Date
	Positions map[string]Quantity // symbol -> signed share quantity, no zero entries
	Cash      Money
}

// Position returns the quantity held of a symbol, zero if none.
func (s PortfolioState) Position(symbol string) Quantity {
	return s.Positions[symbol]
}

// Replay folds the event timeline forward and returns the portfolio
// state at the end of the target date.
//
// The scan is a prefix scan: it applies events in sequence order and
// halts at the first event dated after the target. The ledger's sort
// invariant is therefore a precondition, which the Ledger itself always
// maintains.
//
// initialCash is an explicit reconciliation offset added to the running
// cash balance before any event is applied. It exists because the event
// source may omit historical deposits; callers reconcile once by passing
// reported cash minus replayed cash at a known-good date. It is a
// workaround for incomplete history, not an accounting principle, which
// is why it is a named parameter and not a default.
func (l *Ledger) Replay(on Date, initialCash Money) PortfolioState {
	positions := make(map[string]Quantity)
	cash := initialCash

	for _, e := range l.events {
		if e.Date.After(on) {
			break
		}
		switch e.Type {
		case Buy:
			positions[e.Symbol] = positions[e.Symbol].Add(e.Quantity)
			cash = cash.Sub(e.Amount())
		case Sell:
			q := positions[e.Symbol].Sub(e.Quantity)
			if q.IsZero() {
				delete(positions, e.Symbol)
			} else {
				positions[e.Symbol] = q
			}
			cash = cash.Add(e.Amount())
		case CashIn, Dividend:
			cash = cash.Add(M(e.Quantity.Decimal(), e.Price.Currency()))
		case CashOut:
			cash = cash.Sub(M(e.Quantity.Decimal(), e.Price.Currency()))
		}
	}

	return PortfolioState{Date: on, Positions: positions, Cash: cash}
}
