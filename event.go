package folio

import "fmt"

// EventType identifies the kind of a ledger event. It is a closed
// enumeration: the declaration order defines the total sort precedence
// used to break ties between events on the same date (cash movements
// settle before trades), so an unknown type is a compile error rather
// than a silent "sort last".
type EventType int

const (
	CashIn EventType = iota
	CashOut
	Dividend
	Buy
	Sell
)

func (t EventType) String() string {
	switch t {
	case CashIn:
		return "cash_in"
	case CashOut:
		return "cash_out"
	case Dividend:
		return "dividend"
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	default:
		return "unknown"
	}
}

// ParseEventType parses a string into an EventType.
func ParseEventType(s string) (EventType, error) {
	switch s {
	case "cash_in":
		return CashIn, nil
	case "cash_out":
		return CashOut, nil
	case "dividend":
		return Dividend, nil
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown event type: %q", s)
	}
}

// IsTrade reports whether the event type moves shares.
func (t EventType) IsTrade() bool { return t == Buy || t == Sell }

// IsExternalFlow reports whether the event type moves cash across the
// portfolio boundary. Dividends are portfolio-internal income, not flows.
func (t EventType) IsExternalFlow() bool { return t == CashIn || t == CashOut }

// LedgerEvent is a single, immutable fact in the portfolio's history.
// All portfolio states are derived by folding over sequences of these.
type LedgerEvent struct {
	Date     Date
	Type     EventType
	Symbol   string   // set only for buy/sell
	Quantity Quantity // shares for trades, absolute cash amount for cash events
	Price    Money    // execution price for trades, zero otherwise
	OrderID  string   // set for trades, used for dedup upstream
}

// Amount returns the cash amount a trade moved (quantity times price).
func (e LedgerEvent) Amount() Money { return e.Price.Mul(e.Quantity) }

// compareEvents orders events by date ascending, then by type precedence.
// It is used with a stable sort so that events tied on (date, type) keep
// their original relative order.
func compareEvents(a, b LedgerEvent) int {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c
	}
	return int(a.Type) - int(b.Type)
}
