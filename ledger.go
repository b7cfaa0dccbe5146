package folio

import (
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// TradeRow is a raw trade record as exported by a brokerage.
type TradeRow struct {
	Date     Date     `json:"date"`
	Symbol   string   `json:"symbol"`
	Side     string   `json:"side"` // "buy" or "sell", case-insensitive
	Quantity Quantity `json:"quantity"`
	Price    Money    `json:"price"`
	OrderID  string   `json:"order_id"`
}

// Cash-flow row direction and business-type codes, as exported by a
// brokerage.
const (
	DirectionOutflow = 1
	DirectionInflow  = 2

	BusinessCash            = 1
	BusinessStockSettlement = 2
	BusinessFund            = 3
)

// CashFlowRow is a raw cash movement record as exported by a brokerage.
type CashFlowRow struct {
	Date         Date            `json:"date"`
	Direction    int             `json:"direction"`
	BusinessType int             `json:"business_type"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
	Description  string          `json:"description"`
}

// looksLikeDividend classifies an inflow as dividend income from its
// free-text description. It is a fuzzy heuristic kept isolated here so a
// data source can swap it without touching the ledger ordering logic.
// Any description containing "div" matches, which also catches reversals
// like "dividend adjustment"; the upstream feed does not disambiguate.
func looksLikeDividend(description string) bool {
	s := strings.ToLower(description)
	return strings.Contains(s, "dividend") || strings.Contains(s, "div")
}

// Ledger holds the portfolio's full event timeline.
//
// In a Ledger events are always totally ordered: by date ascending, then
// by event-type precedence within a date (cash before trades), preserving
// the source order within ties.
type Ledger struct {
	events []LedgerEvent
}

// NewLedger creates a ledger from pre-built events, sorting them into the
// canonical order.
func NewLedger(events ...LedgerEvent) *Ledger {
	l := &Ledger{events: slices.Clone(events)}
	l.stableSort()
	return l
}

// BuildLedger merges raw trade and cash-flow rows into one sorted event
// timeline.
//
// Trade rows map 1:1 to buy/sell events; any side not recognized as "buy"
// maps to sell. Stock-settlement cash flows are dropped entirely: they
// duplicate the cash movement already captured by trade events and would
// double-count it. Inflows whose description looks like dividend income
// are reclassified as dividends.
func BuildLedger(trades []TradeRow, flows []CashFlowRow) *Ledger {
	events := make([]LedgerEvent, 0, len(trades)+len(flows))

	for _, row := range trades {
		typ := Sell
		if strings.EqualFold(row.Side, "buy") {
			typ = Buy
		}
		events = append(events, LedgerEvent{
			Date:     row.Date,
			Type:     typ,
			Symbol:   row.Symbol,
			Quantity: row.Quantity,
			Price:    row.Price,
			OrderID:  row.OrderID,
		})
	}

	for _, row := range flows {
		if row.BusinessType == BusinessStockSettlement {
			continue
		}
		typ := CashOut
		if row.Direction == DirectionInflow {
			typ = CashIn
			if looksLikeDividend(row.Description) {
				typ = Dividend
			}
		}
		events = append(events, LedgerEvent{
			Date:     row.Date,
			Type:     typ,
			Quantity: Q(row.Amount.Abs()),
			Price:    M(0, row.Currency),
		})
	}

	l := &Ledger{events: events}
	l.stableSort()
	return l
}

// stableSort sorts the ledger by date, then event-type precedence. The
// sort is stable: tied events keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.events, func(i, j int) bool {
		return compareEvents(l.events[i], l.events[j]) < 0
	})
}

// Len returns the number of events in the ledger.
func (l *Ledger) Len() int { return len(l.events) }

// Events returns a copy of the event timeline in canonical order.
func (l *Ledger) Events() []LedgerEvent { return slices.Clone(l.events) }

// InceptionDate returns the date of the earliest event.
// It returns false if the ledger is empty.
func (l *Ledger) InceptionDate() (Date, bool) {
	if len(l.events) == 0 {
		return Date{}, false
	}
	return l.events[0].Date, true
}

// NewestEventDate returns the date of the latest event.
// It returns false if the ledger is empty.
func (l *Ledger) NewestEventDate() (Date, bool) {
	if len(l.events) == 0 {
		return Date{}, false
	}
	return l.events[len(l.events)-1].Date, true
}

// Symbols returns the sorted list of symbols the ledger ever traded.
func (l *Ledger) Symbols() []string {
	seen := make(map[string]struct{})
	for _, e := range l.events {
		if e.Type.IsTrade() {
			seen[e.Symbol] = struct{}{}
		}
	}
	symbols := make([]string, 0, len(seen))
	for s := range seen {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}

// FlowsBetween returns the external cash-flow events (cash_in/cash_out)
// with start < date <= end. Dividends are excluded: they are
// portfolio-generated income, not external flows. The asymmetric bounds
// make a flow landing exactly on end still create a sub-period boundary.
func (l *Ledger) FlowsBetween(start, end Date) []LedgerEvent {
	var flows []LedgerEvent
	for _, e := range l.events {
		if e.Date.After(end) {
			// The ledger is sorted by date, so it's safe to break.
			break
		}
		if !e.Date.After(start) {
			continue
		}
		if e.Type.IsExternalFlow() {
			flows = append(flows, e)
		}
	}
	return flows
}

// NetDeposits computes total external capital contributed: the sum of all
// cash_in amounts minus the sum of all cash_out amounts.
func (l *Ledger) NetDeposits() Money {
	var net Money
	for _, e := range l.events {
		switch e.Type {
		case CashIn:
			net = net.Add(M(e.Quantity.Decimal(), e.Price.Currency()))
		case CashOut:
			net = net.Sub(M(e.Quantity.Decimal(), e.Price.Currency()))
		}
	}
	return net
}
