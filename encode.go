package folio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	// Quantities and amounts are persisted as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// eventRecord is the flat JSONL persistence form of a LedgerEvent, one
// object per line.
type eventRecord struct {
	Date     Date            `json:"date"`
	Type     string          `json:"type"`
	Symbol   string          `json:"symbol,omitempty"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
	OrderID  string          `json:"order_id,omitempty"`
}

// EncodeLedger writes the ledger to w as JSONL, one event per line, in
// canonical order. The format round-trips through DecodeLedger.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, e := range l.Events() {
		rec := eventRecord{
			Date:     e.Date,
			Type:     e.Type.String(),
			Symbol:   e.Symbol,
			Quantity: e.Quantity,
			Price:    e.Price.Decimal(),
			Currency: e.Price.Currency(),
			OrderID:  e.OrderID,
		}
		b, err := json.Marshal(rec)
		if err != nil {
			return fmt.Errorf("encoding event on %s: %w", e.Date, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

// DecodeLedger reads a JSONL event stream and rebuilds the ledger. Blank
// lines are ignored; events are re-sorted into canonical order, so a
// hand-edited file never loads out of order.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var events []LedgerEvent
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec eventRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
		typ, err := ParseEventType(rec.Type)
		if err != nil {
			return nil, fmt.Errorf("ledger line %d: %w", line, err)
		}
		events = append(events, LedgerEvent{
			Date:     rec.Date,
			Type:     typ,
			Symbol:   rec.Symbol,
			Quantity: rec.Quantity,
			Price:    M(rec.Price, rec.Currency),
			OrderID:  rec.OrderID,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	return NewLedger(events...), nil
}

// DecodeTradeRows reads a JSONL stream of raw brokerage trade rows.
func DecodeTradeRows(r io.Reader) ([]TradeRow, error) {
	return decodeRows[TradeRow](r, "trades")
}

// DecodeCashFlowRows reads a JSONL stream of raw brokerage cash-flow
// rows.
func DecodeCashFlowRows(r io.Reader) ([]CashFlowRow, error) {
	return decodeRows[CashFlowRow](r, "cash flows")
}

// DecodeHoldings reads a JSONL stream of current brokerage holdings.
func DecodeHoldings(r io.Reader) ([]Holding, error) {
	return decodeRows[Holding](r, "holdings")
}

func decodeRows[T any](r io.Reader, what string) ([]T, error) {
	var rows []T
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var row T
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, fmt.Errorf("%s line %d: %w", what, line, err)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", what, err)
	}
	return rows, nil
}

// candleRecord is the flat JSONL persistence form of one symbol-day of
// market history.
type candleRecord struct {
	Symbol string          `json:"symbol"`
	Date   Date            `json:"date"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
}

// EncodeMarketData writes the market history to w as JSONL, one candle
// per line, symbols in sorted order.
func EncodeMarketData(w io.Writer, m *MarketData) error {
	for _, symbol := range m.Symbols() {
		for _, c := range m.Candles(symbol) {
			rec := candleRecord{
				Symbol: symbol,
				Date:   c.Date,
				Open:   c.Open,
				High:   c.High,
				Low:    c.Low,
				Close:  c.Close,
			}
			b, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("encoding candle %s %s: %w", symbol, c.Date, err)
			}
			if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
				return err
			}
		}
	}
	return nil
}

// DecodeMarketData reads a JSONL candle stream into a repository quoting
// prices in the given currency.
func DecodeMarketData(r io.Reader, currency string) (*MarketData, error) {
	m := NewMarketData(currency)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}
		var rec candleRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("market line %d: %w", line, err)
		}
		m.Add(rec.Symbol, Candle{
			Date:  rec.Date,
			Open:  rec.Open,
			High:  rec.High,
			Low:   rec.Low,
			Close: rec.Close,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading market data: %w", err)
	}
	return m, nil
}
