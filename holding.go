package folio

// Holding is a currently held position as reported by the brokerage,
// with its live pricing. It is an input to the performance aggregator,
// the rebalancer and the ATR engine; the core never derives it (the
// replayed state may drift from reality after corporate actions, which
// is exactly what CheckConsistency detects).
type Holding struct {
	Symbol    string   `json:"symbol"`
	Quantity  Quantity `json:"quantity"`
	CostPrice Money    `json:"cost_price"` // average acquisition price
	LastPrice Money    `json:"last_price"` // latest quote
}

// MarketValue returns quantity times last price.
func (h Holding) MarketValue() Money { return h.LastPrice.Mul(h.Quantity) }

// HoldingQuantities projects holdings into the symbol -> quantity map
// consumed by the consistency checker and closed-position analyzer.
func HoldingQuantities(holdings []Holding) map[string]Quantity {
	m := make(map[string]Quantity, len(holdings))
	for _, h := range holdings {
		m[h.Symbol] = h.Quantity
	}
	return m
}
