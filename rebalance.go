package folio

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Action is the side of a rebalancing suggestion.
type Action int

const (
	ActionBuy Action = iota
	ActionSell
)

func (a Action) String() string {
	if a == ActionBuy {
		return "BUY"
	}
	return "SELL"
}

// RebalanceSuggestion is a bounded trade proposal bringing a position
// back toward its target weight.
type RebalanceSuggestion struct {
	Symbol        string
	Action        Action
	CurrentWeight decimal.Decimal
	TargetWeight  decimal.Decimal
	Price         Money
	Quantity      int64 // whole shares
	Value         Money // Quantity times Price
	Detail        string
}

// Rebalance compares live weights against the configured target
// allocations and proposes bounded whole-share trades.
//
// A position drifting within the threshold produces nothing. Buys are
// capped by available cash and floored to whole shares, so a suggestion
// never spends cash that is not there. Sells are ceiled to whole shares
// (over-correcting slightly beats leaving the drift in place) and capped
// at the held quantity. A suggestion that rounds or caps to zero shares
// is dropped.
func Rebalance(holdings []Holding, totalNAV, availableCash Money, cfg *Config) []RebalanceSuggestion {
	var suggestions []RebalanceSuggestion
	if totalNAV.IsZero() {
		return suggestions
	}

	for _, h := range holdings {
		target, ok := cfg.TargetAllocations[h.Symbol]
		if !ok {
			continue
		}
		if h.LastPrice.IsZero() {
			continue
		}

		current := h.MarketValue().Ratio(totalNAV)
		drift := current.Sub(target)
		if drift.Abs().LessThanOrEqual(cfg.RebalanceThreshold) {
			continue
		}

		deltaValue := totalNAV.MulD(target).Sub(h.MarketValue())
		if deltaValue.IsPositive() {
			// Underweight: buy, but never more than cash allows.
			budget := deltaValue
			if availableCash.LessThan(budget) {
				budget = availableCash
			}
			shares := budget.DivPrice(h.LastPrice).Decimal().Floor().IntPart()
			if shares <= 0 {
				continue
			}
			value := h.LastPrice.Mul(Q(shares))
			suggestions = append(suggestions, RebalanceSuggestion{
				Symbol:        h.Symbol,
				Action:        ActionBuy,
				CurrentWeight: current,
				TargetWeight:  target,
				Price:         h.LastPrice,
				Quantity:      shares,
				Value:         value,
				Detail: fmt.Sprintf("underweight by %s, buy %d shares (~%s)",
					PercentOf(drift.Abs()), shares, value),
			})
		} else {
			// Overweight: sell, but never more than is held.
			shares := deltaValue.Neg().DivPrice(h.LastPrice).Decimal().Ceil().IntPart()
			if held := h.Quantity.IntPart(); shares > held {
				shares = held
			}
			if shares <= 0 {
				continue
			}
			value := h.LastPrice.Mul(Q(shares))
			suggestions = append(suggestions, RebalanceSuggestion{
				Symbol:        h.Symbol,
				Action:        ActionSell,
				CurrentWeight: current,
				TargetWeight:  target,
				Price:         h.LastPrice,
				Quantity:      shares,
				Value:         value,
				Detail: fmt.Sprintf("overweight by %s, sell %d shares (~%s)",
					PercentOf(drift.Abs()), shares, value),
			})
		}
	}
	return suggestions
}
