package folio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func rebalanceConfig(threshold string, targets map[string]string) *Config {
	cfg := DefaultConfig()
	cfg.RebalanceThreshold = decimal.RequireFromString(threshold)
	cfg.TargetAllocations = make(map[string]decimal.Decimal, len(targets))
	for symbol, w := range targets {
		cfg.TargetAllocations[symbol] = decimal.RequireFromString(w)
	}
	return cfg
}

func TestRebalance(t *testing.T) {
	testCases := []struct {
		name      string
		holdings  []Holding
		nav       Money
		cash      Money
		threshold string
		targets   map[string]string
		want      []RebalanceSuggestion
	}{
		{
			name: "underweight buy floors to whole shares",
			// Target 30% of 10000 = 3000; held 2500; delta 500 at price
			// 200 = 2.5 shares, floored to 2.
			holdings: []Holding{
				{Symbol: "AAPL", Quantity: Q(12.5), LastPrice: M(200, "USD")},
			},
			nav: M(10000, "USD"), cash: M(5000, "USD"),
			threshold: "0.01",
			targets:   map[string]string{"AAPL": "0.30"},
			want: []RebalanceSuggestion{
				{Symbol: "AAPL", Action: ActionBuy, Quantity: 2},
			},
		},
		{
			name: "buy is capped by available cash",
			// Delta is 500 but only 250 in cash: 250/200 floors to 1.
			holdings: []Holding{
				{Symbol: "AAPL", Quantity: Q(12.5), LastPrice: M(200, "USD")},
			},
			nav: M(10000, "USD"), cash: M(250, "USD"),
			threshold: "0.01",
			targets:   map[string]string{"AAPL": "0.30"},
			want: []RebalanceSuggestion{
				{Symbol: "AAPL", Action: ActionBuy, Quantity: 1},
			},
		},
		{
			name: "overweight sell ceils and caps at held quantity",
			// Target 10% of 10000 = 1000; held 2500; excess 1500 at price
			// 200 = 7.5 shares, ceiled to 8.
			holdings: []Holding{
				{Symbol: "AAPL", Quantity: Q(12.5), LastPrice: M(200, "USD")},
			},
			nav: M(10000, "USD"), cash: Money{},
			threshold: "0.01",
			targets:   map[string]string{"AAPL": "0.10"},
			want: []RebalanceSuggestion{
				{Symbol: "AAPL", Action: ActionSell, Quantity: 8},
			},
		},
		{
			name: "sell never exceeds whole shares held",
			// Excess of 3500 at price 100 wants 35 shares, only 30 held.
			holdings: []Holding{
				{Symbol: "MSFT", Quantity: Q(30), LastPrice: M(100, "USD")},
			},
			nav: M(10000, "USD"), cash: Money{},
			threshold: "0.01",
			targets:   map[string]string{"MSFT": "-0.05"},
			want: []RebalanceSuggestion{
				{Symbol: "MSFT", Action: ActionSell, Quantity: 30},
			},
		},
		{
			name: "drift within threshold is left alone",
			holdings: []Holding{
				{Symbol: "AAPL", Quantity: Q(15), LastPrice: M(200, "USD")},
			},
			nav: M(10000, "USD"), cash: M(5000, "USD"),
			threshold: "0.05",
			targets:   map[string]string{"AAPL": "0.32"},
			want:      nil,
		},
		{
			name: "symbol without a target is ignored",
			holdings: []Holding{
				{Symbol: "TSLA", Quantity: Q(10), LastPrice: M(250, "USD")},
			},
			nav: M(10000, "USD"), cash: M(5000, "USD"),
			threshold: "0.01",
			targets:   map[string]string{"AAPL": "0.30"},
			want:      nil,
		},
		{
			name: "zero price is skipped",
			holdings: []Holding{
				{Symbol: "AAPL", Quantity: Q(10), LastPrice: M(0, "USD")},
			},
			nav: M(10000, "USD"), cash: M(5000, "USD"),
			threshold: "0.01",
			targets:   map[string]string{"AAPL": "0.30"},
			want:      nil,
		},
		{
			name: "buy that floors to zero shares is suppressed",
			// Delta 500 at price 600: 0.83 shares floors to 0.
			holdings: []Holding{
				{Symbol: "AAPL", Quantity: Q(2500.0 / 600.0), LastPrice: M(600, "USD")},
			},
			nav: M(10000, "USD"), cash: M(5000, "USD"),
			threshold: "0.01",
			targets:   map[string]string{"AAPL": "0.30"},
			want:      nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := rebalanceConfig(tc.threshold, tc.targets)
			got := Rebalance(tc.holdings, tc.nav, tc.cash, cfg)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d suggestions, want %d: %+v", len(got), len(tc.want), got)
			}
			for i, w := range tc.want {
				if got[i].Symbol != w.Symbol || got[i].Action != w.Action || got[i].Quantity != w.Quantity {
					t.Errorf("suggestion %d: got %s %s x%d, want %s %s x%d",
						i, got[i].Action, got[i].Symbol, got[i].Quantity,
						w.Action, w.Symbol, w.Quantity)
				}
			}
		})
	}
}

func TestRebalance_ZeroNAV(t *testing.T) {
	cfg := rebalanceConfig("0.01", map[string]string{"AAPL": "0.30"})
	got := Rebalance([]Holding{{Symbol: "AAPL", Quantity: Q(1), LastPrice: M(100, "USD")}}, Money{}, Money{}, cfg)
	if len(got) != 0 {
		t.Errorf("got %d suggestions on a zero NAV, want 0", len(got))
	}
}
