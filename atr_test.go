package folio

import (
	"testing"

	"github.com/shopspring/decimal"
)

func candle(date string, high, low, close float64) Candle {
	return Candle{
		Date:  MustParse(date),
		High:  decimal.NewFromFloat(high),
		Low:   decimal.NewFromFloat(low),
		Close: decimal.NewFromFloat(close),
	}
}

func TestATR_Seeded(t *testing.T) {
	// Four candles, period 3: the first acts as seed and only supplies
	// the previous close. TRs: day2 max(3, |107-100|, |104-100|)=7,
	// day3 max(3, 3, 1)=3, day4 max(3, 3, 1)=3. ATR = 13/3.
	candles := []Candle{
		candle("2025-01-02", 101, 99, 100),
		candle("2025-01-03", 107, 104, 106),
		candle("2025-01-06", 109, 106, 108),
		candle("2025-01-07", 111, 108, 110),
	}
	got, ok := ATR(candles, 3)
	if !ok {
		t.Fatal("ATR unexpectedly unavailable")
	}
	want := decimal.NewFromInt(13).Div(decimal.NewFromInt(3))
	if !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestATR_Unseeded(t *testing.T) {
	// Exactly period candles, no seed: the first day's true range falls
	// back to high-low (2), then 7 and 3. ATR = 12/3 = 4.
	candles := []Candle{
		candle("2025-01-02", 101, 99, 100),
		candle("2025-01-03", 107, 104, 106),
		candle("2025-01-06", 109, 106, 108),
	}
	got, ok := ATR(candles, 3)
	if !ok {
		t.Fatal("ATR unexpectedly unavailable")
	}
	if want := decimal.NewFromInt(4); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestATR_InsufficientHistory(t *testing.T) {
	candles := []Candle{
		candle("2025-01-02", 101, 99, 100),
		candle("2025-01-03", 107, 104, 106),
	}
	if _, ok := ATR(candles, 3); ok {
		t.Error("want unavailable with fewer candles than the period")
	}
	if _, ok := ATR(candles, 0); ok {
		t.Error("want unavailable with a non-positive period")
	}
}

func TestAtrBands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AtrPeriod = 3
	cfg.AtrMultiplier = decimal.NewFromInt(2)

	m := NewMarketData("USD")
	for _, c := range []Candle{
		// ATR over the last 3 candles (seeded) is 13/3.
		candle("2025-01-02", 101, 99, 100),
		candle("2025-01-03", 107, 104, 106),
		candle("2025-01-06", 109, 106, 108),
		candle("2025-01-07", 111, 108, 110),
	} {
		m.Add("AAPL", c)
	}
	m.Add("THIN", candle("2025-01-07", 50, 49, 50))

	// Band around cost 100: 2 * 13/3 ≈ 8.67 wide, so roughly
	// [91.33, 108.67], with a half-ATR (≈2.17) shoulder inside each edge.
	testCases := []struct {
		name  string
		price float64
		want  Signal
	}{
		{name: "inside the band", price: 100, want: SignalInRange},
		{name: "above the upper band", price: 112, want: SignalBreachUpper},
		{name: "just under the upper band", price: 107.5, want: SignalNearUpper},
		{name: "below the lower band", price: 90, want: SignalBreachLower},
		{name: "just over the lower band", price: 92, want: SignalNearLower},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			holdings := []Holding{
				{Symbol: "AAPL", Quantity: Q(10), CostPrice: M(100, "USD"), LastPrice: M(tc.price, "USD")},
			}
			bands := AtrBands(holdings, m, cfg)
			if len(bands) != 1 {
				t.Fatalf("got %d bands, want 1", len(bands))
			}
			if bands[0].Signal != tc.want {
				t.Errorf("price %.2f: got %s, want %s", tc.price, bands[0].Signal, tc.want)
			}
		})
	}

	t.Run("insufficient history is skipped", func(t *testing.T) {
		holdings := []Holding{
			{Symbol: "THIN", Quantity: Q(1), CostPrice: M(50, "USD"), LastPrice: M(50, "USD")},
		}
		if bands := AtrBands(holdings, m, cfg); len(bands) != 0 {
			t.Errorf("got %d bands, want 0", len(bands))
		}
	})
}
