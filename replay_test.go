package folio

import "testing"

func testLedger() *Ledger {
	return NewLedger(
		LedgerEvent{Date: MustParse("2025-01-02"), Type: CashIn, Quantity: Q(20000), Price: M(0, "USD")},
		LedgerEvent{Date: MustParse("2025-01-10"), Type: Buy, Symbol: "AAPL", Quantity: Q(100), Price: M(150, "USD"), OrderID: "o1"},
		LedgerEvent{Date: MustParse("2025-02-01"), Type: Sell, Symbol: "AAPL", Quantity: Q(40), Price: M(160, "USD"), OrderID: "o2"},
		LedgerEvent{Date: MustParse("2025-02-15"), Type: Dividend, Quantity: Q(24), Price: M(0, "USD")},
		LedgerEvent{Date: MustParse("2025-03-01"), Type: Sell, Symbol: "AAPL", Quantity: Q(60), Price: M(170, "USD"), OrderID: "o3"},
	)
}

func TestLedger_Replay(t *testing.T) {
	l := testLedger()

	testCases := []struct {
		name     string
		on       string
		wantAAPL int64
		wantCash int64
	}{
		{
			name: "before any event",
			on:   "2025-01-01", wantAAPL: 0, wantCash: 0,
		},
		{
			name: "deposit applied on its own day",
			on:   "2025-01-02", wantAAPL: 0, wantCash: 20000,
		},
		{
			name: "buy moves cash into shares",
			on:   "2025-01-10", wantAAPL: 100, wantCash: 5000,
		},
		{
			name: "partial sell",
			on:   "2025-02-01", wantAAPL: 60, wantCash: 11400,
		},
		{
			name: "dividend adds cash without touching shares",
			on:   "2025-02-15", wantAAPL: 60, wantCash: 11424,
		},
		{
			name: "beyond the last event the state freezes",
			on:   "2025-12-31", wantAAPL: 0, wantCash: 21624,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			state := l.Replay(MustParse(tc.on), Money{})
			if got := state.Position("AAPL"); !got.Equal(Q(tc.wantAAPL)) {
				t.Errorf("AAPL position: got %s, want %d", got, tc.wantAAPL)
			}
			if got := state.Cash; !got.Equal(M(tc.wantCash, "USD")) {
				t.Errorf("cash: got %s, want %d USD", got, tc.wantCash)
			}
		})
	}
}

func TestLedger_Replay_RemovesZeroPositions(t *testing.T) {
	l := testLedger()
	state := l.Replay(MustParse("2025-03-01"), Money{})
	if _, ok := state.Positions["AAPL"]; ok {
		t.Errorf("fully sold position should be removed from the map, got %v", state.Positions)
	}
}

func TestLedger_Replay_InitialCash(t *testing.T) {
	l := testLedger()
	base := l.Replay(MustParse("2025-01-10"), Money{})
	offset := l.Replay(MustParse("2025-01-10"), M(500, "USD"))
	if got, want := offset.Cash, base.Cash.Add(M(500, "USD")); !got.Equal(want) {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestLedger_Replay_Deterministic(t *testing.T) {
	l := testLedger()
	on := MustParse("2025-02-15")
	a := l.Replay(on, Money{})
	b := l.Replay(on, Money{})
	if !a.Cash.Equal(b.Cash) || !a.Position("AAPL").Equal(b.Position("AAPL")) {
		t.Errorf("replay is not deterministic: %v vs %v", a, b)
	}
}
