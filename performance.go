package folio

import (
	"github.com/shopspring/decimal"
)

// Metric is a computed value that may be unavailable. Unavailability is
// a domain gap (pre-inception anchor, zero NAV base, missing price), not
// an error.
type Metric struct {
	Value decimal.Decimal
	Valid bool
}

// metric wraps an (value, ok) pair into a Metric.
func metric(value decimal.Decimal, ok bool) Metric {
	return Metric{Value: value, Valid: ok}
}

// HoldingPerformance is the per-symbol simple price return over each
// standard period, plus the lifetime return against cost.
type HoldingPerformance struct {
	Symbol      string
	WoW         Metric
	MTD         Metric
	QTD         Metric
	YTD         Metric
	PrevYear    Metric
	TotalReturn Metric // (last - cost) / cost
}

// PortfolioPerformance is the full performance bundle: per-period TWR
// and dollar P&L for the portfolio, per-holding price returns, and the
// deposit ROI.
type PortfolioPerformance struct {
	AsOf      Date
	NAV       Money
	Inception Date

	// Time-weighted returns per period.
	WoW         Metric
	MTD         Metric
	QTD         Metric
	YTD         Metric
	PrevYear    Metric
	SinceStart  Metric // since inception
	DepositROI  Metric // (nav - net deposits) / net deposits
	NetDeposits Money

	// Approximate dollar P&L per period, derived from TWR.
	WoWPnL        Metric
	MTDPnL        Metric
	QTDPnL        Metric
	YTDPnL        Metric
	PrevYearPnL   Metric
	SinceStartPnL Metric

	Holdings []HoldingPerformance
}

// twrToPnL derives an approximate dollar P&L from a period TWR and the
// current NAV:
//
//	pnl = nav * twr / (1 + twr)
//
// Exact when the window contains no external flows, an approximation
// otherwise. The shape guarantees the P&L sign always matches the TWR
// sign, and it needs no absolute historical NAV from a
// possibly-incomplete ledger.
func twrToPnL(nav decimal.Decimal, twr Metric) Metric {
	if !twr.Valid {
		return Metric{}
	}
	denom := one.Add(twr.Value)
	if denom.IsZero() {
		return Metric{}
	}
	return metric(nav.Mul(twr.Value).Div(denom), true)
}

// depositROI computes the return on net contributed capital. Unavailable
// when net deposits are zero or negative: the ratio has no meaning
// without positive contributed capital.
func depositROI(l *Ledger, nav Money) Metric {
	net := l.NetDeposits()
	if !net.IsPositive() {
		return Metric{}
	}
	return metric(nav.Sub(net).Ratio(net), true)
}

// Performance computes the complete performance bundle as of asOf.
//
// nav is the externally reported current total NAV; holdings are the
// current positions with live pricing; cal is the trading-day calendar
// for anchor resolution; initialCash reconciles incomplete deposit
// history exactly as in Replay.
func Performance(l *Ledger, holdings []Holding, cal Calendar, asOf Date, nav Money, prices PriceSource, initialCash Money) *PortfolioPerformance {
	inception, _ := l.InceptionDate()
	anchors := ResolveAnchors(asOf, inception, cal)

	// TWR from an anchor to asOf; unavailable anchors yield an
	// unavailable metric.
	twrFrom := func(anchor Date) Metric {
		if anchor.IsZero() {
			return Metric{}
		}
		return metric(l.TWR(anchor, asOf, prices, initialCash))
	}

	p := &PortfolioPerformance{
		AsOf:        asOf,
		NAV:         nav,
		Inception:   inception,
		WoW:         twrFrom(anchors.WoW),
		MTD:         twrFrom(anchors.MTD),
		QTD:         twrFrom(anchors.QTD),
		YTD:         twrFrom(anchors.YTD),
		SinceStart:  twrFrom(anchors.Inception),
		DepositROI:  depositROI(l, nav),
		NetDeposits: l.NetDeposits(),
	}

	// Previous year is a closed window, anchor start to anchor end.
	if !anchors.PrevYearStart.IsZero() && !anchors.PrevYearEnd.IsZero() {
		p.PrevYear = metric(l.TWR(anchors.PrevYearStart, anchors.PrevYearEnd, prices, initialCash))
	}

	navValue := nav.Decimal()
	p.WoWPnL = twrToPnL(navValue, p.WoW)
	p.MTDPnL = twrToPnL(navValue, p.MTD)
	p.QTDPnL = twrToPnL(navValue, p.QTD)
	p.YTDPnL = twrToPnL(navValue, p.YTD)
	p.SinceStartPnL = twrToPnL(navValue, p.SinceStart)

	// Previous-year P&L applies to the NAV at the end of that year,
	// estimated by backing the YTD return out of the current NAV.
	if p.PrevYear.Valid {
		navEOY := navValue
		if p.YTD.Valid && !one.Add(p.YTD.Value).IsZero() {
			navEOY = navValue.Div(one.Add(p.YTD.Value))
		}
		p.PrevYearPnL = twrToPnL(navEOY, p.PrevYear)
	}

	// Per-holding simple price returns for the same anchors.
	priceReturn := func(symbol string, anchor Date) Metric {
		if anchor.IsZero() {
			return Metric{}
		}
		return metric(PriceReturn(symbol, anchor, asOf, prices))
	}
	for _, h := range holdings {
		hp := HoldingPerformance{
			Symbol: h.Symbol,
			WoW:    priceReturn(h.Symbol, anchors.WoW),
			MTD:    priceReturn(h.Symbol, anchors.MTD),
			QTD:    priceReturn(h.Symbol, anchors.QTD),
			YTD:    priceReturn(h.Symbol, anchors.YTD),
		}
		if !anchors.PrevYearStart.IsZero() && !anchors.PrevYearEnd.IsZero() {
			hp.PrevYear = metric(PriceReturn(h.Symbol, anchors.PrevYearStart, anchors.PrevYearEnd, prices))
		}
		if !h.CostPrice.IsZero() {
			hp.TotalReturn = metric(h.LastPrice.Sub(h.CostPrice).Ratio(h.CostPrice), true)
		}
		p.Holdings = append(p.Holdings, hp)
	}

	return p
}
