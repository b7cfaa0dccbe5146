package cmd

import (
	"context"
	"flag"

	"github.com/ghamel/folio"
	"github.com/ghamel/folio/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	date     string
	holdings string
	cash     float64
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "computes time-weighted returns and P&L per standard period"
}
func (*reportCmd) Usage() string {
	return `pfm report [-d <date>] [-holdings <file>] [-cash <amount>]

  Replays the ledger, values the portfolio with market data, and reports
  time-weighted returns and approximate P&L for the standard periods
  (week, month, quarter, year, previous year, inception), plus
  per-holding price returns when a holdings file is given.

Usage Examples:
# Report as of today.
$ pfm report

# Report as of a past date, with live holdings for per-symbol returns.
$ pfm report -d 2025-06-30 -holdings holdings.jsonl

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Report date (YYYY-MM-DD), defaults to today")
	f.StringVar(&c.holdings, "holdings", "", "Current brokerage holdings (JSONL)")
	f.Float64Var(&c.cash, "cash", 0, "Cash balance predating the ledger's first event")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadAppConfig()
	if err != nil {
		return fail("could not load config: %v", err)
	}
	l, err := DecodeLedgerFile()
	if err != nil {
		return fail("could not load ledger: %v", err)
	}
	market, err := DecodeMarketFile(cfg.BaseCurrency)
	if err != nil {
		return fail("could not load market data: %v", err)
	}
	holdings, err := decodeHoldingsFile(c.holdings)
	if err != nil {
		return fail("could not load holdings: %v", err)
	}

	asOf := folio.Today()
	if c.date != "" {
		asOf, err = folio.ParseDate(c.date)
		if err != nil {
			return fail("invalid date %q: %v", c.date, err)
		}
	}

	initialCash := folio.M(c.cash, cfg.BaseCurrency)
	state := l.Replay(asOf, initialCash)

	// NAV from the replayed state; live holdings are preferred when
	// given, since the ledger may miss corporate actions.
	nav := folio.NAV(state, market).TotalNAV
	if len(holdings) > 0 {
		nav = state.Cash
		for _, h := range holdings {
			nav = nav.Add(h.MarketValue())
		}
	}

	p := folio.Performance(l, holdings, market.TradingDays(), asOf, nav, market, initialCash)
	printMarkdown(renderer.PerformanceMarkdown(p))
	return subcommands.ExitSuccess
}
