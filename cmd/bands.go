package cmd

import (
	"context"
	"flag"

	"github.com/ghamel/folio"
	"github.com/ghamel/folio/renderer"
	"github.com/google/subcommands"
)

type bandsCmd struct {
	holdings string
}

func (*bandsCmd) Name() string { return "bands" }
func (*bandsCmd) Synopsis() string {
	return "reports ATR volatility bands for held positions"
}
func (*bandsCmd) Usage() string {
	return `pfm bands -holdings <file>

  Computes the Average True Range of each held symbol from the market
  data and reports a band around the position's cost price, flagging
  prices that approach or breach it.

`
}

func (c *bandsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holdings, "holdings", "", "Current brokerage holdings (JSONL)")
}

func (c *bandsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holdings == "" {
		return fail("missing -holdings: nothing to analyze")
	}
	cfg, err := LoadAppConfig()
	if err != nil {
		return fail("could not load config: %v", err)
	}
	market, err := DecodeMarketFile(cfg.BaseCurrency)
	if err != nil {
		return fail("could not load market data: %v", err)
	}
	holdings, err := decodeHoldingsFile(c.holdings)
	if err != nil {
		return fail("could not load holdings: %v", err)
	}

	bands := folio.AtrBands(holdings, market, cfg)
	printMarkdown(renderer.BandsMarkdown(bands))
	return subcommands.ExitSuccess
}
